// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-make/internal/config"
	"hello-make/internal/examples"
)

func TestGraph(t *testing.T) {
	catalog, err := examples.Load()
	require.NoError(t, err)

	targets := Graph(config.Default(), catalog)
	byName := make(map[string]Target, len(targets))
	for _, tg := range targets {
		byName[tg.Name] = tg
	}

	assert.Len(t, targets, 2*len(catalog.Examples)+3)

	build4 := byName[BuildTarget("example4")]
	assert.Equal(t, "go build -o bin/example4 ./cmd/example4", build4.Command)

	run4 := byName[RunTarget("example4")]
	assert.Equal(t, "bin/example4", run4.Command)
	assert.Equal(t, []string{"build-example4"}, run4.Deps)

	all := byName[TargetAll]
	assert.Empty(t, all.Command)
	assert.Len(t, all.Deps, len(catalog.Examples))

	assert.Equal(t, "go test ./...", byName[TargetTest].Command)
	assert.Equal(t, "rm -rf bin", byName[TargetClean].Command)

	order, err := (&Scheduler{}).BuildExecutionOrder(targets)
	require.NoError(t, err)
	assert.Len(t, order, len(targets))
}

func TestGraph_CustomConfig(t *testing.T) {
	catalog, err := examples.Parse([]byte("examples:\n  - name: solo\n    greet: true\n"))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Build.GoCommand = "go1.25"
	cfg.Build.BinDir = "out"

	targets := Graph(cfg, catalog)
	require.Len(t, targets, 5)
	assert.Equal(t, "go1.25 build -o out/solo ./cmd/solo", targets[0].Command)
	assert.Equal(t, "rm -rf out", targets[4].Command)
}
