// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"fmt"
	"path/filepath"

	"hello-make/internal/config"
	"hello-make/internal/examples"
)

// Aggregate target names.
const (
	TargetAll   = "all"
	TargetTest  = "test"
	TargetClean = "clean"
)

// BuildTarget and RunTarget name the per-example targets.
func BuildTarget(example string) string { return "build-" + example }
func RunTarget(example string) string   { return "run-" + example }

// Graph derives the target set for every example in the catalog.
func Graph(cfg *config.Config, catalog *examples.Catalog) []Target {
	goCmd := cfg.Build.GoCommand
	binDir := cfg.Build.BinDir

	targets := make([]Target, 0, 2*len(catalog.Examples)+3)
	all := Target{Name: TargetAll}

	for _, ex := range catalog.Examples {
		bin := filepath.Join(binDir, ex.Name)
		build := Target{
			Name:    BuildTarget(ex.Name),
			Command: fmt.Sprintf("%s build -o %s ./cmd/%s", goCmd, bin, ex.Name),
		}
		run := Target{
			Name:    RunTarget(ex.Name),
			Command: bin,
			Deps:    []string{build.Name},
		}
		targets = append(targets, build, run)
		all.Deps = append(all.Deps, build.Name)
	}

	return append(targets,
		all,
		Target{Name: TargetTest, Command: goCmd + " test ./..."},
		Target{Name: TargetClean, Command: "rm -rf " + binDir},
	)
}
