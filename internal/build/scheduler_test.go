// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexOf maps each name to its position in order
func indexOf(order []string) map[string]int {
	indices := make(map[string]int, len(order))
	for i, name := range order {
		indices[name] = i
	}
	return indices
}

func TestBuildExecutionOrder(t *testing.T) {
	tests := []struct {
		name        string
		targets     []Target
		wantCount   int
		wantErr     bool
		errContains string
		verifyOrder func(t *testing.T, idx map[string]int)
	}{
		{
			name: "simple linear dependency",
			targets: []Target{
				{Name: "hello.o", Command: "echo 1"},
				{Name: "add.o", Command: "echo 2", Deps: []string{"hello.o"}},
				{Name: "example4", Command: "echo 3", Deps: []string{"add.o"}},
			},
			wantCount: 3,
			verifyOrder: func(t *testing.T, idx map[string]int) {
				assert.Greater(t, idx["add.o"], idx["hello.o"])
				assert.Greater(t, idx["example4"], idx["add.o"])
			},
		},
		{
			name: "diamond dependency",
			targets: []Target{
				{Name: "a", Command: "echo a"},
				{Name: "b", Command: "echo b", Deps: []string{"a"}},
				{Name: "c", Command: "echo c", Deps: []string{"a"}},
				{Name: "d", Command: "echo d", Deps: []string{"b", "c"}},
			},
			wantCount: 4,
			verifyOrder: func(t *testing.T, idx map[string]int) {
				assert.Greater(t, idx["b"], idx["a"])
				assert.Greater(t, idx["c"], idx["a"])
				assert.Greater(t, idx["d"], idx["b"])
				assert.Greater(t, idx["d"], idx["c"])
			},
		},
		{
			name: "no edges keeps declaration order",
			targets: []Target{
				{Name: "x", Command: "echo x"},
				{Name: "y", Command: "echo y"},
			},
			wantCount: 2,
			verifyOrder: func(t *testing.T, idx map[string]int) {
				assert.Equal(t, 0, idx["x"])
				assert.Equal(t, 1, idx["y"])
			},
		},
		{
			name: "disconnected target is included",
			targets: []Target{
				{Name: "clean", Command: "rm -rf bin"},
				{Name: "build", Command: "echo build"},
				{Name: "run", Command: "echo run", Deps: []string{"build"}},
			},
			wantCount: 3,
			verifyOrder: func(t *testing.T, idx map[string]int) {
				assert.Equal(t, 0, idx["clean"])
				assert.Greater(t, idx["run"], idx["build"])
			},
		},
		{
			name: "cycle detection - self reference",
			targets: []Target{
				{Name: "task1", Command: "echo 1", Deps: []string{"task1"}},
			},
			wantErr:     true,
			errContains: "cycle detected",
		},
		{
			name: "cycle detection - circular chain",
			targets: []Target{
				{Name: "a", Command: "echo a", Deps: []string{"b"}},
				{Name: "b", Command: "echo b", Deps: []string{"c"}},
				{Name: "c", Command: "echo c", Deps: []string{"a"}},
			},
			wantErr:     true,
			errContains: "cycle",
		},
		{
			name: "missing dependency",
			targets: []Target{
				{Name: "task1", Command: "echo 1", Deps: []string{"nonexistent"}},
			},
			wantErr:     true,
			errContains: "unknown target: nonexistent",
		},
		{
			name: "duplicate target",
			targets: []Target{
				{Name: "a", Command: "echo a"},
				{Name: "a", Command: "echo again"},
			},
			wantErr:     true,
			errContains: "duplicate target",
		},
	}

	s := &Scheduler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := s.BuildExecutionOrder(tt.targets)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Len(t, order, tt.wantCount)
			if tt.verifyOrder != nil {
				tt.verifyOrder(t, indexOf(order))
			}
		})
	}
}

func TestBuildExecutionOrder_Empty(t *testing.T) {
	order, err := (&Scheduler{}).BuildExecutionOrder(nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestSelect(t *testing.T) {
	targets := []Target{
		{Name: "build-a", Command: "echo a"},
		{Name: "run-a", Command: "a", Deps: []string{"build-a"}},
		{Name: "build-b", Command: "echo b"},
		{Name: "all", Deps: []string{"build-a", "build-b"}},
	}
	s := &Scheduler{}

	selected, err := s.Select(targets, []string{"run-a"})
	require.NoError(t, err)
	names := make([]string, 0, len(selected))
	for _, tg := range selected {
		names = append(names, tg.Name)
	}
	assert.Equal(t, []string{"build-a", "run-a"}, names)

	selected, err = s.Select(targets, []string{"all", "build-a"})
	require.NoError(t, err)
	assert.Len(t, selected, 3)

	_, err = s.Select(targets, []string{"missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTarget))
}
