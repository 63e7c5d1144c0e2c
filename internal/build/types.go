// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package build is a small make-style driver for the example programs.
//
// Targets name a shell command and the targets it depends on. The
// scheduler orders them topologically and the runner executes them one
// at a time, stopping at the first failure.
package build

import "errors"

// ErrUnknownTarget is returned when a goal or dependency names a target
// that does not exist.
var ErrUnknownTarget = errors.New("unknown target")

// Target is a single buildable unit.
type Target struct {
	// Name is unique within a graph
	Name string

	// Command is executed by the runner; empty for aggregate targets
	Command string

	// Deps must complete before this target runs
	Deps []string
}

// Result records what a run did.
type Result struct {
	Order     []string
	Completed []string
	Failed    string
}

// State holds the progress of a single run.
type State struct {
	TargetMap map[string]Target
	FlatOrder []string
}

// NewState indexes targets by name.
func NewState(targets []Target, order []string) *State {
	targetMap := make(map[string]Target, len(targets))
	for _, t := range targets {
		targetMap[t.Name] = t
	}

	return &State{
		TargetMap: targetMap,
		FlatOrder: order,
	}
}
