// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"fmt"

	"github.com/gammazero/toposort"
)

// Scheduler handles dependency resolution
type Scheduler struct{}

// Validate checks that names are unique and every dependency exists.
func (s *Scheduler) Validate(targets []Target) error {
	known := make(map[string]bool, len(targets))
	for _, t := range targets {
		if t.Name == "" {
			return fmt.Errorf("target name is required")
		}
		if known[t.Name] {
			return fmt.Errorf("duplicate target %q", t.Name)
		}
		known[t.Name] = true
	}

	for _, t := range targets {
		for _, dep := range t.Deps {
			if !known[dep] {
				return fmt.Errorf("%w: %s (required by %s)", ErrUnknownTarget, dep, t.Name)
			}
		}
	}
	return nil
}

// BuildExecutionOrder performs topological sort on targets.
// Returns a flat list of target names in safe execution order.
func (s *Scheduler) BuildExecutionOrder(targets []Target) ([]string, error) {
	if len(targets) == 0 {
		return []string{}, nil
	}

	if err := s.Validate(targets); err != nil {
		return nil, err
	}

	edges := make([]toposort.Edge, 0)
	for _, t := range targets {
		for _, dep := range t.Deps {
			edges = append(edges, toposort.Edge{dep, t.Name})
		}
	}

	if len(edges) == 0 {
		flatOrder := make([]string, 0, len(targets))
		for _, t := range targets {
			flatOrder = append(flatOrder, t.Name)
		}
		return flatOrder, nil
	}

	sortedNodes, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("cycle detected in target graph: %w", err)
	}

	inSorted := make(map[string]bool, len(sortedNodes))
	sorted := make([]string, 0, len(sortedNodes))
	for _, node := range sortedNodes {
		name := node.(string)
		inSorted[name] = true
		sorted = append(sorted, name)
	}

	// Targets outside every edge have no ordering constraint; run them
	// first in declaration order.
	flatOrder := make([]string, 0, len(targets))
	for _, t := range targets {
		if !inSorted[t.Name] {
			flatOrder = append(flatOrder, t.Name)
		}
	}

	return append(flatOrder, sorted...), nil
}

// Select returns the goals plus everything they transitively depend on,
// in the order the targets were declared.
func (s *Scheduler) Select(targets []Target, goals []string) ([]Target, error) {
	byName := make(map[string]Target, len(targets))
	for _, t := range targets {
		byName[t.Name] = t
	}

	wanted := make(map[string]bool)
	var visit func(name string) error
	visit = func(name string) error {
		if wanted[name] {
			return nil
		}
		t, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}
		wanted[name] = true
		for _, dep := range t.Deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, goal := range goals {
		if err := visit(goal); err != nil {
			return nil, err
		}
	}

	selected := make([]Target, 0, len(wanted))
	for _, t := range targets {
		if wanted[t.Name] {
			selected = append(selected, t)
		}
	}
	return selected, nil
}
