// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package examples describes the example programs and runs them.
//
// The catalog is embedded YAML so the build driver and the entry points
// agree on which components each example exercises.
package examples

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownExample is returned when a name is not in the catalog.
var ErrUnknownExample = errors.New("unknown example")

//go:embed catalog.yaml
var catalogYAML []byte

// Operands are the literal inputs passed to the adder.
type Operands struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Example is a single entry point and the components it invokes.
type Example struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Greet       bool      `yaml:"greet"`
	Add         *Operands `yaml:"add"`
}

// Catalog is the ordered set of examples.
type Catalog struct {
	Examples []Example `yaml:"examples"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names are present and unique and that every example
// selects at least one component.
func (c *Catalog) Validate() error {
	if len(c.Examples) == 0 {
		return fmt.Errorf("catalog has no examples")
	}

	seen := make(map[string]bool, len(c.Examples))
	for i, ex := range c.Examples {
		if ex.Name == "" {
			return fmt.Errorf("example %d: name is required", i)
		}
		if seen[ex.Name] {
			return fmt.Errorf("example %s: duplicate name", ex.Name)
		}
		seen[ex.Name] = true

		if !ex.Greet && ex.Add == nil {
			return fmt.Errorf("example %s: must greet or add", ex.Name)
		}
	}
	return nil
}

// Lookup returns the example with the given name.
func (c *Catalog) Lookup(name string) (Example, error) {
	for _, ex := range c.Examples {
		if ex.Name == name {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %s", ErrUnknownExample, name)
}

// Names returns example names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Examples))
	for _, ex := range c.Examples {
		names = append(names, ex.Name)
	}
	return names
}
