// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir and File locate the build driver configuration relative to the
// working directory.
const (
	Dir  = ".make"
	File = "mk.yaml"
)

// Config represents the mk build driver configuration
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Build   BuildConfig   `yaml:"build"`
}

// ProjectConfig holds project-level configuration
type ProjectConfig struct {
	Name             string `yaml:"name"`
	WorkingDirectory string `yaml:"working_directory"`
}

// BuildConfig controls how targets are generated
type BuildConfig struct {
	GoCommand   string `yaml:"go"`
	BinDir      string `yaml:"bin_dir"`
	DefaultGoal string `yaml:"default_goal"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name: "hello-make",
		},
		Build: BuildConfig{
			GoCommand:   "go",
			BinDir:      "bin",
			DefaultGoal: "all",
		},
	}
}

// Load loads the configuration from .make/mk.yaml, falling back to
// Default when the file does not exist. Unset fields keep their defaults.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := Default()
	configPath := filepath.Join(cwd, Dir, File)

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cfg.Project.WorkingDirectory == "" {
		cfg.Project.WorkingDirectory = cwd
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Project.Name == "" {
		return fmt.Errorf("project name is required")
	}

	if c.Project.WorkingDirectory == "" {
		return fmt.Errorf("working directory is required")
	}

	if c.Build.GoCommand == "" {
		return fmt.Errorf("go command is required")
	}

	if c.Build.BinDir == "" {
		return fmt.Errorf("bin directory is required")
	}

	if c.Build.DefaultGoal == "" {
		return fmt.Errorf("default goal is required")
	}

	return nil
}
