// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hello-make/internal/build"
	"hello-make/internal/config"
	"hello-make/internal/examples"
	"hello-make/internal/logging"
)

const version = "0.1.0"

func main() {
	logger := logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := os.Chdir(cfg.Project.WorkingDirectory); err != nil {
		log.Fatalf("Failed to enter working directory: %v", err)
	}

	catalog, err := examples.Load()
	if err != nil {
		log.Fatalf("Failed to load example catalog: %v", err)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{cfg.Build.DefaultGoal}
	}

	switch args[0] {
	case "list":
		handleList(cfg, catalog)
	case "run":
		handleRun(catalog, args[1:])
	case "version":
		fmt.Printf("mk version %s\n", version)
	case "help":
		printUsage()
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := build.NewRunner(os.Stdout, logger)
		result, err := runner.Run(ctx, build.Graph(cfg, catalog), args)
		if err != nil {
			if errors.Is(err, build.ErrUnknownTarget) {
				printUsage()
			}
			stop()
			log.Fatalf("mk: %v", err)
		}
		logger.Debug("Targets completed", "completed", result.Completed)
	}
}

func handleList(cfg *config.Config, catalog *examples.Catalog) {
	fmt.Println("Targets:")
	for _, t := range build.Graph(cfg, catalog) {
		if t.Command == "" {
			fmt.Printf("  %-16s -> %v\n", t.Name, t.Deps)
			continue
		}
		fmt.Printf("  %-16s %s\n", t.Name, t.Command)
	}

	fmt.Println("\nExamples:")
	for _, ex := range catalog.Examples {
		fmt.Printf("  %-10s %s\n", ex.Name, ex.Description)
	}
}

func handleRun(catalog *examples.Catalog, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: mk run <example>")
		os.Exit(2)
	}

	ex, err := catalog.Lookup(args[0])
	if err != nil {
		log.Fatalf("mk: %v", err)
	}
	if err := examples.Run(os.Stdout, ex); err != nil {
		log.Fatalf("mk: %v", err)
	}
}

func printUsage() {
	fmt.Println(`Usage: mk [command | target...]

Commands:
  list            Show targets and examples
  run <example>   Run an example in-process
  version         Show version
  help            Show this help

With no arguments mk builds the default goal (all).
Environment: LOG_FORMAT=json, LOG_LEVEL=debug|info|warn|error`)
}
