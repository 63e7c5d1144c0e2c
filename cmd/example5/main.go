// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Command example5 calls the greeter and adder directly instead of going
// through the example catalog.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"hello-make/internal/calculator"
	"hello-make/internal/examples"
	"hello-make/pkg/hello"
)

func run(w io.Writer) error {
	if err := hello.Fgreet(w); err != nil {
		return fmt.Errorf("example5: %w", err)
	}
	if _, err := fmt.Fprintln(w, examples.FormatSum(calculator.Add(4, 5))); err != nil {
		return fmt.Errorf("example5: failed to write sum: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
