// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package hello prints the greeting shared by the example programs.
package hello

import (
	"fmt"
	"io"
	"os"
)

// Greeting is the line every greeting example prints.
const Greeting = "Hello, Make!"

// Greet writes the greeting line to standard output.
func Greet() {
	_ = Fgreet(os.Stdout)
}

// Fgreet writes the greeting line to w.
func Fgreet(w io.Writer) error {
	if _, err := fmt.Fprintln(w, Greeting); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
