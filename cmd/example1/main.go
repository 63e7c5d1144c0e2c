// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Command example1 prints the greeting.
package main

import (
	"io"
	"log"
	"os"

	"hello-make/internal/examples"
)

func run(w io.Writer) error {
	return examples.RunNamed(w, "example1")
}

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
