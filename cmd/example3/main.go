// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Command example3 prints the sum of 4 and 5.
package main

import (
	"io"
	"log"
	"os"

	"hello-make/internal/examples"
)

func run(w io.Writer) error {
	return examples.RunNamed(w, "example3")
}

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
