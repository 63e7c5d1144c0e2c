// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package examples

import (
	"fmt"
	"io"

	"hello-make/internal/calculator"
	"hello-make/pkg/hello"
)

const sumLabel = "Addition result = "

// FormatSum renders the adder's output line without the trailing newline.
func FormatSum(n int) string {
	return fmt.Sprintf("%s%d", sumLabel, n)
}

// Run writes the example's output to w: the greeting first if selected,
// then the addition line.
func Run(w io.Writer, ex Example) error {
	if ex.Greet {
		if err := hello.Fgreet(w); err != nil {
			return fmt.Errorf("example %s: %w", ex.Name, err)
		}
	}

	if ex.Add != nil {
		sum := calculator.Add(ex.Add.A, ex.Add.B)
		if _, err := fmt.Fprintln(w, FormatSum(sum)); err != nil {
			return fmt.Errorf("example %s: failed to write sum: %w", ex.Name, err)
		}
	}

	return nil
}

// RunNamed looks up name in the embedded catalog and runs it against w.
func RunNamed(w io.Writer, name string) error {
	c, err := Load()
	if err != nil {
		return err
	}
	ex, err := c.Lookup(name)
	if err != nil {
		return err
	}
	return Run(w, ex)
}
