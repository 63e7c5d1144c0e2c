// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides the integer adder used by the examples.
package calculator

// Add returns the sum of a and b. Overflow wraps around.
func Add(a, b int) int {
	return a + b
}
