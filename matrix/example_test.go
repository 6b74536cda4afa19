// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qutrit/matrix"
)

// ExampleNewPermutation builds the cyclic shift on three levels.
func ExampleNewPermutation() {
	p, _ := matrix.NewPermutation(3, func(i int) int { return (i + 1) % 3 })
	fmt.Print(p)
	// Output:
	// [0, 0, 1]
	// [1, 0, 0]
	// [0, 1, 0]
}

// ExampleKron shows that the left factor selects the block.
func ExampleKron() {
	a, _ := matrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	b, _ := matrix.NewDiag([]complex128{1, -1})
	k, _ := matrix.Kron(a, b)
	fmt.Print(k)
	// Output:
	// [0, 0, 1, 0]
	// [0, 0, 0, -1]
	// [1, 0, 0, 0]
	// [0, -1, 0, 0]
}
