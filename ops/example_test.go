// SPDX-License-Identifier: MIT

package ops_test

import (
	"fmt"

	"github.com/katalvlaran/qutrit/ops"
)

func ExampleTX() {
	x, _ := ops.TX(0, ops.WithSubspace([]int{2, 1}))
	m, _ := x.Matrix()
	fmt.Println(x)
	fmt.Print(m)
	// Output:
	// TX(wires=[0], subspace=(1, 2))
	// [1, 0, 0]
	// [0, 0, 1]
	// [0, 1, 0]
}

func ExampleOperator_Pow() {
	shift, _ := ops.TShift("q")
	seq, _ := shift.Pow(-1)
	fmt.Println(len(seq))

	s, _ := ops.TS("q")
	_, err := s.Pow(-1)
	fmt.Println(err)
	// Output:
	// 2
	// Pow: TS^-1: ops: power is undefined for this operator
}
