// SPDX-License-Identifier: MIT

package stateprep

import (
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

// Preparation is a state preparation that can be projected onto a wire order.
type Preparation interface {
	Wires() wires.Wires
	StateVector(order wires.Wires) (*tensor.Tensor, error)
	Decomposition() ([]ops.Operator, error)
}

var (
	_ Preparation = (*BasisState)(nil)
	_ Preparation = (*StateVector)(nil)
)
