// Package ops_test provides benchmarks for descriptor evaluation and wire expansion.
package ops_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

// benchWires are the target register sizes to benchmark.
var benchWires = []int{2, 4, 6}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkT *tensor.Tensor
	sinkH [32]byte
)

func BenchmarkMatrix(b *testing.B) {
	b.ReportAllocs()
	op, err := ops.TCNOT(0, 1, ops.WithSubspace([]int{1, 2}))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if sinkM, err = op.Matrix(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpandMatrix(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchWires {
		n := n
		b.Run(fmt.Sprintf("wires=%d", n), func(b *testing.B) {
			op, err := ops.TAdd(n-1, 0)
			if err != nil {
				b.Fatal(err)
			}
			order := wires.Range(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkM, err = ops.ExpandMatrix(op, order); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchWires {
		n := n
		b.Run(fmt.Sprintf("wires=%d", n), func(b *testing.B) {
			op, err := ops.TH(n/2, ops.WithSubspace([]int{0, 2}))
			if err != nil {
				b.Fatal(err)
			}
			shape := make([]int, n)
			for i := range shape {
				shape[i] = 3
			}
			state, err := tensor.Zeros(shape...)
			if err != nil {
				b.Fatal(err)
			}
			if err = state.Set(1, make([]int, n)...); err != nil {
				b.Fatal(err)
			}
			order := wires.Range(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkT, err = ops.Apply(op, state, order); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	b.ReportAllocs()
	op, err := ops.TS("q", ops.WithSubspace([]int{2, 0}))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		sinkH = op.Hash()
	}
}
