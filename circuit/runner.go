// SPDX-License-Identifier: MIT

package circuit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/qutrit/batch"
	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/tensor"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger injects a logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l == nil {
			l = zap.NewNop()
		}
		r.logger = l
	}
}

// WithEvaluator sets the evaluator that expands step matrices.
func WithEvaluator(e *batch.Evaluator) RunnerOption {
	return func(r *Runner) {
		if e != nil {
			r.eval = e
		}
	}
}

// Runner evaluates built circuits. Step matrices are expanded onto the
// circuit's wire order concurrently, then applied to the state in order.
type Runner struct {
	eval   *batch.Evaluator
	logger *zap.Logger
}

// NewRunner returns a Runner with a default evaluator and a no-op logger.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	if r.eval == nil {
		r.eval = batch.NewEvaluator(batch.WithLogger(r.logger))
	}

	return r
}

func (r *Runner) expand(ctx context.Context, c *Circuit) ([]batch.Result, error) {
	reqs := make([]batch.Request, len(c.Ops))
	for i, op := range c.Ops {
		reqs[i] = batch.Request{Op: op, Order: c.Wires}
	}

	return r.eval.Evaluate(ctx, reqs)
}

// Run returns the final state of c with one axis of size 3 per circuit wire,
// in c.Wires order, plus a leading batch axis for batched amplitudes.
func (r *Runner) Run(ctx context.Context, c *Circuit) (*tensor.Tensor, error) {
	start := time.Now()
	state, err := c.Prep.StateVector(c.Wires)
	if err != nil {
		return nil, fmt.Errorf("circuit: prepare: %w", err)
	}
	results, err := r.expand(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("circuit: expand: %w", err)
	}

	for i, res := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if state, err = ops.ApplyMatrix(res.Matrix, state); err != nil {
			return nil, fmt.Errorf("circuit: step %d %v: %w", i, res.Op, err)
		}
		r.logger.Debug("step applied", zap.Int("step", i), zap.Stringer("op", res.Op))
	}

	r.logger.Info("circuit evaluated",
		zap.Stringer("wires", c.Wires),
		zap.Int("steps", len(c.Ops)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return state, nil
}

// Unitary returns the product of every step's expanded matrix (last step
// leftmost); the identity for an empty circuit.
func (r *Runner) Unitary(ctx context.Context, c *Circuit) (*matrix.Dense, error) {
	n := 1
	for i := 0; i < c.Wires.Len(); i++ {
		n *= 3
	}
	u, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}
	results, err := r.expand(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("circuit: expand: %w", err)
	}
	for _, res := range results {
		if u, err = matrix.Mul(res.Matrix, u); err != nil {
			return nil, fmt.Errorf("circuit: %w", err)
		}
	}

	return u, nil
}
