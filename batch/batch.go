// SPDX-License-Identifier: MIT

// Package batch evaluates many operator descriptors concurrently.
//
// Purpose:
//   - Fan Matrix/Eigvals/ExpandMatrix work for independent descriptors out over
//     a bounded errgroup; results come back in request order.
//   - Identical requests (same descriptor fingerprint and target order) are
//     computed once; every duplicate receives its own copy of the matrix.
//
// Errors:
//   - The first failing request cancels the rest; its error is returned wrapped
//     with the request index.
//   - A cancelled ctx surfaces as ctx.Err().
//
// AI-Hints:
//   - Each job is a handful of small dense products; keep the limit near
//     GOMAXPROCS rather than spawning per request.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/blake3"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/wires"
)

// Request asks for one descriptor's matrix on a wire order (empty = own wires).
type Request struct {
	Op    ops.Operator
	Order wires.Wires
}

// Result is the evaluation of one Request.
type Result struct {
	Op      ops.Operator
	Matrix  *matrix.Dense // canonical, or expanded when Order was set
	Eigvals []complex128  // spectrum of the canonical matrix
	Key     [32]byte      // fingerprint of (descriptor, order)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithConcurrency bounds the number of concurrent jobs. Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("batch: WithConcurrency: n must be >= 1")
	}

	return func(e *Evaluator) { e.limit = n }
}

// WithLogger injects a logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l == nil {
			l = zap.NewNop()
		}
		e.logger = l
	}
}

// Evaluator runs Requests concurrently. It holds no per-call state and is safe
// for concurrent use.
type Evaluator struct {
	limit  int
	logger *zap.Logger
}

// NewEvaluator returns an Evaluator with GOMAXPROCS workers and a no-op logger.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{limit: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}

	return e
}

// requestKey fingerprints a request; wire labels contribute type and value.
func requestKey(r Request) [32]byte {
	h := r.Op.Hash()
	return blake3.Sum256(r.Order.AppendKey(h[:]))
}

type job struct {
	req   Request
	first int // index of the first request with this key
	res   Result
}

// Evaluate computes every request and returns results in request order.
func (e *Evaluator) Evaluate(ctx context.Context, reqs []Request) ([]Result, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	jobs := make([]*job, 0, len(reqs))
	byKey := make(map[[32]byte]*job, len(reqs))
	slot := make([]*job, len(reqs))
	for i, r := range reqs {
		k := requestKey(r)
		j, ok := byKey[k]
		if !ok {
			j = &job{req: r, first: i, res: Result{Op: r.Op, Key: k}}
			byKey[k] = j
			jobs = append(jobs, j)
		}
		slot[i] = j
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return evaluate(j)
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("batch evaluation failed",
			zap.Int("requests", len(reqs)),
			zap.Int("unique", len(jobs)),
			zap.Error(err))
		return nil, err
	}

	out := make([]Result, len(reqs))
	for i, j := range slot {
		out[i] = j.res
		if i != j.first {
			out[i].Matrix = j.res.Matrix.Clone().(*matrix.Dense)
			out[i].Eigvals = append([]complex128(nil), j.res.Eigvals...)
		}
	}
	e.logger.Debug("batch evaluated",
		zap.Int("requests", len(reqs)),
		zap.Int("unique", len(jobs)),
		zap.Int("limit", e.limit))

	return out, nil
}

func evaluate(j *job) error {
	m, err := ops.ExpandMatrix(j.req.Op, j.req.Order)
	if err != nil {
		return fmt.Errorf("batch: request %d (%v): %w", j.first, j.req.Op, err)
	}
	ev, err := j.req.Op.Eigvals()
	if err != nil {
		return fmt.Errorf("batch: request %d (%v): %w", j.first, j.req.Op, err)
	}
	j.res.Matrix, j.res.Eigvals = m, ev

	return nil
}
