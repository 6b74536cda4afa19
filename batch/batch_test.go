// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/qutrit/batch"
	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/wires"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustOp(t *testing.T) func(ops.Operator, error) ops.Operator {
	return func(o ops.Operator, err error) ops.Operator {
		t.Helper()
		require.NoError(t, err)
		return o
	}
}

func TestEvaluate_OrderAndValues(t *testing.T) {
	x := mustOp(t)(ops.TX(0))
	reqs := []batch.Request{
		{Op: mustOp(t)(ops.TShift(0))},
		{Op: mustOp(t)(ops.TSWAP(0, 1))},
		{Op: x, Order: wires.Range(2)},
		{Op: mustOp(t)(ops.TCNOT(0, 1))},
	}
	ev := batch.NewEvaluator(batch.WithConcurrency(2))
	res, err := ev.Evaluate(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, res, len(reqs))

	for i, r := range res {
		require.True(t, r.Op.Equal(reqs[i].Op))
	}
	require.True(t, matrix.Equal(ops.ShiftMatrix(), res[0].Matrix))
	require.Equal(t, 9, res[2].Matrix.Rows())
	require.Len(t, res[3].Eigvals, 9)
}

func TestEvaluate_Dedupe(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ev := batch.NewEvaluator(batch.WithLogger(zap.New(core)))

	h := mustOp(t)(ops.TH(0))
	reqs := []batch.Request{{Op: h}, {Op: h}, {Op: h, Order: wires.MustNew(1, 0)}}
	res, err := ev.Evaluate(context.Background(), reqs)
	require.NoError(t, err)

	require.Equal(t, res[0].Key, res[1].Key)
	require.NotEqual(t, res[0].Key, res[2].Key)
	require.True(t, matrix.Equal(res[0].Matrix, res[1].Matrix))
	require.NotSame(t, res[0].Matrix, res[1].Matrix) // duplicates get copies

	entries := logs.FilterMessage("batch evaluated").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 2, entries[0].ContextMap()["unique"])
}

func TestEvaluate_DistinctOrdersNotMerged(t *testing.T) {
	x := mustOp(t)(ops.TShift("x"))
	reqs := []batch.Request{
		{Op: x, Order: wires.MustNew("x", "a\x00string=b")},
		{Op: x, Order: wires.MustNew("x", "a", "b")},
	}
	res, err := batch.NewEvaluator().Evaluate(context.Background(), reqs)
	require.NoError(t, err)
	require.NotEqual(t, res[0].Key, res[1].Key)
	require.Equal(t, 9, res[0].Matrix.Rows())
	require.Equal(t, 27, res[1].Matrix.Rows())
}

func TestEvaluate_FirstErrorWins(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ev := batch.NewEvaluator(batch.WithLogger(zap.New(core)))

	reqs := []batch.Request{
		{Op: mustOp(t)(ops.TShift(0))},
		{Op: mustOp(t)(ops.TAdd("a", "b")), Order: wires.MustNew("a", "c")},
	}
	_, err := ev.Evaluate(context.Background(), reqs)
	require.ErrorIs(t, err, wires.ErrWireMismatch)
	require.ErrorContains(t, err, "request 1")
	require.Equal(t, 1, logs.Len())
}

func TestEvaluate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.NewEvaluator().Evaluate(ctx, []batch.Request{{Op: mustOp(t)(ops.TShift(0))}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_Empty(t *testing.T) {
	res, err := batch.NewEvaluator().Evaluate(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestWithConcurrency_Panics(t *testing.T) {
	require.Panics(t, func() { batch.WithConcurrency(0) })
}
