// SPDX-License-Identifier: MIT

package stateprep

import "math"

// DefaultTolerance is the absolute tolerance on each row's L2 norm.
const DefaultTolerance = 1e-10

const panicToleranceInvalid = "stateprep: WithTolerance: tol must be finite, non-negative"

// Option configures StateVector validation.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	tol float64
}

// WithTolerance overrides DefaultTolerance.
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
