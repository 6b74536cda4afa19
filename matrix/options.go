// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric predicates.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose-like predicates.
	DefaultEpsilon = 1e-9

	// DefaultRelTolerance is the relative tolerance used by AllClose.
	DefaultRelTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "matrix: WithRelTolerance: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps  float64 // absolute tolerance, >= 0
	rtol float64 // relative tolerance, >= 0
}

// WithEpsilon sets the absolute tolerance used by predicates.
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - 1e-9 suits products of a handful of unit-modulus entries; widen it for
//     high powers of irrational phases.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTolerance sets the relative tolerance used by AllClose:
// |a-b| <= eps + rtol*|b|.
func WithRelTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// gatherOptions resolves defaults then applies setters in order (later wins).
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, rtol: DefaultRelTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
