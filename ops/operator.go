// SPDX-License-Identifier: MIT

// Package ops - operator descriptors.
//
// Purpose:
//   - Bind a Family to concrete wires and parameters, validating everything once.
//   - Dispatch Matrix/Eigvals on the family tag (exhaustive switch).
//
// AI-Hints:
//   - Operator is a small immutable value; copy it freely.
//   - Derived data is never cached: each Matrix call allocates.
package ops

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/wires"
)

const (
	opNew     = "New"
	opMatrix  = "Matrix"
	opEigvals = "Eigvals"
)

// Operator is an immutable gate descriptor.
type Operator struct {
	family      Family
	wires       wires.Wires
	subspace    Subspace
	hasSubspace bool
	control     int
}

// New validates and builds a descriptor.
// MAIN DESCRIPTION:
//   - Checks the family, its arity, then family-specific parameters; fills
//     defaults (subspace (0,1) for TX/TY/TZ/TH/TCNOT, control 2 for TCNOT).
//
// Errors:
//   - ErrUnknownFamily, ErrWireCount, ErrSubspaceNotSupported,
//     ErrInvalidSubspace, ErrInvalidControlValue.
func New(f Family, w wires.Wires, opts ...Option) (Operator, error) {
	if !f.Valid() {
		return Operator{}, opsErrorf(opNew, fmt.Errorf("%v: %w", f, ErrUnknownFamily))
	}
	if w.Len() != f.NumWires() {
		return Operator{}, opsErrorf(opNew, fmt.Errorf("%v takes %d wires, got %d: %w", f, f.NumWires(), w.Len(), ErrWireCount))
	}
	var cfg settings
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	op := Operator{family: f, wires: w}
	switch {
	case cfg.hasSubspace && !f.takesSubspace():
		return Operator{}, opsErrorf(opNew, fmt.Errorf("%v: %w", f, ErrSubspaceNotSupported))
	case cfg.hasSubspace && cfg.subspace == nil && !f.optionalSubspace():
		return Operator{}, opsErrorf(opNew, fmt.Errorf("%v: nil subspace: %w", f, ErrInvalidSubspace))
	case cfg.hasSubspace && cfg.subspace != nil:
		s, err := ParseSubspace(cfg.subspace)
		if err != nil {
			return Operator{}, opsErrorf(opNew, err)
		}
		if !f.ordered() {
			s = s.Sorted()
		}
		op.subspace, op.hasSubspace = s, true
	default:
		op.subspace, op.hasSubspace = f.defaultSubspace()
	}

	if f == FamilyCNOT {
		op.control = DefaultControlValue
		if cfg.hasControl {
			if cfg.control < 0 || cfg.control >= dim {
				return Operator{}, opsErrorf(opNew, fmt.Errorf("control %d: %w", cfg.control, ErrInvalidControlValue))
			}
			op.control = cfg.control
		}
	} else if cfg.hasControl {
		return Operator{}, opsErrorf(opNew, fmt.Errorf("%v has no control value: %w", f, ErrInvalidControlValue))
	}

	return op, nil
}

// newOn builds a descriptor from raw wire labels.
func newOn(f Family, labels []any, opts []Option) (Operator, error) {
	w, err := wires.New(labels...)
	if err != nil {
		return Operator{}, opsErrorf(opNew, err)
	}

	return New(f, w, opts...)
}

// TShift builds a shift gate on wire w.
func TShift(w any) (Operator, error) { return newOn(FamilyShift, []any{w}, nil) }

// TClock builds a clock gate on wire w.
func TClock(w any) (Operator, error) { return newOn(FamilyClock, []any{w}, nil) }

// TAdd builds a controlled-add gate; control is the first wire.
func TAdd(control, target any) (Operator, error) {
	return newOn(FamilyAdd, []any{control, target}, nil)
}

// TSWAP builds a register swap.
func TSWAP(a, b any) (Operator, error) { return newOn(FamilySWAP, []any{a, b}, nil) }

// TCNOT builds a controlled subspace-X gate; control is the first wire.
func TCNOT(control, target any, opts ...Option) (Operator, error) {
	return newOn(FamilyCNOT, []any{control, target}, opts)
}

// TX builds a subspace X gate.
func TX(w any, opts ...Option) (Operator, error) { return newOn(FamilyX, []any{w}, opts) }

// TY builds a subspace Y gate.
func TY(w any, opts ...Option) (Operator, error) { return newOn(FamilyY, []any{w}, opts) }

// TZ builds a subspace Z gate.
func TZ(w any, opts ...Option) (Operator, error) { return newOn(FamilyZ, []any{w}, opts) }

// TH builds a subspace Hadamard.
func TH(w any, opts ...Option) (Operator, error) { return newOn(FamilyH, []any{w}, opts) }

// TS builds the qutrit S gate.
func TS(w any, opts ...Option) (Operator, error) { return newOn(FamilyS, []any{w}, opts) }

// TT builds the qutrit T gate.
func TT(w any, opts ...Option) (Operator, error) { return newOn(FamilyT, []any{w}, opts) }

// Family returns the gate family.
func (o Operator) Family() Family { return o.family }

// Wires returns the wires in operator order.
func (o Operator) Wires() wires.Wires { return o.wires }

// Subspace returns the canonical subspace and whether one is set.
func (o Operator) Subspace() (Subspace, bool) { return o.subspace, o.hasSubspace }

// ControlValue returns the TCNOT control state; 0 for other families.
func (o Operator) ControlValue() int { return o.control }

// Name returns the family name.
func (o Operator) Name() string { return o.family.String() }

// Label returns the short drawing label; TCNOT draws as its target "TX".
func (o Operator) Label() string {
	if o.family == FamilyCNOT {
		return FamilyX.String()
	}

	return o.family.String()
}

// subspacePtr returns nil when no subspace is set.
func (o Operator) subspacePtr() *Subspace {
	if !o.hasSubspace {
		return nil
	}
	s := o.subspace

	return &s
}

// Matrix returns a fresh canonical matrix of side 3^len(Wires()).
// Errors: ErrUnknownFamily for a zero-value Operator.
func (o Operator) Matrix() (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	switch o.family {
	case FamilyShift:
		m = ShiftMatrix()
	case FamilyClock:
		m = ClockMatrix()
	case FamilyAdd:
		m = AddMatrix()
	case FamilySWAP:
		m = SWAPMatrix()
	case FamilyCNOT:
		m, err = CNOTMatrix(o.subspace, o.control)
	case FamilyX:
		m, err = XMatrix(o.subspace)
	case FamilyY:
		m, err = YMatrix(o.subspace)
	case FamilyZ:
		m, err = ZMatrix(o.subspace)
	case FamilyH:
		m, err = HMatrix(o.subspace)
	case FamilyS:
		m, err = SMatrix(o.subspacePtr())
	case FamilyT:
		m, err = TMatrix(o.subspacePtr())
	default:
		err = ErrUnknownFamily
	}
	if err != nil {
		return nil, opsErrorf(opMatrix, err)
	}

	return m, nil
}

// Eigvals returns the spectrum. No eigenbasis correspondence is implied.
// Errors: ErrUnknownFamily for a zero-value Operator.
func (o Operator) Eigvals() ([]complex128, error) {
	switch o.family {
	case FamilyShift:
		return ShiftEigvals(), nil
	case FamilyClock:
		return ClockEigvals(), nil
	case FamilyAdd:
		return AddEigvals(), nil
	case FamilySWAP:
		return SWAPEigvals(), nil
	case FamilyCNOT:
		return CNOTEigvals(), nil
	case FamilyX, FamilyY, FamilyH:
		return involutionEigvals(), nil
	case FamilyZ, FamilyS, FamilyT:
		ev, err := diagonalOf(o.Matrix())
		if err != nil {
			return nil, opsErrorf(opEigvals, err)
		}
		return ev, nil
	default:
		return nil, opsErrorf(opEigvals, ErrUnknownFamily)
	}
}

// Equal reports whether two descriptors are interchangeable.
func (o Operator) Equal(other Operator) bool {
	return o.family == other.family &&
		o.wires.Equal(other.wires) &&
		o.hasSubspace == other.hasSubspace &&
		o.subspace == other.subspace &&
		o.control == other.control
}

// String renders e.g. "TCNOT(wires=[0, 1], subspace=(0, 1), control_value=2)".
func (o Operator) String() string {
	var sb strings.Builder
	sb.WriteString(o.family.String())
	sb.WriteString("(wires=")
	sb.WriteString(o.wires.String())
	if o.hasSubspace {
		sb.WriteString(", subspace=")
		sb.WriteString(o.subspace.String())
	}
	if o.family == FamilyCNOT {
		fmt.Fprintf(&sb, ", control_value=%d", o.control)
	}
	sb.WriteString(")")

	return sb.String()
}
