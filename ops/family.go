// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"strings"
)

// Family is the closed set of gate kinds. The zero value is invalid.
type Family uint8

// Gate families.
const (
	FamilyShift Family = iota + 1
	FamilyClock
	FamilyAdd
	FamilySWAP
	FamilyCNOT
	FamilyX
	FamilyY
	FamilyZ
	FamilyH
	FamilyS
	FamilyT
)

// Families lists every family in declaration order.
var Families = []Family{
	FamilyShift, FamilyClock, FamilyAdd, FamilySWAP, FamilyCNOT,
	FamilyX, FamilyY, FamilyZ, FamilyH, FamilyS, FamilyT,
}

var familyNames = [...]string{
	FamilyShift: "TShift",
	FamilyClock: "TClock",
	FamilyAdd:   "TAdd",
	FamilySWAP:  "TSWAP",
	FamilyCNOT:  "TCNOT",
	FamilyX:     "TX",
	FamilyY:     "TY",
	FamilyZ:     "TZ",
	FamilyH:     "TH",
	FamilyS:     "TS",
	FamilyT:     "TT",
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool { return f >= FamilyShift && f <= FamilyT }

// String returns the canonical gate name, e.g. "TShift".
func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Family(%d)", uint8(f))
	}

	return familyNames[f]
}

// ParseFamily resolves a gate name case-insensitively ("tx", "TSWAP", ...).
// Errors: ErrUnknownFamily.
func ParseFamily(name string) (Family, error) {
	for _, f := range Families {
		if strings.EqualFold(name, familyNames[f]) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("ops: %q: %w", name, ErrUnknownFamily)
}

// NumWires returns the family's arity (1 or 2), or 0 for an invalid family.
func (f Family) NumWires() int {
	switch f {
	case FamilyAdd, FamilySWAP, FamilyCNOT:
		return 2
	case FamilyShift, FamilyClock, FamilyX, FamilyY, FamilyZ, FamilyH, FamilyS, FamilyT:
		return 1
	default:
		return 0
	}
}

// Period returns the smallest n > 0 with Uⁿ = I, or 0 when integer powers are
// not reduced (TS, TT).
func (f Family) Period() int {
	switch f {
	case FamilyShift, FamilyClock, FamilyAdd:
		return 3
	case FamilySWAP, FamilyCNOT, FamilyX, FamilyY, FamilyZ, FamilyH:
		return 2
	default:
		return 0
	}
}

// takesSubspace reports whether the family is parametrised by a subspace.
func (f Family) takesSubspace() bool {
	switch f {
	case FamilyCNOT, FamilyX, FamilyY, FamilyZ, FamilyH, FamilyS, FamilyT:
		return true
	default:
		return false
	}
}

// ordered reports whether the family keeps the caller's subspace order.
func (f Family) ordered() bool {
	return f == FamilyZ || f == FamilyS || f == FamilyT
}

// optionalSubspace reports whether the family may run without a subspace.
func (f Family) optionalSubspace() bool { return f == FamilyS || f == FamilyT }

// defaultSubspace reports the subspace used when none is given; phase gates have none.
func (f Family) defaultSubspace() (Subspace, bool) {
	switch f {
	case FamilyCNOT, FamilyX, FamilyY, FamilyZ, FamilyH:
		return Subspace{0, 1}, true
	default:
		return Subspace{}, false
	}
}
