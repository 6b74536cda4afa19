// SPDX-License-Identifier: MIT

package ops

import (
	"math"
	"math/cmplx"
)

// Phase constants, computed once at package initialisation.
var (
	// Omega is the primitive cube root of unity e^{2πi/3}.
	Omega = cmplx.Exp(complex(0, 2*math.Pi/3))

	// Zeta is the primitive ninth root of unity e^{2πi/9}; Zeta³ = Omega.
	Zeta = cmplx.Exp(complex(0, 2*math.Pi/9))

	omega2 = cmplx.Exp(complex(0, 4*math.Pi/3))
	zeta8  = cmplx.Exp(complex(0, 16*math.Pi/9))
	eighth = cmplx.Exp(complex(0, math.Pi/4))
)

// dim is the number of levels per wire.
const dim = 3
