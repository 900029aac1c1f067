package Flame2D

// stoichiometricAFR is the mass-based air/fuel factor of the mixture-fraction
// relation Zf = 1 / (1 + 4*4.29/eq).
const stoichiometricAFR = 4 * 4.29

// MixtureBounds are the admissible mixture-fraction limits used to clamp the
// species boundary values.
type MixtureBounds struct {
	ZfMin, ZfMax float64
	ZoMin, ZoMax float64
}

// NewMixtureBounds derives the bounds from the equivalence ratio.
//
// It reproduces the original model exactly: the bounds are computed from the
// fixed reference range eqMin=0.8, eqMax=1.0 and the eq argument is unused.
// That is very likely a latent defect carried over deliberately; see
// NewMixtureBoundsCorrected for the variant that honors eq.
func NewMixtureBounds(eq float64) MixtureBounds {
	_ = eq
	return boundsFromRange(0.8, 1.0)
}

// NewMixtureBoundsCorrected scales the reference equivalence-ratio range by
// the actual eq, so richer or leaner flames widen or narrow the admissible
// mixture window. Kept behind a configuration flag for validation runs.
func NewMixtureBoundsCorrected(eq float64) MixtureBounds {
	return boundsFromRange(0.8*eq, 1.0*eq)
}

func boundsFromRange(eqMin, eqMax float64) (b MixtureBounds) {
	b.ZfMin = 1 / (1 + stoichiometricAFR/eqMin)
	b.ZfMax = 1 / (1 + stoichiometricAFR/eqMax)
	b.ZoMin = 1 - b.ZfMax
	b.ZoMax = 1 - b.ZfMin
	return
}
