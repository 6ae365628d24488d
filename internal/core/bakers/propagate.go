package bakers

import "math"

// RatioEpsilon is the distance from 1 under which a ratio is treated as identity
const RatioEpsilon = 0.0001

// Ratio returns target/original, or 1 when original is not positive
func Ratio(original, target float64) float64 {
	if original > 0 {
		return target / original
	}
	return 1
}

// IsIdentity reports whether scaling by ratio would be a no-op
func IsIdentity(ratio float64) bool { return math.Abs(ratio-1) <= RatioEpsilon }

// Propagate multiplies every phase ingredient quantity by ratio, back-references included
// it reports whether anything was scaled
func Propagate(phases []Phase, ratio float64) bool {
	if IsIdentity(ratio) {
		return false
	}
	for i := range phases {
		for j := range phases[i].Ingredients {
			phases[i].Ingredients[j].Quantity *= ratio
		}
	}
	return true
}
