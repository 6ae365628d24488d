package bakers

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds to two decimals, half away from zero
// decimal arithmetic avoids binary artefacts such as 1.005 rounding down
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
