package bakers

import "math"

// DriftTolerance is the largest rounding drift left in place after a resize
const DriftTolerance = 0.01

// Reconcile pushes the rounding drift between target and the summed quantities onto the largest
// ingredient, so the dough weight lands on the requested yield. It returns the drift it absorbed
func Reconcile(ings []Ingredient, target float64) float64 {
	if len(ings) == 0 {
		return 0
	}
	var sum float64
	largest := 0
	for i, ing := range ings {
		sum += ing.Quantity
		if ing.Quantity > ings[largest].Quantity {
			largest = i
		}
	}
	drift := Round2(target - sum)
	if math.Abs(drift) <= DriftTolerance {
		return 0
	}
	ings[largest].Quantity = Round2(ings[largest].Quantity + drift)
	return drift
}
