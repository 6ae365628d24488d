package bakers

// CalculatePercentages sets every ingredient's percentage of the flour baseline
// a non-positive baseline leaves the stored percentages untouched
// ingredients with a non-positive quantity are set to 0
func CalculatePercentages(r *Recipe) Outcome {
	if r == nil {
		return skipped("nil recipe")
	}
	if !(r.TotalFlourWeight > 0) {
		return skipped("total flour weight must be positive")
	}
	for i := range r.Ingredients {
		ing := &r.Ingredients[i]
		if ing.Quantity > 0 {
			ing.BakersPercentage = (ing.Quantity / r.TotalFlourWeight) * 100
			continue
		}
		ing.BakersPercentage = 0
	}
	return Outcome{}
}
