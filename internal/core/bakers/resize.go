package bakers

// ResizeByFlour projects every ingredient onto a new flour weight using its stored percentage
// quantities are rounded to two decimals; duplicate names are last-write-wins
// a non-positive weight still yields the degenerate mapping, flagged StatusInvalid
func ResizeByFlour(r Recipe, newFlourWeight float64) Scale {
	out := Scale{
		FlourWeight: newFlourWeight,
		Quantities:  make(Quantities, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		out.Quantities[ing.Name] = Round2((ing.BakersPercentage * newFlourWeight) / 100)
	}
	if !(newFlourWeight > 0) {
		out.Outcome = invalid("flour weight must be positive")
	}
	return out
}

// ResizeByPieces projects the recipe onto pieces x pieceWeight of dough
// the sum of percentages is dough weight as a multiple of flour, so inverting it gives the flour weight
// a zero percentage sum returns an empty mapping with StatusSkipped
func ResizeByPieces(r Recipe, pieces int, pieceWeight float64) Scale {
	target := float64(pieces) * pieceWeight
	total := r.TotalPercentage()
	if total == 0 {
		return Scale{Outcome: skipped("total percentage is zero"), Quantities: Quantities{}}
	}

	out := ResizeByFlour(r, target/(total/100))
	if pieces <= 0 || !(pieceWeight > 0) {
		out.Outcome = invalid("pieces and piece weight must be positive")
	}
	return out
}

// Apply writes q onto the recipe's ingredients by exact name and returns how many were updated
func Apply(r *Recipe, q Quantities) int {
	if r == nil {
		return 0
	}
	n := 0
	for i := range r.Ingredients {
		if v, ok := q[r.Ingredients[i].Name]; ok {
			r.Ingredients[i].Quantity = v
			n++
		}
	}
	return n
}
