// Package bakers implements baker's percentage math: ingredient percentages relative to the
// total flour weight, resizing by flour weight or by yield, and ratio propagation into phases
package bakers

// Recipe is the snapshot the engine works on
// the engine assumes exclusive access to it for the duration of one call
type Recipe struct {
	// TotalFlourWeight is the 100% baseline
	TotalFlourWeight float64
	ServingPieces    int
	PieceWeight      float64

	Ingredients []Ingredient
	Phases      []Phase
}

// Ingredient is one entry of the main ingredient list
// Name is the join key to phase ingredients (exact, case-sensitive)
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string

	// BakersPercentage is derived from Quantity and the flour baseline
	BakersPercentage float64

	// PrimaryFlour tags the ingredient as part of the flour baseline
	PrimaryFlour bool
}

// Phase is one step of the recipe with its own ingredient breakdown
type Phase struct {
	Title       string
	Ingredients []PhaseIngredient
}

// PhaseIngredient is a quantity drawn from a main ingredient or from an earlier phase
type PhaseIngredient struct {
	Ref      Ref
	Quantity float64
	Unit     string
}

// TotalWeight sums the main ingredient quantities
func (r Recipe) TotalWeight() float64 {
	var sum float64
	for _, ing := range r.Ingredients {
		sum += ing.Quantity
	}
	return sum
}

// TotalPercentage sums the main ingredient percentages, i.e. dough weight as a multiple of flour
func (r Recipe) TotalPercentage() float64 {
	var sum float64
	for _, ing := range r.Ingredients {
		sum += ing.BakersPercentage
	}
	return sum
}
