package bakers

// Engine runs the composite scaling flows: resize, write back, propagate into phases
// and keep the denormalized fields in step. The zero value uses the default flour keywords
type Engine struct {
	flour FlourClassifier
}

// NewEngine returns an engine that classifies flour with c
func NewEngine(c FlourClassifier) *Engine { return &Engine{flour: c} }

// Result summarises a composite scaling flow
type Result struct {
	Scale

	// Ratio is the factor applied to the phase ingredients
	Ratio        float64
	PhasesScaled bool

	// Drift is the rounding difference pushed onto the largest ingredient
	Drift float64
}

// Classifier returns the flour classifier in use
func (e *Engine) Classifier() FlourClassifier {
	if e == nil || len(e.flour.keywords) == 0 {
		return NewFlourClassifier()
	}
	return e.flour
}

// FlourTotal re-derives the flour baseline from the ingredient list
func (e *Engine) FlourTotal(ings []Ingredient) float64 { return e.Classifier().Total(ings) }

// Recalculate refreshes every percentage; a missing baseline is first derived from the flour ingredients
func (e *Engine) Recalculate(r *Recipe) Outcome {
	if r == nil {
		return skipped("nil recipe")
	}
	if r.TotalFlourWeight <= 0 {
		r.TotalFlourWeight = e.FlourTotal(r.Ingredients)
	}
	return CalculatePercentages(r)
}

// ScaleToFlour resizes r in place to newFlour grams of flour and refreshes the percentages
// invalid input leaves r untouched
func (e *Engine) ScaleToFlour(r *Recipe, newFlour float64) Result {
	if r == nil {
		return Result{Scale: Scale{Outcome: skipped("nil recipe")}, Ratio: 1}
	}
	s := ResizeByFlour(*r, newFlour)
	if !s.OK() {
		return Result{Scale: s, Ratio: 1}
	}

	ratio := Ratio(r.TotalFlourWeight, newFlour)
	Apply(r, s.Quantities)
	scaled := Propagate(r.Phases, ratio)
	r.TotalFlourWeight = newFlour
	CalculatePercentages(r)

	return Result{Scale: s, Ratio: ratio, PhasesScaled: scaled}
}

// ScaleToPieces resizes r in place to pieces x pieceWeight of dough
// the phases follow the dough weight ratio; the flour baseline becomes the resized flour weight
// so every percentage stays where it was
// a skipped or invalid resize leaves r untouched
func (e *Engine) ScaleToPieces(r *Recipe, pieces int, pieceWeight float64) Result {
	if r == nil {
		return Result{Scale: Scale{Outcome: skipped("nil recipe")}, Ratio: 1}
	}
	s := ResizeByPieces(*r, pieces, pieceWeight)
	if !s.OK() {
		return Result{Scale: s, Ratio: 1}
	}

	target := float64(pieces) * pieceWeight
	ratio := Ratio(r.TotalWeight(), target)
	Apply(r, s.Quantities)
	drift := Reconcile(r.Ingredients, target)
	scaled := Propagate(r.Phases, ratio)

	r.ServingPieces = pieces
	r.PieceWeight = pieceWeight
	r.TotalFlourWeight = Round2(s.FlourWeight)
	CalculatePercentages(r)

	return Result{Scale: s, Ratio: ratio, PhasesScaled: scaled, Drift: drift}
}
