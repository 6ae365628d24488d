package bakers

import (
	"fmt"
	"math"
)

// UsageTolerance is how far phase usage may exceed a main quantity before it counts as overdrawn
const UsageTolerance = 0.01

// IngredientUsage reports how much of a main ingredient the phases draw
type IngredientUsage struct {
	Name      string
	Total     float64
	Used      float64
	Remaining float64
	Overdrawn bool
}

// Usage sums named phase entries per main ingredient; back-references are not counted
// the result follows the main ingredient order
func Usage(r Recipe) []IngredientUsage {
	used := make(map[string]float64, len(r.Ingredients))
	for _, p := range r.Phases {
		for _, pi := range p.Ingredients {
			if pi.Ref.IsBackref() {
				continue
			}
			used[pi.Ref.Name()] += pi.Quantity
		}
	}

	out := make([]IngredientUsage, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		u := used[ing.Name]
		out = append(out, IngredientUsage{
			Name:      ing.Name,
			Total:     ing.Quantity,
			Used:      u,
			Remaining: ing.Quantity - u,
			Overdrawn: u-ing.Quantity > UsageTolerance,
		})
	}
	return out
}

// PhaseWeight is the summed quantity of a phase, which is what a back-reference to it carries
func PhaseWeight(r Recipe, index int) (float64, bool) {
	if index < 0 || index >= len(r.Phases) {
		return 0, false
	}
	var sum float64
	for _, pi := range r.Phases[index].Ingredients {
		sum += pi.Quantity
	}
	return sum, true
}

// ResolveLabel returns a display label for ref: the ingredient name, or the title of the referenced phase
func ResolveLabel(r Recipe, ref Ref) string {
	i, ok := ref.Phase()
	if !ok {
		return ref.Name()
	}
	if i >= 0 && i < len(r.Phases) && r.Phases[i].Title != "" {
		return r.Phases[i].Title
	}
	return fmt.Sprintf("Phase %d", i+1)
}

// PhaseIssue describes one structural problem in the phase list
type PhaseIssue struct {
	Phase      int
	Ingredient int
	Field      string
	Message    string
}

// CheckPhases reports back-references that do not point to an earlier phase, named entries with no
// main ingredient, negative quantities and overdrawn ingredients
func CheckPhases(r Recipe) []PhaseIssue {
	var issues []PhaseIssue
	names := make(map[string]struct{}, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names[ing.Name] = struct{}{}
	}

	for p, ph := range r.Phases {
		for j, pi := range ph.Ingredients {
			field := fmt.Sprintf("phases[%d].ingredients[%d]", p, j)
			if pi.Quantity < 0 || math.IsNaN(pi.Quantity) {
				issues = append(issues, PhaseIssue{p, j, field + ".quantity", "quantity must not be negative"})
			}
			if idx, ok := pi.Ref.Phase(); ok {
				if idx < 0 || idx >= p {
					issues = append(issues, PhaseIssue{p, j, field + ".ingredient", fmt.Sprintf("%s must reference an earlier phase", pi.Ref)})
				}
				continue
			}
			if _, ok := names[pi.Ref.Name()]; !ok {
				issues = append(issues, PhaseIssue{p, j, field + ".ingredient", fmt.Sprintf("unknown ingredient %q", pi.Ref.Name())})
			}
		}
	}

	for _, u := range Usage(r) {
		if u.Overdrawn {
			issues = append(issues, PhaseIssue{
				Phase:      -1,
				Ingredient: -1,
				Field:      "phases",
				Message:    fmt.Sprintf("%s: phases use %.2f of %.2f", u.Name, u.Used, u.Total),
			})
		}
	}
	return issues
}
