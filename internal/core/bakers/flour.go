package bakers

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultFlourKeywords are matched against ingredient names when no ingredient is tagged as flour
var DefaultFlourKeywords = []string{"farina", "flour"}

// FlourClassifier decides which ingredients make up the flour baseline
// explicit PrimaryFlour tags win; otherwise names are matched by case-folded substring
type FlourClassifier struct {
	keywords []string
}

// NewFlourClassifier folds and stores keywords, falling back to DefaultFlourKeywords
func NewFlourClassifier(keywords ...string) FlourClassifier {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, fold(k))
		}
	}
	if len(out) == 0 {
		for _, k := range DefaultFlourKeywords {
			out = append(out, fold(k))
		}
	}
	return FlourClassifier{keywords: out}
}

// Keywords returns the folded keywords
func (c FlourClassifier) Keywords() []string { return append([]string(nil), c.keywords...) }

// Matches reports whether name contains a flour keyword
func (c FlourClassifier) Matches(name string) bool {
	n := fold(name)
	for _, k := range c.keywords {
		if strings.Contains(n, k) {
			return true
		}
	}
	return false
}

// Total sums the quantities of the flour ingredients
func (c FlourClassifier) Total(ings []Ingredient) float64 {
	tagged := false
	for _, ing := range ings {
		if ing.PrimaryFlour {
			tagged = true
			break
		}
	}
	var sum float64
	for _, ing := range ings {
		if tagged {
			if ing.PrimaryFlour {
				sum += ing.Quantity
			}
			continue
		}
		if c.Matches(ing.Name) {
			sum += ing.Quantity
		}
	}
	return sum
}

// a Caser is stateful, so build one per call
func fold(s string) string { return cases.Fold().String(s) }
