package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"levain/internal/core/bakers"

	"gopkg.in/yaml.v3"
)

// recipeFile is the on-disk recipe; JSON input works too since yaml.v3 reads it as flow YAML
type recipeFile struct {
	Title            string           `yaml:"title,omitempty" json:"title,omitempty"`
	TotalFlourWeight float64          `yaml:"total_flour_weight,omitempty" json:"total_flour_weight,omitempty"`
	ServingPieces    int              `yaml:"serving_pieces,omitempty" json:"serving_pieces,omitempty"`
	PieceWeight      float64          `yaml:"piece_weight,omitempty" json:"piece_weight,omitempty"`
	Ingredients      []ingredientFile `yaml:"ingredients" json:"ingredients"`
	Phases           []phaseFile      `yaml:"phases,omitempty" json:"phases,omitempty"`
}

type ingredientFile struct {
	Name             string  `yaml:"name" json:"name"`
	Quantity         float64 `yaml:"quantity" json:"quantity"`
	Unit             string  `yaml:"unit,omitempty" json:"unit,omitempty"`
	PrimaryFlour     bool    `yaml:"primary_flour,omitempty" json:"primary_flour,omitempty"`
	BakersPercentage float64 `yaml:"bakers_percentage,omitempty" json:"bakers_percentage,omitempty"`
}

type phaseFile struct {
	Title       string                `yaml:"title,omitempty" json:"title,omitempty"`
	Ingredients []phaseIngredientFile `yaml:"ingredients" json:"ingredients"`
}

type phaseIngredientFile struct {
	Ingredient string  `yaml:"ingredient" json:"ingredient"`
	Quantity   float64 `yaml:"quantity" json:"quantity"`
	Unit       string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// readRecipe loads path, or stdin when path is "-"
func readRecipe(path string, stdin io.Reader) (recipeFile, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return recipeFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return parseRecipe(raw)
}

func parseRecipe(raw []byte) (recipeFile, error) {
	var rf recipeFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return rf, errors.New("empty recipe file")
		}
		return rf, fmt.Errorf("parse recipe: %w", err)
	}
	if len(rf.Ingredients) == 0 {
		return rf, errors.New("recipe has no ingredients")
	}
	for i, ing := range rf.Ingredients {
		if ing.Name == "" {
			return rf, fmt.Errorf("ingredients[%d]: name is required", i)
		}
	}
	return rf, nil
}

func (rf recipeFile) recipe() bakers.Recipe {
	r := bakers.Recipe{
		TotalFlourWeight: rf.TotalFlourWeight,
		ServingPieces:    rf.ServingPieces,
		PieceWeight:      rf.PieceWeight,
		Ingredients:      make([]bakers.Ingredient, 0, len(rf.Ingredients)),
	}
	for _, ing := range rf.Ingredients {
		r.Ingredients = append(r.Ingredients, bakers.Ingredient{
			Name:         ing.Name,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			PrimaryFlour: ing.PrimaryFlour,
		})
	}
	for _, p := range rf.Phases {
		ph := bakers.Phase{Title: p.Title, Ingredients: make([]bakers.PhaseIngredient, 0, len(p.Ingredients))}
		for _, pi := range p.Ingredients {
			ph.Ingredients = append(ph.Ingredients, bakers.PhaseIngredient{
				Ref:      bakers.ParseRef(pi.Ingredient),
				Quantity: pi.Quantity,
				Unit:     pi.Unit,
			})
		}
		r.Phases = append(r.Phases, ph)
	}
	return r
}

// withRecipe writes the engine's numbers back into the file shape, rounded for display
func (rf recipeFile) withRecipe(r bakers.Recipe) recipeFile {
	out := recipeFile{
		Title:            rf.Title,
		TotalFlourWeight: bakers.Round2(r.TotalFlourWeight),
		ServingPieces:    r.ServingPieces,
		PieceWeight:      bakers.Round2(r.PieceWeight),
		Ingredients:      make([]ingredientFile, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, ingredientFile{
			Name:             ing.Name,
			Quantity:         bakers.Round2(ing.Quantity),
			Unit:             ing.Unit,
			PrimaryFlour:     ing.PrimaryFlour,
			BakersPercentage: bakers.Round2(ing.BakersPercentage),
		})
	}
	for _, p := range r.Phases {
		pf := phaseFile{Title: p.Title, Ingredients: make([]phaseIngredientFile, 0, len(p.Ingredients))}
		for _, pi := range p.Ingredients {
			pf.Ingredients = append(pf.Ingredients, phaseIngredientFile{
				Ingredient: pi.Ref.String(),
				Quantity:   bakers.Round2(pi.Quantity),
				Unit:       pi.Unit,
			})
		}
		out.Phases = append(out.Phases, pf)
	}
	return out
}
