package service

import (
	"levain/internal/core/bakers"
	"levain/internal/services/api/recipes/domain"
	"levain/internal/services/api/recipes/repo"
)

// fromInput builds an engine recipe from a payload
func fromInput(in domain.RecipeInput) bakers.Recipe {
	r := bakers.Recipe{
		TotalFlourWeight: in.TotalFlourWeight,
		ServingPieces:    in.ServingPieces,
		PieceWeight:      in.PieceWeight,
		Ingredients:      make([]bakers.Ingredient, 0, len(in.Ingredients)),
		Phases:           make([]bakers.Phase, 0, len(in.Phases)),
	}
	for _, ing := range in.Ingredients {
		r.Ingredients = append(r.Ingredients, bakers.Ingredient{
			Name:         ing.Name,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			PrimaryFlour: ing.PrimaryFlour,
		})
	}
	for _, p := range in.Phases {
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

// fromRow always allocates fresh slices, so cached rows are never shared with callers
func fromRow(row repo.RowRecipe) bakers.Recipe {
	r := bakers.Recipe{
		TotalFlourWeight: row.TotalFlourWeight,
		ServingPieces:    row.ServingPieces,
		PieceWeight:      row.PieceWeight,
		Ingredients:      make([]bakers.Ingredient, 0, len(row.Ingredients)),
		Phases:           make([]bakers.Phase, 0, len(row.Phases)),
	}
	for _, ing := range row.Ingredients {
		r.Ingredients = append(r.Ingredients, bakers.Ingredient{
			Name:             ing.Name,
			Quantity:         ing.Quantity,
			Unit:             ing.Unit,
			BakersPercentage: ing.BakersPercentage,
			PrimaryFlour:     ing.PrimaryFlour,
		})
	}
	for _, p := range row.Phases {
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

// withRecipe copies the engine recipe into a row, keeping the row's header fields
func withRecipe(row repo.RowRecipe, r bakers.Recipe) repo.RowRecipe {
	row.TotalFlourWeight = r.TotalFlourWeight
	row.ServingPieces = r.ServingPieces
	row.PieceWeight = r.PieceWeight
	row.Ingredients = make([]repo.RowIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		row.Ingredients = append(row.Ingredients, repo.RowIngredient{
			Name:             ing.Name,
			Quantity:         ing.Quantity,
			Unit:             ing.Unit,
			BakersPercentage: ing.BakersPercentage,
			PrimaryFlour:     ing.PrimaryFlour,
		})
	}
	row.Phases = make([]repo.RowPhase, 0, len(r.Phases))
	for _, p := range r.Phases {
		ph := repo.RowPhase{Title: p.Title, Ingredients: make([]repo.RowPhaseIngredient, 0, len(p.Ingredients))}
		for _, pi := range p.Ingredients {
			ph.Ingredients = append(ph.Ingredients, repo.RowPhaseIngredient{
				Ingredient: pi.Ref.String(),
				Quantity:   pi.Quantity,
				Unit:       pi.Unit,
			})
		}
		row.Phases = append(row.Phases, ph)
	}
	return row
}

// view renders r with the identity and timestamps of row
func view(row repo.RowRecipe, r bakers.Recipe) domain.Recipe {
	out := domain.Recipe{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		TotalFlourWeight: r.TotalFlourWeight,
		ServingPieces:    r.ServingPieces,
		PieceWeight:      r.PieceWeight,
		TotalWeight:      bakers.Round2(r.TotalWeight()),
		Ingredients:      make([]domain.Ingredient, 0, len(r.Ingredients)),
		Phases:           make([]domain.Phase, 0, len(r.Phases)),
		Version:          row.Version,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, domain.Ingredient{
			Name:             ing.Name,
			Quantity:         ing.Quantity,
			Unit:             ing.Unit,
			BakersPercentage: ing.BakersPercentage,
			PrimaryFlour:     ing.PrimaryFlour,
		})
	}
	for i, p := range r.Phases {
		w, _ := bakers.PhaseWeight(r, i)
		ph := domain.Phase{Title: p.Title, Weight: w, Ingredients: make([]domain.PhaseIngredient, 0, len(p.Ingredients))}
		for _, pi := range p.Ingredients {
			ph.Ingredients = append(ph.Ingredients, domain.PhaseIngredient{
				Ingredient: pi.Ref.String(),
				Label:      bakers.ResolveLabel(r, pi.Ref),
				Backref:    pi.Ref.IsBackref(),
				Quantity:   pi.Quantity,
				Unit:       pi.Unit,
			})
		}
		out.Phases = append(out.Phases, ph)
	}
	return out
}

func summary(row repo.RowSummary) domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:               row.ID,
		Title:            row.Title,
		TotalFlourWeight: row.TotalFlourWeight,
		ServingPieces:    row.ServingPieces,
		PieceWeight:      row.PieceWeight,
		Version:          row.Version,
		UpdatedAt:        row.UpdatedAt,
	}
}
