// Package domain holds DTOs for recipes http and service contracts
package domain

import "time"

// IngredientInput is one main ingredient in a create or update payload
type IngredientInput struct {
	Name         string  `json:"name" validate:"required,max=200" example:"Farina 00"`
	Quantity     float64 `json:"quantity" validate:"gte=0" example:"1000"`
	Unit         string  `json:"unit,omitempty" validate:"omitempty,max=32" example:"g"`
	PrimaryFlour bool    `json:"primary_flour,omitempty" example:"true"`
}

// PhaseIngredientInput draws a quantity from a main ingredient or from an earlier phase ("PHASE:<index>")
type PhaseIngredientInput struct {
	Ingredient string  `json:"ingredient" validate:"required,max=200" example:"PHASE:0"`
	Quantity   float64 `json:"quantity" validate:"gte=0" example:"200"`
	Unit       string  `json:"unit,omitempty" validate:"omitempty,max=32" example:"g"`
}

// PhaseInput is one recipe phase
type PhaseInput struct {
	Title       string                 `json:"title" validate:"max=200" example:"Poolish"`
	Ingredients []PhaseIngredientInput `json:"ingredients" validate:"dive"`
}

// RecipeInput is the create and update payload
// Version must echo the stored version on update
type RecipeInput struct {
	Title            string            `json:"title" validate:"required,max=200" example:"Pane cafone"`
	Description      string            `json:"description,omitempty" validate:"max=4000"`
	TotalFlourWeight float64           `json:"total_flour_weight" validate:"gte=0" example:"1000"`
	ServingPieces    int               `json:"serving_pieces,omitempty" validate:"gte=0" example:"2"`
	PieceWeight      float64           `json:"piece_weight,omitempty" validate:"gte=0" example:"850"`
	Ingredients      []IngredientInput `json:"ingredients" validate:"required,min=1,max=100,dive"`
	Phases           []PhaseInput      `json:"phases,omitempty" validate:"max=20,dive"`
	Version          int64             `json:"version,omitempty" validate:"gte=0" example:"3"`
}

// Ingredient is a main ingredient with its derived percentage
type Ingredient struct {
	Name             string  `json:"name"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit,omitempty"`
	BakersPercentage float64 `json:"bakers_percentage"`
	PrimaryFlour     bool    `json:"primary_flour,omitempty"`
}

// PhaseIngredient is a phase entry; Label resolves back-references to the phase title
type PhaseIngredient struct {
	Ingredient string  `json:"ingredient"`
	Label      string  `json:"label"`
	Backref    bool    `json:"backref,omitempty"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
}

// Phase is a recipe phase with its summed weight
type Phase struct {
	Title       string            `json:"title"`
	Weight      float64           `json:"weight"`
	Ingredients []PhaseIngredient `json:"ingredients"`
}

// Recipe is the full recipe view
type Recipe struct {
	ID               string       `json:"id" example:"3f0e0c8e-1d5b-4f43-9c38-0a4c5b6f8d21"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	TotalFlourWeight float64      `json:"total_flour_weight"`
	ServingPieces    int          `json:"serving_pieces"`
	PieceWeight      float64      `json:"piece_weight"`
	TotalWeight      float64      `json:"total_weight"`
	Ingredients      []Ingredient `json:"ingredients"`
	Phases           []Phase      `json:"phases"`
	Version          int64        `json:"version"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// RecipeSummary is a list row
type RecipeSummary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	TotalFlourWeight float64   `json:"total_flour_weight"`
	ServingPieces    int       `json:"serving_pieces"`
	PieceWeight      float64   `json:"piece_weight"`
	Version          int64     `json:"version"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListInput pages through recipes
type ListInput struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=200" example:"50"`
	Offset int `query:"offset" validate:"omitempty,min=0" example:"0"`
}

// RecipeList is a page of summaries
type RecipeList struct {
	Items  []RecipeSummary `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// ResizeInput selects the resize mode: newFlour, or pieces with pieceWeight
type ResizeInput struct {
	NewFlour    *float64 `query:"newFlour" validate:"omitempty,gt=0" example:"1500"`
	Pieces      *int     `query:"pieces" validate:"omitempty,gt=0" example:"10"`
	PieceWeight *float64 `query:"pieceWeight" validate:"omitempty,gt=0" example:"200"`
}

// ScaledInput overrides the yield of a stored recipe for display; pieces wins over totalFlour
type ScaledInput struct {
	Pieces      *int     `query:"pieces" validate:"omitempty,gt=0" example:"10"`
	PieceWeight *float64 `query:"pieceWeight" validate:"omitempty,gt=0" example:"200"`
	TotalFlour  *float64 `query:"totalFlour" validate:"omitempty,gt=0" example:"1500"`
}

// ResizeMode names the resize path taken
type ResizeMode string

const (
	// ModeFlour resizes to a flour weight
	ModeFlour ResizeMode = "flour"

	// ModePieces resizes to a piece count and weight
	ModePieces ResizeMode = "pieces"

	// ModeNone leaves the recipe at its stored yield
	ModeNone ResizeMode = "none"
)

// ResizeResult is the projected quantity per ingredient name
type ResizeResult struct {
	Mode        ResizeMode         `json:"mode" example:"pieces"`
	FlourWeight float64            `json:"flour_weight" example:"1159.42"`
	DoughWeight float64            `json:"dough_weight" example:"2000"`
	Quantities  map[string]float64 `json:"quantities"`
}

// ScaledRecipe is a stored recipe with the yield override applied in memory
type ScaledRecipe struct {
	Recipe
	Mode   ResizeMode `json:"mode"`
	Ratio  float64    `json:"ratio"`
	Drift  float64    `json:"drift,omitempty"`
	Scaled bool       `json:"phases_scaled"`
}

// IngredientUsage is how much of a main ingredient the phases draw
type IngredientUsage struct {
	Name      string  `json:"name"`
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
	Overdrawn bool    `json:"overdrawn"`
}

// UsageReport lists usage for every main ingredient
type UsageReport struct {
	RecipeID  string            `json:"recipe_id"`
	Items     []IngredientUsage `json:"items"`
	Overdrawn bool              `json:"overdrawn"`
}

// ScaleEvent is the analytics record emitted for every resize or scaled view
type ScaleEvent struct {
	RecipeID    string
	Mode        ResizeMode
	Ratio       float64
	FlourWeight float64
	Pieces      int
	PieceWeight float64
	At          time.Time
}
