package bakers

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// country loaf used across the table tests
func loaf() Recipe {
	return Recipe{
		TotalFlourWeight: 1000,
		Ingredients: []Ingredient{
			{Name: "Flour", Quantity: 1000, Unit: "g"},
			{Name: "Water", Quantity: 700, Unit: "g"},
			{Name: "Salt", Quantity: 20, Unit: "g"},
			{Name: "Yeast", Quantity: 5, Unit: "g"},
		},
	}
}

func percentages(r Recipe) []float64 {
	out := make([]float64, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		out[i] = ing.BakersPercentage
	}
	return out
}

func TestCalculatePercentages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Recipe)
		want   []float64
		status Status
	}{
		{
			name: "loaf",
			want: []float64{100, 70, 2, 0.5},
		},
		{
			name:   "zero baseline leaves stored values",
			mutate: func(r *Recipe) { r.TotalFlourWeight = 0; r.Ingredients[1].BakersPercentage = 42 },
			want:   []float64{0, 42, 0, 0},
			status: StatusSkipped,
		},
		{
			name:   "negative baseline skipped",
			mutate: func(r *Recipe) { r.TotalFlourWeight = -5 },
			want:   []float64{0, 0, 0, 0},
			status: StatusSkipped,
		},
		{
			name:   "non-positive quantity forced to zero",
			mutate: func(r *Recipe) { r.Ingredients[3].Quantity = 0; r.Ingredients[3].BakersPercentage = 9 },
			want:   []float64{100, 70, 2, 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := loaf()
			if tc.mutate != nil {
				tc.mutate(&r)
			}
			out := CalculatePercentages(&r)
			if out.Status != tc.status {
				t.Fatalf("status = %v, want %v", out.Status, tc.status)
			}
			if diff := cmp.Diff(tc.want, percentages(r), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("percentages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculatePercentages_FormulaAndIdempotence(t *testing.T) {
	r := Recipe{
		TotalFlourWeight: 837.3,
		Ingredients: []Ingredient{
			{Name: "Tipo 00", Quantity: 612.1},
			{Name: "Semola", Quantity: 225.2},
			{Name: "Acqua", Quantity: 611.9},
			{Name: "Olio", Quantity: 17.77},
		},
	}
	CalculatePercentages(&r)
	for _, ing := range r.Ingredients {
		want := ing.Quantity / r.TotalFlourWeight * 100
		if math.Abs(ing.BakersPercentage-want) > 1e-9 {
			t.Fatalf("%s = %v, want %v", ing.Name, ing.BakersPercentage, want)
		}
	}

	first := percentages(r)
	CalculatePercentages(&r)
	if diff := cmp.Diff(first, percentages(r)); diff != "" {
		t.Fatalf("second pass changed percentages:\n%s", diff)
	}
}

func TestCalculatePercentages_Nil(t *testing.T) {
	if out := CalculatePercentages(nil); out.Status != StatusSkipped {
		t.Fatalf("nil recipe status = %v", out.Status)
	}
}

func TestResizeByFlour(t *testing.T) {
	r := loaf()
	CalculatePercentages(&r)

	tests := []struct {
		name   string
		flour  float64
		want   Quantities
		status Status
	}{
		{
			name:  "scale up",
			flour: 1500,
			want:  Quantities{"Flour": 1500, "Water": 1050, "Salt": 30, "Yeast": 7.5},
		},
		{
			name:  "same baseline round trips",
			flour: 1000,
			want:  Quantities{"Flour": 1000, "Water": 700, "Salt": 20, "Yeast": 5},
		},
		{
			name:   "zero flour is degenerate",
			flour:  0,
			want:   Quantities{"Flour": 0, "Water": 0, "Salt": 0, "Yeast": 0},
			status: StatusInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResizeByFlour(r, tc.flour)
			if got.Status != tc.status {
				t.Fatalf("status = %v, want %v", got.Status, tc.status)
			}
			if diff := cmp.Diff(tc.want, got.Quantities, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("quantities mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if r.Ingredients[0].Quantity != 1000 {
		t.Fatalf("recipe mutated: flour = %v", r.Ingredients[0].Quantity)
	}
}

func TestResizeByFlour_DuplicateNameLastWins(t *testing.T) {
	r := Recipe{Ingredients: []Ingredient{
		{Name: "Water", BakersPercentage: 10},
		{Name: "Water", BakersPercentage: 20},
	}}
	got := ResizeByFlour(r, 100)
	if len(got.Quantities) != 1 || got.Quantities["Water"] != 20 {
		t.Fatalf("got %v, want Water:20", got.Quantities)
	}
}

func TestResizeByFlour_Linearity(t *testing.T) {
	r := Recipe{
		TotalFlourWeight: 913,
		Ingredients: []Ingredient{
			{Name: "Bread flour", Quantity: 800},
			{Name: "Rye flour", Quantity: 113},
			{Name: "Water", Quantity: 701},
			{Name: "Levain", Quantity: 183.3},
			{Name: "Salt", Quantity: 19.7},
		},
	}
	CalculatePercentages(&r)

	const f = 913.0
	base := ResizeByFlour(r, f)
	for _, k := range []float64{0.5, 2, 3.7} {
		got := ResizeByFlour(r, k*f)
		for name, q := range base.Quantities {
			// both sides carry up to half a cent of rounding, the scaled one k times
			tol := 0.005*(1+k) + 1e-9
			if math.Abs(got.Quantities[name]-k*q) > tol {
				t.Fatalf("k=%v %s = %v, want %v", k, name, got.Quantities[name], k*q)
			}
		}
	}
}

func TestResizeByPieces(t *testing.T) {
	r := loaf()
	CalculatePercentages(&r)

	got := ResizeByPieces(r, 10, 200)
	if !got.OK() {
		t.Fatalf("status = %v (%s)", got.Status, got.Reason)
	}
	want := Quantities{"Flour": 1159.42, "Water": 811.59, "Salt": 23.19, "Yeast": 5.80}
	if diff := cmp.Diff(want, got.Quantities, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("quantities mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(got.FlourWeight-2000/1.725) > 1e-9 {
		t.Fatalf("implied flour = %v", got.FlourWeight)
	}
}

func TestResizeByPieces_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		recipe Recipe
		pieces int
		weight float64
		status Status
		empty  bool
	}{
		{
			name:   "all percentages zero",
			recipe: loaf(),
			pieces: 10,
			weight: 200,
			status: StatusSkipped,
			empty:  true,
		},
		{
			name:   "no ingredients",
			recipe: Recipe{},
			pieces: 3,
			weight: 100,
			status: StatusSkipped,
			empty:  true,
		},
		{
			name: "zero pieces",
			recipe: func() Recipe {
				r := loaf()
				CalculatePercentages(&r)
				return r
			}(),
			pieces: 0,
			weight: 200,
			status: StatusInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResizeByPieces(tc.recipe, tc.pieces, tc.weight)
			if got.Status != tc.status {
				t.Fatalf("status = %v, want %v", got.Status, tc.status)
			}
			if got.Quantities == nil {
				t.Fatal("quantities must not be nil")
			}
			if tc.empty && len(got.Quantities) != 0 {
				t.Fatalf("want empty mapping, got %v", got.Quantities)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.005, 1.01},
		{2.675, 2.68},
		{-1.005, -1.01},
		{5.797, 5.80},
		{811.5942, 811.59},
		{0, 0},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := Round2(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Round2(+Inf) = %v", got)
	}
}
