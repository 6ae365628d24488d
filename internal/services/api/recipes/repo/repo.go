// Package repo provides postgres access for recipes
package repo

import (
	"context"
	_ "embed"
	"time"

	"levain/internal/modkit/repokit"
	perr "levain/internal/platform/errors"
	"levain/internal/platform/store"
)

// Schema is the postgres DDL the repo expects
//
//go:embed schema.sql
var Schema string

// Repo defines the repository contract for recipes
type Repo interface {
	Insert(ctx context.Context, r RowRecipe) error
	Update(ctx context.Context, r RowRecipe, expectVersion int64) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (RowRecipe, error)
	List(ctx context.Context, limit, offset int) ([]RowSummary, int, error)
}

// RowRecipe is a recipe header plus its ordered lines
type RowRecipe struct {
	ID               string
	Title            string
	Description      string
	TotalFlourWeight float64
	ServingPieces    int
	PieceWeight      float64
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Ingredients []RowIngredient
	Phases      []RowPhase
}

// RowIngredient is a recipe_ingredients row
type RowIngredient struct {
	Name             string
	Quantity         float64
	Unit             string
	BakersPercentage float64
	PrimaryFlour     bool
}

// RowPhase is a recipe_phases row with its entries
type RowPhase struct {
	Title       string
	Ingredients []RowPhaseIngredient
}

// RowPhaseIngredient is a recipe_phase_ingredients row; Ingredient keeps the "PHASE:<i>" encoding
type RowPhaseIngredient struct {
	Ingredient string
	Quantity   float64
	Unit       string
}

// RowSummary is a recipes header row
type RowSummary struct {
	ID               string
	Title            string
	TotalFlourWeight float64
	ServingPieces    int
	PieceWeight      float64
	Version          int64
	UpdatedAt        time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Migrate applies Schema; callers run it once at startup or in tests
func Migrate(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return err
}

func (r *queries) Insert(ctx context.Context, rec RowRecipe) error {
	const sql = `
insert into recipes (id, title, description, total_flour_weight, serving_pieces, piece_weight, version, created_at, updated_at)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)
`
	if err := store.ExecOne(ctx, r.q, sql,
		rec.ID, rec.Title, rec.Description, rec.TotalFlourWeight, rec.ServingPieces, rec.PieceWeight,
		rec.Version, rec.CreatedAt, rec.UpdatedAt,
	); err != nil {
		return err
	}
	return r.insertLines(ctx, rec)
}

func (r *queries) Update(ctx context.Context, rec RowRecipe, expectVersion int64) error {
	const sql = `
update recipes
set title = $2, description = $3, total_flour_weight = $4, serving_pieces = $5, piece_weight = $6,
version = version + 1, updated_at = $7
where id = $1::uuid and version = $8
`
	tag, err := r.q.Exec(ctx, sql,
		rec.ID, rec.Title, rec.Description, rec.TotalFlourWeight, rec.ServingPieces, rec.PieceWeight,
		rec.UpdatedAt, expectVersion,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		cur, err := store.Scalar[int64](ctx, r.q, `select version from recipes where id = $1::uuid`, rec.ID)
		if err != nil {
			if store.IsNoRows(err) {
				return perr.NotFoundf("recipe %s not found", rec.ID)
			}
			return err
		}
		return perr.Conflictf("recipe %s is at version %d, not %d", rec.ID, cur, expectVersion)
	}

	// phase entries cascade from recipe_phases
	if _, err := r.q.Exec(ctx, `delete from recipe_phases where recipe_id = $1::uuid`, rec.ID); err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, `delete from recipe_ingredients where recipe_id = $1::uuid`, rec.ID); err != nil {
		return err
	}
	return r.insertLines(ctx, rec)
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from recipes where id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("recipe %s not found", id)
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id string) (RowRecipe, error) {
	const head = `
select id::text, title, description, total_flour_weight, serving_pieces, piece_weight, version, created_at, updated_at
from recipes
where id = $1::uuid
`
	rec, err := store.One(ctx, r.q, func(row store.Row) (RowRecipe, error) {
		var x RowRecipe
		err := row.Scan(&x.ID, &x.Title, &x.Description, &x.TotalFlourWeight, &x.ServingPieces, &x.PieceWeight,
			&x.Version, &x.CreatedAt, &x.UpdatedAt)
		return x, err
	}, head, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return RowRecipe{}, perr.NotFoundf("recipe %s not found", id)
		}
		return RowRecipe{}, err
	}

	rec.Ingredients, err = store.Many(ctx, r.q, func(row store.Row) (RowIngredient, error) {
		var x RowIngredient
		err := row.Scan(&x.Name, &x.Quantity, &x.Unit, &x.BakersPercentage, &x.PrimaryFlour)
		return x, err
	}, `
select name, quantity, unit, bakers_percentage, primary_flour
from recipe_ingredients
where recipe_id = $1::uuid
order by position
`, id)
	if err != nil {
		return RowRecipe{}, err
	}

	type phaseLine struct {
		phase int
		RowPhaseIngredient
	}
	titles, err := store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var t string
		err := row.Scan(&t)
		return t, err
	}, `select title from recipe_phases where recipe_id = $1::uuid order by position`, id)
	if err != nil {
		return RowRecipe{}, err
	}
	lines, err := store.Many(ctx, r.q, func(row store.Row) (phaseLine, error) {
		var x phaseLine
		err := row.Scan(&x.phase, &x.Ingredient, &x.Quantity, &x.Unit)
		return x, err
	}, `
select phase_position, ingredient, quantity, unit
from recipe_phase_ingredients
where recipe_id = $1::uuid
order by phase_position, position
`, id)
	if err != nil {
		return RowRecipe{}, err
	}

	rec.Phases = make([]RowPhase, len(titles))
	for i, t := range titles {
		rec.Phases[i].Title = t
	}
	for _, l := range lines {
		if l.phase < 0 || l.phase >= len(rec.Phases) {
			continue
		}
		rec.Phases[l.phase].Ingredients = append(rec.Phases[l.phase].Ingredients, l.RowPhaseIngredient)
	}
	return rec, nil
}

func (r *queries) List(ctx context.Context, limit, offset int) ([]RowSummary, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	total, err := store.Scalar[int64](ctx, r.q, `select count(*) from recipes`)
	if err != nil {
		return nil, 0, err
	}
	const sql = `
select id::text, title, total_flour_weight, serving_pieces, piece_weight, version, updated_at
from recipes
order by updated_at desc, id
limit $1 offset $2
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (RowSummary, error) {
		var x RowSummary
		err := row.Scan(&x.ID, &x.Title, &x.TotalFlourWeight, &x.ServingPieces, &x.PieceWeight, &x.Version, &x.UpdatedAt)
		return x, err
	}, sql, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return out, int(total), nil
}

// insertLines writes ingredients, phases and phase entries with one unnest insert each
func (r *queries) insertLines(ctx context.Context, rec RowRecipe) error {
	if n := len(rec.Ingredients); n > 0 {
		pos := make([]int32, n)
		names := make([]string, n)
		qty := make([]float64, n)
		units := make([]string, n)
		pct := make([]float64, n)
		flour := make([]bool, n)
		for i, ing := range rec.Ingredients {
			pos[i], names[i], qty[i], units[i], pct[i], flour[i] = int32(i), ing.Name, ing.Quantity, ing.Unit, ing.BakersPercentage, ing.PrimaryFlour
		}
		const sql = `
insert into recipe_ingredients (recipe_id, position, name, quantity, unit, bakers_percentage, primary_flour)
select $1::uuid, u.* from unnest($2::int4[], $3::text[], $4::float8[], $5::text[], $6::float8[], $7::bool[]) as u
`
		if _, err := r.q.Exec(ctx, sql, rec.ID, pos, names, qty, units, pct, flour); err != nil {
			return err
		}
	}

	if len(rec.Phases) == 0 {
		return nil
	}
	ppos := make([]int32, len(rec.Phases))
	titles := make([]string, len(rec.Phases))
	var (
		lphase, lpos []int32
		lings, lunit []string
		lqty         []float64
	)
	for i, p := range rec.Phases {
		ppos[i], titles[i] = int32(i), p.Title
		for j, pi := range p.Ingredients {
			lphase = append(lphase, int32(i))
			lpos = append(lpos, int32(j))
			lings = append(lings, pi.Ingredient)
			lqty = append(lqty, pi.Quantity)
			lunit = append(lunit, pi.Unit)
		}
	}
	if _, err := r.q.Exec(ctx, `
insert into recipe_phases (recipe_id, position, title)
select $1::uuid, u.* from unnest($2::int4[], $3::text[]) as u
`, rec.ID, ppos, titles); err != nil {
		return err
	}
	if len(lphase) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
insert into recipe_phase_ingredients (recipe_id, phase_position, position, ingredient, quantity, unit)
select $1::uuid, u.* from unnest($2::int4[], $3::int4[], $4::text[], $5::float8[], $6::text[]) as u
`, rec.ID, lphase, lpos, lings, lqty, lunit)
	return err
}
