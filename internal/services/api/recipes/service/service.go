// Package service contains recipes workflows
package service

import (
	"context"
	"strings"
	"time"

	"levain/internal/core/bakers"
	"levain/internal/modkit/repokit"
	perr "levain/internal/platform/errors"
	"levain/internal/platform/logger"
	"levain/internal/services/api/recipes/domain"
	"levain/internal/services/api/recipes/repo"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Service defines the service contract for recipes
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	engine *bakers.Engine
	cache  *cache.Cache
	events domain.EventSink
	now    func() time.Time
}

// New creates a new recipes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("recipes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("recipes.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   repokit.MustBind(binder, db),
		binder: binder,
		db:     db,
		engine: bakers.NewEngine(bakers.NewFlourClassifier()),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var _ Service = (*Svc)(nil)

// Create stores a new recipe with freshly derived percentages
func (s *Svc) Create(ctx context.Context, in domain.RecipeInput) (domain.Recipe, error) {
	r, err := s.prepare(in)
	if err != nil {
		return domain.Recipe{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	now := s.now().UTC()
	row := withRecipe(repo.RowRecipe{
		ID:          id.String(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, r)

	if err := repokit.WithTx(ctx, s.db, s.binder, func(rp repo.Repo) error {
		return rp.Insert(ctx, row)
	}); err != nil {
		return domain.Recipe{}, dbErr(err, "create recipe")
	}

	s.remember(row)
	logger.C(ctx).Info().Str("recipe_id", row.ID).Int("ingredients", len(row.Ingredients)).Msg("recipe created")
	return view(row, r), nil
}

// Get loads a recipe
func (s *Svc) Get(ctx context.Context, id string) (domain.Recipe, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return view(row, fromRow(row)), nil
}

// Update replaces a recipe when in.Version matches the stored version
func (s *Svc) Update(ctx context.Context, id string, in domain.RecipeInput) (domain.Recipe, error) {
	if err := checkID(id); err != nil {
		return domain.Recipe{}, err
	}
	if in.Version <= 0 {
		return domain.Recipe{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "version is required"), "version")
	}
	r, err := s.prepare(in)
	if err != nil {
		return domain.Recipe{}, err
	}

	row := withRecipe(repo.RowRecipe{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		UpdatedAt:   s.now().UTC(),
	}, r)

	var saved repo.RowRecipe
	err = repokit.WithTx(ctx, s.db, s.binder, func(rp repo.Repo) error {
		if err := rp.Update(ctx, row, in.Version); err != nil {
			return err
		}
		var err error
		saved, err = rp.Get(ctx, id)
		return err
	})
	s.forget(id)
	if err != nil {
		return domain.Recipe{}, dbErr(err, "update recipe")
	}

	s.remember(saved)
	return view(saved, fromRow(saved)), nil
}

// Delete removes a recipe
func (s *Svc) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	err := repokit.WithTx(ctx, s.db, s.binder, func(rp repo.Repo) error {
		return rp.Delete(ctx, id)
	})
	s.forget(id)
	return dbErr(err, "delete recipe")
}

// List pages through recipes, most recently updated first
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.RecipeList, error) {
	limit := in.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, total, err := s.Repo.List(ctx, limit, in.Offset)
	if err != nil {
		return domain.RecipeList{}, dbErr(err, "list recipes")
	}
	out := domain.RecipeList{
		Items:  make([]domain.RecipeSummary, 0, len(rows)),
		Total:  total,
		Limit:  limit,
		Offset: in.Offset,
	}
	for _, r := range rows {
		out.Items = append(out.Items, summary(r))
	}
	return out, nil
}

// prepare converts a payload, derives the flour baseline and percentages, and checks the phases
func (s *Svc) prepare(in domain.RecipeInput) (bakers.Recipe, error) {
	r := fromInput(in)
	s.engine.Recalculate(&r)

	if issues := bakers.CheckPhases(r); len(issues) > 0 {
		msgs := make([]string, 0, len(issues))
		for _, is := range issues {
			msgs = append(msgs, is.Message)
		}
		err := perr.Newf(perr.ErrorCodeValidation, "invalid phases: %s", strings.Join(msgs, "; "))
		return bakers.Recipe{}, perr.WithField(err, issues[0].Field)
	}
	return r, nil
}

// load returns the stored row, from cache when possible
func (s *Svc) load(ctx context.Context, id string) (repo.RowRecipe, error) {
	if err := checkID(id); err != nil {
		return repo.RowRecipe{}, err
	}
	if s.cache != nil {
		if v, ok := s.cache.Get(id); ok {
			return v.(repo.RowRecipe), nil
		}
	}
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return repo.RowRecipe{}, dbErr(err, "load recipe")
	}
	s.remember(row)
	return row, nil
}

func (s *Svc) remember(row repo.RowRecipe) {
	if s.cache != nil {
		s.cache.Set(row.ID, row, cache.DefaultExpiration)
	}
}

func (s *Svc) forget(id string) {
	if s.cache != nil {
		s.cache.Delete(id)
	}
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.WithField(perr.InvalidArgf("invalid recipe id %q", id), "id")
	}
	return nil
}

// dbErr keeps project errors as they are and maps anything else through the postgres taxonomy
func dbErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.FromPostgres(err, msg)
}
