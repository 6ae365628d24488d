// Package module wires recipes into the API using modkit
package module

import (
	"context"
	"fmt"

	"levain/internal/core/bakers"
	modkit "levain/internal/modkit"
	"levain/internal/modkit/httpkit"
	"levain/internal/modkit/repokit"
	recipeshttp "levain/internal/services/api/recipes/http"
	recipesrepo "levain/internal/services/api/recipes/repo"
	recipessvc "levain/internal/services/api/recipes/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	b    modkit.Built

	ports  Ports
	svc    recipessvc.Service
	events *recipesrepo.Events
}

// New constructs a recipes module with the provided dependencies and options
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("recipes"), modkit.WithPrefix("/recipes")}, opts...)
	log := deps.Named(b.Name)

	engine := bakers.NewEngine(bakers.NewFlourClassifier(o.FlourKeywords...))
	svcOpts := []recipessvc.Option{
		recipessvc.WithEngine(engine),
		recipessvc.WithCacheTTL(o.CacheTTL),
	}

	var events *recipesrepo.Events
	if o.Events && deps.CH != nil {
		events = recipesrepo.NewEvents(deps.CH)
		svcOpts = append(svcOpts, recipessvc.WithEvents(events))
	}

	db := deps.PG
	if db != nil {
		db = repokit.WithBeginHooks(db, repokit.Hooks(repokit.StatementTimeout(o.StatementTimeout))...)
	}
	svc := recipessvc.New(db, recipesrepo.NewPG(), svcOpts...)

	log.Debug().
		Strs("flour_keywords", engine.Classifier().Keywords()).
		Dur("cache_ttl", o.CacheTTL).
		Dur("statement_timeout", o.StatementTimeout).
		Bool("events", events.Enabled()).
		Msg("recipes module ready")

	return &Module{
		deps:   deps,
		b:      b,
		ports:  Ports{Recipes: adaptRecipesPort{svc: svc}},
		svc:    svc,
		events: events,
	}
}

// Prepare applies the recipes schema and creates the events table when events are on
func (m *Module) Prepare(ctx context.Context) error {
	if m.deps.PG != nil {
		if err := recipesrepo.Migrate(ctx, m.deps.PG); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	if err := m.events.Ensure(ctx); err != nil {
		// analytics stay optional, the API serves without them
		m.deps.Named(m.b.Name).Warn().Err(err).Msg("scale events table unavailable")
	}
	return nil
}

// Events returns the scale event sink, nil when events are off
func (m *Module) Events() *recipesrepo.Events { return m.events }

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { recipeshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }
