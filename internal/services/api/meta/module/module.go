// Package module mounts the meta endpoints
package module

import (
	"time"

	modkit "levain/internal/modkit"
	"levain/internal/modkit/httpkit"
	"levain/internal/platform/store"

	metahttp "levain/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	b    modkit.Built

	startedAt time.Time
	keywords  []string
}

// Options carries what meta reports about the other modules
type Options struct {
	FlourKeywords []string
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	return &Module{
		deps:      deps,
		b:         modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...),
		startedAt: time.Now(),
		keywords:  o.FlourKeywords,
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			Service:       "levain-api",
			StartedAt:     m.startedAt,
			Checks:        store.Checks(m.deps.PG, m.deps.CH),
			FlourKeywords: m.keywords,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports implements the modkit.Module interface; meta exposes none
func (m *Module) Ports() any { return nil }
