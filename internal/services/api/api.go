// Package api assembles the levain HTTP API out of its modules
package api

import (
	"context"
	"time"

	"levain/internal/modkit"
	"levain/internal/modkit/httpkit"
	"levain/internal/modkit/module"
	"levain/internal/modkit/swaggerkit"
	"levain/internal/platform/config"
	"levain/internal/platform/logger"
	phttp "levain/internal/platform/net/http"
	"levain/internal/platform/store"

	metamod "levain/internal/services/api/meta/module"
	recipesmod "levain/internal/services/api/recipes/module"
)

// Options carries what main opened
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// API is the mounted module set
type API struct {
	mods []module.Module
}

// Mount builds every module, mounts it under /api/v1 and registers its ports
// docs and pprof live outside the versioned scope
func Mount(r phttp.Router, opt Options) *API {
	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}
	if opt.Store != nil {
		deps.PG, deps.CH = opt.Store.PG, opt.Store.CH
	}

	recipes := recipesmod.FromConfig(opt.Config)
	a := &API{mods: []module.Module{
		metamod.New(deps, metamod.Options{FlourKeywords: recipes.FlourKeywords}),
		recipesmod.New(deps, recipes),
	}}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Timeout:        opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:           opt.Config.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		MaxInFlight:    opt.Config.MayInt("MAX_INFLIGHT", 0),
	})
	httpkit.MountAPIV1(r, stack, func(v1 httpkit.Router) {
		for _, m := range a.mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(v1)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	return a
}

// Prepare runs each module's schema setup, in mount order
func (a *API) Prepare(ctx context.Context) error {
	return modkit.Prepare(ctx, a.mods...)
}
