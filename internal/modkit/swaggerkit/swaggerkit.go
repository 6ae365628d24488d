// Package swaggerkit serves the API docs UI under /api/docs
package swaggerkit

import (
	"net/http"

	"levain/internal/core/version"
	phttp "levain/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	base    = "/api/docs"
	docPath = base + "/doc.json"
)

// Mount registers the UI and its document; nothing is mounted when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(base, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/", http.StatusPermanentRedirect)
	})
	r.Get(docPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		phttp.JSON(w, http.StatusOK, document())
	})
	r.Handle(base+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("levain"),
		httpSwagger.URL(docPath),
	))
}

// document is a bare OpenAPI shell so the UI loads; paths come from the annotations
// once a generator runs in the build
func document() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "levain API",
			"version":     version.Info().Version,
			"description": "Recipes with baker's percentages and yield scaling",
		},
		"servers": []map[string]any{{"url": "/api/v1"}},
		"paths":   map[string]any{},
	}
}
