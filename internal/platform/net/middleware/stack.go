// Package middleware assembles the chi middleware every API scope runs behind
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "levain/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options tunes Common; zero values pick the defaults
type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
	Slow           time.Duration
	MaxInFlight    int
}

// Common returns the per scope stack, outermost first
// the access log wraps recovery so a panic is still logged with its 500
func Common(o Options) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}

	stack := []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		AccessLog(AccessLogOptions{Slow: o.Slow}),
		Recover,
		chimw.NoCache,
		CORS(o.AllowedOrigins),
		chimw.NewCompressor(flate.BestSpeed).Handler,
		chimw.Heartbeat("/health"),
		chimw.StripSlashes,
		chimw.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, chimw.Throttle(o.MaxInFlight))
	}
	return stack
}

// CORS allows the given origins, local dev servers when none are configured
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: pstrings.IfEmpty(origins, []string{"http://localhost:*", "http://127.0.0.1:*"}),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}
