package modkit

import (
	"net/http"

	"levain/internal/modkit/httpkit"
	str "levain/internal/platform/strings"
)

// Built is a module's resolved mount point
type Built struct {
	Name   string
	Prefix string

	mw     []func(http.Handler) http.Handler
	before []func(httpkit.Router) httpkit.Router
	after  []func(httpkit.Router)
}

// Option adjusts a Built before it is validated
type Option func(*Built)

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends scope middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.mw = append(b.mw, mw...) }
}

// WithSubrouter swaps the scoped router before any endpoint lands on it
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.before = append(b.before, fn) }
}

// WithRegister adds endpoints after the module's own
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.after = append(b.after, fn) }
}

// Build applies defaults then opts; name is required and prefix is normalized
func Build(defaults []Option, opts ...Option) Built {
	var b Built
	for _, o := range append(defaults[:len(defaults):len(defaults)], opts...) {
		o(&b)
	}
	b.Name = str.MustString(b.Name, "module name")
	b.Prefix = str.MustPrefix(b.Prefix)
	return b
}

// Mount opens a route scope at Prefix and attaches, in order: middleware,
// subrouter hooks, own, register hooks
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(b.Prefix, func(rr httpkit.Router) {
		if len(b.mw) > 0 {
			rr.Use(b.mw...)
		}
		for _, fn := range b.before {
			rr = fn(rr)
		}
		if own != nil {
			own(rr)
		}
		for _, fn := range b.after {
			fn(rr)
		}
	})
}
