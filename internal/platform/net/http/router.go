package http

import "net/http"

// Handler is a plain handler func; routes take these so tests can pass closures
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount onto; chi sits behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(pattern string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(prefix string, fn func(Router))

	// Mux is the handler serving everything mounted so far
	Mux() http.Handler
}
