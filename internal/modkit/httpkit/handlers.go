// Package httpkit is what modules use to mount handlers; they never import
// internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "levain/internal/platform/net/http"
	"levain/internal/platform/net/http/bind"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// Created wraps data for a 201
func Created(data any) Response { return phttp.Created(data) }

// NoContent answers 204 with no body
func NoContent() Response { return phttp.NoContent() }

// Param returns a path parameter of the matched route
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// JSON decodes and validates the body into T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return bound(bind.ParseJSON[T], fn) }

// Query binds and validates URL query parameters into T before calling fn
func Query[T any](fn func(*http.Request, T) (any, error)) Handler { return bound(bind.Query[T], fn) }

// Call adapts a handler with no bound input
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response { return result(fn(r)) })
}

func bound[T any](parse func(*http.Request) (T, error), fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		in, err := parse(r)
		if err != nil {
			return phttp.Error(err)
		}
		return result(fn(r, in))
	})
}

// result passes a ready Response through and wraps anything else in a 200
func result(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return phttp.OK(out)
}
