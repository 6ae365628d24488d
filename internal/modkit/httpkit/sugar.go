package httpkit

import "net/http"

func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, JSON(h))
}

func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSON(h))
}

// GetQuery and PostQuery bind the URL query instead of the body
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, Query(h))
}

func PostQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, Query(h))
}

func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }
func Post(r Router, path string, h func(*http.Request) (any, error)) { r.Post(path, Call(h)) }
func Delete(r Router, path string, h func(*http.Request) (any, error)) { r.Delete(path, Call(h)) }
