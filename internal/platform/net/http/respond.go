// Package http keeps chi behind the Router seam and writes the JSON envelope every endpoint answers with
package http

import (
	"cmp"
	"encoding/json"
	"maps"
	stdhttp "net/http"

	perr "levain/internal/platform/errors"
	pnet "levain/internal/platform/net"
)

// Envelope wraps every JSON body, success or failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func newEnvelope(r *stdhttp.Request, status int) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes err as an error envelope; the status comes from its code
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	env := newEnvelope(r, status)
	env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	JSON(w, status, env)
}

// Response is what return-style handlers hand back
// a set Err wins over Status and Body
type Response struct {
	Status int
	Body   any
	Err    error
	Header stdhttp.Header
}

// Handle adapts a Response returning func to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		maps.Copy(w.Header(), resp.Header)
		switch {
		case resp.Err != nil:
			RespondError(w, r, resp.Err)
		case resp.Status == stdhttp.StatusNoContent:
			w.WriteHeader(stdhttp.StatusNoContent)
		default:
			status := cmp.Or(resp.Status, stdhttp.StatusOK)
			env := newEnvelope(r, status)
			env.Data = resp.Body
			JSON(w, status, env)
		}
	}
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 carrying data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is an empty 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error answers with err's envelope
func Error(err error) Response { return Response{Err: err} }
