package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "levain/internal/platform/errors"
	pnet "levain/internal/platform/net"
	phttp "levain/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/err", "rid-3")

	err := perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, "bad pieces"), "pieces")
	phttp.RespondError(rec, req, err)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Code != perr.ErrorCodeInvalidArgument || env.Error != "bad pieces" || env.Field != "pieces" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestHandle_Statuses(t *testing.T) {
	cases := []struct {
		name   string
		resp   phttp.Response
		status int
		body   bool
	}{
		{"ok", phttp.OK(map[string]any{"x": 1}), http.StatusOK, true},
		{"created", phttp.Created(map[string]any{"id": 99}), http.StatusCreated, true},
		{"no content", phttp.NoContent(), http.StatusNoContent, false},
		{"zero status means ok", phttp.Response{Body: "hi"}, http.StatusOK, true},
		{"project error", phttp.Error(perr.New(perr.ErrorCodeNotFound, "nope")), http.StatusNotFound, true},
		{"conflict", phttp.Error(perr.New(perr.ErrorCodeConflict, "stale")), http.StatusConflict, true},
		{"foreign error", phttp.Error(errors.New("boom")), http.StatusInternalServerError, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })
			rec := httptest.NewRecorder()
			h(rec, reqWithReqID("GET", "/x", "rid"))

			if rec.Code != tc.status {
				t.Fatalf("status = %d want %d", rec.Code, tc.status)
			}
			if !tc.body {
				if rec.Body.Len() != 0 {
					t.Fatalf("expected empty body, got %q", rec.Body.String())
				}
				return
			}
			env := decode(t, rec)
			if env.StatusCode != tc.status || env.RequestID != "rid" {
				t.Fatalf("bad envelope: %+v", env)
			}
		})
	}
}

func TestHandle_ErrorWinsOverBody(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Status: http.StatusCreated, Body: "ignored", Err: perr.ErrNotFound}
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/x", "rid-9"))
	env := decode(t, rec)
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.Data != nil {
		t.Fatalf("code=%d env=%+v", rec.Code, env)
	}
}

func TestHandle_Headers(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		resp := phttp.OK("hello")
		resp.Header = http.Header{}
		resp.Header.Set("X-Thing", "yup")
		return resp
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/hdr", "rid-8"))
	if got := rec.Header().Get("X-Thing"); got != "yup" {
		t.Fatalf("expected header override, got %q", got)
	}
	if s, ok := decode(t, rec).Data.(string); !ok || s != "hello" {
		t.Fatalf("expected data hello")
	}
}
