package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "levain/internal/platform/net/http"
	"levain/internal/platform/store"

	"github.com/go-chi/chi/v5"
)

func serve(t *testing.T, d Deps, path string, wantStatus int, out any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != wantStatus {
		t.Fatalf("%s: status %d want %d", path, rec.Code, wantStatus)
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func ping(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		checks []store.Check
		status int
		want   string
		states []string
	}{
		{"all ok", []store.Check{{Name: "pg", Ping: ping(nil)}, {Name: "ch", Ping: ping(nil)}}, 200, CheckOK, []string{CheckOK, CheckOK}},
		{"clickhouse off", []store.Check{{Name: "pg", Ping: ping(nil)}, {Name: "ch"}}, 200, Degraded, []string{CheckOK, CheckSkipped}},
		{"pg down", []store.Check{{Name: "pg", Ping: ping(errors.New("refused"))}, {Name: "ch"}}, 503, CheckFail, []string{CheckFail, CheckSkipped}},
		{"no backends", nil, 200, CheckOK, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out ReadyResponse
			serve(t, Deps{Checks: tc.checks}, "/ready", tc.status, &out)
			if out.Status != tc.want || len(out.Checks) != len(tc.states) {
				t.Fatalf("ready = %+v", out)
			}
			for i, s := range tc.states {
				if out.Checks[i].Status != s || out.Checks[i].Name != tc.checks[i].Name {
					t.Fatalf("check %d = %+v", i, out.Checks[i])
				}
			}
		})
	}
}

func TestReady_ErrorIsReported(t *testing.T) {
	var out ReadyResponse
	serve(t, Deps{Checks: []store.Check{{Name: "pg", Ping: ping(errors.New("refused"))}}}, "/ready", 503, &out)
	if out.Checks[0].Error != "refused" {
		t.Fatalf("check = %+v", out.Checks[0])
	}
}

func TestHealthAndService(t *testing.T) {
	d := Deps{Service: "levain-api", StartedAt: time.Now().Add(-time.Minute)}

	var h HealthResponse
	serve(t, d, "/health", 200, &h)
	if !h.OK || h.Service != "levain-api" {
		t.Fatalf("health = %+v", h)
	}

	var s ServiceResponse
	serve(t, d, "/service", 200, &s)
	if s.Name != "levain-api" || s.UptimeSeconds < 59 {
		t.Fatalf("service = %+v", s)
	}
}

func TestEngine(t *testing.T) {
	var e EngineResponse
	serve(t, Deps{}, "/engine", 200, &e)
	if len(e.FlourKeywords) != 2 || e.RatioEpsilon != 0.0001 || e.DriftTolerance != 0.01 {
		t.Fatalf("engine = %+v", e)
	}

	serve(t, Deps{FlourKeywords: []string{"mehl"}}, "/engine", 200, &e)
	if len(e.FlourKeywords) != 1 || e.FlourKeywords[0] != "mehl" {
		t.Fatalf("keywords = %v", e.FlourKeywords)
	}
	if e.Build.Service != "levain-api" {
		t.Fatalf("build = %+v", e.Build)
	}
}
