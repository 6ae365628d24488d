package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pnet "levain/internal/platform/net"
	phttp "levain/internal/platform/net/http"
	"levain/internal/platform/net/middleware"
	kit "levain/internal/platform/testkit"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func chain(h http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

func TestAccessLog(t *testing.T) {
	cases := []struct {
		name  string
		slow  time.Duration
		h     http.HandlerFunc
		level string
		want  []string
	}{
		{
			name: "status and bytes",
			h: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, "hi")
				_, _ = io.WriteString(w, "there")
			},
			level: "info",
			want:  []string{`"status":201`, `"bytes":7`, `"path":"/recipes"`, `"request_id":"rid-1"`},
		},
		{
			name:  "implicit ok",
			h:     func(w http.ResponseWriter, _ *http.Request) {},
			level: "info",
			want:  []string{`"status":200`, `"bytes":0`},
		},
		{
			name:  "slow is warn",
			slow:  time.Nanosecond,
			h:     func(w http.ResponseWriter, _ *http.Request) { time.Sleep(time.Millisecond) },
			level: "warn",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			h := chain(tc.h, chimw.RequestID, middleware.AccessLog(middleware.AccessLogOptions{Slow: tc.slow, Log: &log}))

			req := httptest.NewRequest(http.MethodPost, "/recipes", nil)
			req.Header.Set("X-Request-Id", "rid-1")
			h.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("decode %q: %v", buf.String(), err)
			}
			if line["level"] != tc.level {
				t.Fatalf("level = %v want %s", line["level"], tc.level)
			}
			for _, w := range tc.want {
				kit.MustContain(t, buf.String(), w)
			}
		})
	}
}

func TestAccessLog_RequestIDReachesHandlers(t *testing.T) {
	var seen string
	h := chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}), chimw.RequestID, middleware.AccessLog(middleware.AccessLogOptions{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-42")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "rid-42" {
		t.Fatalf("request id = %q", seen)
	}
}

func TestRecover(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kneaded too long") })
	h := chain(boom, chimw.RequestID, middleware.Recover)

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-Id", "rid-p")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError || rec.Header().Get("X-Request-ID") != "rid-p" {
		t.Fatalf("code=%d id=%q", rec.Code, rec.Header().Get("X-Request-ID"))
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.RequestID != "rid-p" || env.Error != "internal error" || strings.Contains(rec.Body.String(), "kneaded") {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRecover_AbortHandlerPropagates(t *testing.T) {
	h := middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
	kit.MustPanic(t, func() { h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) })
}

func TestCORS(t *testing.T) {
	cases := []struct {
		name    string
		origins []string
		origin  string
		allowed bool
	}{
		{"configured origin", []string{"https://bakery.example"}, "https://bakery.example", true},
		{"other origin", []string{"https://bakery.example"}, "https://evil.example", false},
		{"localhost by default", nil, "http://localhost:5173", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.CORS(tc.origins)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get("Access-Control-Allow-Origin") == tc.origin
			if got != tc.allowed {
				t.Fatalf("allowed = %v, headers %v", got, rec.Header())
			}
		})
	}
}

func TestCommon(t *testing.T) {
	base := middleware.Common(middleware.Options{})
	if n := len(middleware.Common(middleware.Options{MaxInFlight: 4})); n != len(base)+1 {
		t.Fatalf("throttle not appended: %d vs %d", n, len(base))
	}

	h := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("levain ", 1024))
	}), base...)

	req := httptest.NewRequest(http.MethodGet, "/recipes/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("code=%d encoding=%q", rec.Code, rec.Header().Get("Content-Encoding"))
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatal("no-cache headers missing")
	}
}
