package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"levain/internal/platform/config"
	phttp "levain/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	cases := []struct {
		enabled bool
		path    string
		want    int
	}{
		{true, "/debug/pprof/", http.StatusOK},
		{true, "/debug/pprof/cmdline", http.StatusOK},
		{false, "/debug/pprof/", http.StatusNotFound},
	}
	for _, tc := range cases {
		r := phttp.NewServer(config.New()).Router()
		phttp.MountProfiler(r, "/debug", tc.enabled)

		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != tc.want {
			t.Errorf("enabled=%v %s = %d want %d", tc.enabled, tc.path, rec.Code, tc.want)
		}
	}
}
