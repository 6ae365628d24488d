// Package http serves the meta endpoints: liveness, readiness, build and engine settings
package http

import (
	"context"
	"net/http"
	"time"

	"levain/internal/core/bakers"
	"levain/internal/core/version"
	"levain/internal/modkit/httpkit"
	"levain/internal/platform/store"

	"golang.org/x/sync/errgroup"
)

// readyTimeout bounds the whole readiness probe, every check included
const readyTimeout = 2 * time.Second

// Deps is what the meta endpoints report on
type Deps struct {
	Service   string
	StartedAt time.Time
	Checks    []store.Check
	// FlourKeywords overrides bakers.DefaultFlourKeywords in /engine
	FlourKeywords []string
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	m := meta{d}
	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", m.version)
	httpkit.Get(r, "/service", m.service)
	httpkit.Get(r, "/engine", m.engine)
}

type meta struct{ Deps }

func rfc3339(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse says the process is up
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"levain-api"`
	Now     string `json:"now" example:"2026-03-01T06:00:00Z"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (m meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.Service, Now: rfc3339(time.Now())}, nil
}

// Check states; a ReadyResponse also uses Degraded
const (
	CheckOK      = "ok"
	CheckFail    = "fail"
	CheckSkipped = "skipped"
	Degraded     = "degraded"
)

// ReadyCheck is one backend's answer
type ReadyCheck struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
	TookMs int64  `json:"took_ms"`
}

// ReadyResponse is ok when every enabled backend answered, degraded when
// one is disabled and fail when one did not answer
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
}

// @Summary Readiness with backend checks
// @Description Answers 503 when an enabled backend does not answer
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /meta/ready [get]
func (m meta) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	out := ReadyResponse{Status: CheckOK, Checks: make([]ReadyCheck, len(m.Checks))}
	var g errgroup.Group
	for i, c := range m.Checks {
		g.Go(func() error {
			out.Checks[i] = run(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	for _, c := range out.Checks {
		switch {
		case c.Status == CheckFail:
			out.Status = CheckFail
		case c.Status == CheckSkipped && out.Status == CheckOK:
			out.Status = Degraded
		}
	}
	if out.Status == CheckFail {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

func run(ctx context.Context, c store.Check) ReadyCheck {
	rc := ReadyCheck{Name: c.Name, Status: CheckSkipped}
	if c.Ping == nil {
		return rc
	}
	start := time.Now()
	err := c.Ping(ctx)
	rc.TookMs = time.Since(start).Milliseconds()
	rc.Status = CheckOK
	if err != nil {
		rc.Status, rc.Error = CheckFail, err.Error()
	}
	return rc
}

// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (m meta) version(*http.Request) (any, error) { return version.Info(), nil }

// ServiceResponse reports uptime
type ServiceResponse struct {
	Name          string `json:"name" example:"levain-api"`
	Started       string `json:"started" example:"2026-03-01T05:55:00Z"`
	UptimeSeconds int64  `json:"uptime_seconds" example:"300"`
}

// @Summary Service uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (m meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:          m.Service,
		Started:       rfc3339(m.StartedAt),
		UptimeSeconds: int64(time.Since(m.StartedAt).Seconds()),
	}, nil
}

// EngineResponse exposes the tolerances scaling runs with
type EngineResponse struct {
	FlourKeywords  []string          `json:"flour_keywords" example:"farina,flour"`
	RatioEpsilon   float64           `json:"ratio_epsilon" example:"0.0001"`
	DriftTolerance float64           `json:"drift_tolerance" example:"0.01"`
	UsageTolerance float64           `json:"usage_tolerance" example:"0.01"`
	Build          version.BuildInfo `json:"build"`
}

// @Summary Baker's percentage engine settings
// @Tags Meta
// @Produce json
// @Success 200 {object} EngineResponse
// @Router /meta/engine [get]
func (m meta) engine(*http.Request) (any, error) {
	kw := m.FlourKeywords
	if len(kw) == 0 {
		kw = bakers.DefaultFlourKeywords
	}
	return EngineResponse{
		FlourKeywords:  kw,
		RatioEpsilon:   bakers.RatioEpsilon,
		DriftTolerance: bakers.DriftTolerance,
		UsageTolerance: bakers.UsageTolerance,
		Build:          version.Info(),
	}, nil
}
