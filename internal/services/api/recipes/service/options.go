package service

import (
	"time"

	"levain/internal/core/bakers"
	"levain/internal/services/api/recipes/domain"

	"github.com/patrickmn/go-cache"
)

// Option configures Svc
type Option func(*Svc)

// WithEngine sets the scaling engine
func WithEngine(e *bakers.Engine) Option {
	return func(s *Svc) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithCacheTTL enables the read cache; ttl <= 0 disables it
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Svc) {
		if ttl <= 0 {
			s.cache = nil
			return
		}
		s.cache = cache.New(ttl, 2*ttl)
	}
}

// WithEvents sets the scale event sink
func WithEvents(sink domain.EventSink) Option {
	return func(s *Svc) { s.events = sink }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Svc) {
		if now != nil {
			s.now = now
		}
	}
}
