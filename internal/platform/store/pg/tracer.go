package pg

import (
	"context"
	"strings"
	"time"

	"levain/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement
type QueryEvent struct {
	SQL     string
	Args    []any
	Elapsed time.Duration
	Err     error
	Slow    bool
}

// QueryTracer receives every statement the store runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// TracerFunc lets a plain func act as a QueryTracer
type TracerFunc func(ctx context.Context, ev QueryEvent)

func (f TracerFunc) OnQuery(ctx context.Context, ev QueryEvent) { f(ctx, ev) }

// Tracer logs each statement on its own line, warn when slow and info otherwise
// the level of l is ignored so LOG_SQL works with a quiet root logger
func Tracer(l logger.Logger) QueryTracer {
	log := l.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return TracerFunc(func(_ context.Context, ev QueryEvent) {
		lvl := zerolog.InfoLevel
		if ev.Slow {
			lvl = zerolog.WarnLevel
		}
		log.WithLevel(lvl).
			Float64("elapsed_ms", float64(ev.Elapsed.Microseconds())/1000).
			Bool("slow", ev.Slow).
			Str("sql", compact(ev.SQL)).
			Interface("args", ev.Args).
			Err(ev.Err).
			Msg("pg query")
	})
}

func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
