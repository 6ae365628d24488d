// Package pg opens the pgx pool recipes live in and traces statements through zerolog
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config sizes and labels the pool; zero values keep pgx defaults
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	MinConns int32
	IdleTime time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool without dialing; the caller decides how long to wait for the server
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = min(cfg.MinConns, pc.MaxConns)
	}
	if cfg.IdleTime > 0 {
		pc.MaxConnIdleTime = cfg.IdleTime
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("pg: new pool: %w", err)
	}
	return pool, nil
}
