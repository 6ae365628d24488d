package store

import (
	"cmp"
	"context"
	"fmt"
	"time"

	chx "levain/internal/platform/store/ch"
	"levain/internal/platform/store/pg"
)

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
	backoffStart          = 150 * time.Millisecond
	backoffCeiling        = 2 * time.Second
)

// openPG builds the pool and waits for the server with capped exponential backoff
// the adapter is only returned once a ping succeeds
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	pool, err := pg.Open(ctx, pg.Config{URL: cfg.PG.URL, AppName: cfg.AppName, MaxConns: cfg.PG.MaxConns})
	if err != nil {
		return nil, err
	}
	q := querier{db: pool, slow: time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond}
	if cfg.PG.LogSQL {
		q.tracer = pg.Tracer(s.Log)
	}

	attempts := cmp.Or(max(cfg.PG.ConnectRetries, 0), defaultConnectRetries)
	timeout := cmp.Or(max(cfg.PG.PingTimeout, 0), defaultPingTimeout)
	wait := backoffStart
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return &pgAdapter{querier: q, pool: pool}, nil
		}
		s.Log.Warn().Err(lastErr).Int("attempt", attempt).Dur("retry_in", wait).Msg("postgres not ready")

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			pool.Close()
			return nil, ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, backoffCeiling)
	}
	pool.Close()
	return nil, fmt.Errorf("no answer after %d pings: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	name := cfg.CH.ClientName
	if name == "" {
		name = cfg.AppName
	}
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, ClientName: name, ClientTag: cfg.CH.ClientTag})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
