//go:build integration_pg

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"levain/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestPGAdapter_Integration(t *testing.T) {
	dsn := testkit.Postgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := Open(ctx, Config{PG: PGConfig{Enabled: true, URL: dsn, MaxConns: 2, LogSQL: true}}, WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if _, err := s.PG.Exec(ctx, `CREATE TABLE doughs (id SERIAL PRIMARY KEY, grams DOUBLE PRECISION NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}

	// commit
	if err := s.PG.Tx(ctx, func(q Queryer) error {
		return ExecOne(ctx, q, `INSERT INTO doughs (grams) VALUES ($1)`, 1700.0)
	}); err != nil {
		t.Fatalf("tx commit: %v", err)
	}

	// rollback
	boom := errors.New("rollback")
	err = s.PG.Tx(ctx, func(q Queryer) error {
		if _, err := q.Exec(ctx, `INSERT INTO doughs (grams) VALUES (1)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("tx rollback err = %v", err)
	}

	n, err := Scalar[int64](ctx, s.PG, `SELECT count(*) FROM doughs`)
	if err != nil || n != 1 {
		t.Fatalf("count = %d %v", n, err)
	}

	got, err := Many(ctx, s.PG, func(r Row) (float64, error) {
		var g float64
		return g, r.Scan(&g)
	}, `SELECT grams FROM doughs ORDER BY id`)
	if err != nil || len(got) != 1 || got[0] != 1700 {
		t.Fatalf("Many = %v %v", got, err)
	}
}
