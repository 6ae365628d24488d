package store

import (
	"context"
	"errors"
	"fmt"
	"iter"

	perr "levain/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// ErrTooManyRows is One's answer to a second row
var ErrTooManyRows = errors.New("store: more than one row")

// ExecOne runs a write that must touch exactly one row
func ExecOne(ctx context.Context, q Queryer, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return fmt.Errorf("store: %d rows affected, want 1", n)
	}
	return nil
}

// Scalar reads the single column of the first row; no row is pgx.ErrNoRows
func Scalar[T any](ctx context.Context, q Queryer, sql string, args ...any) (T, error) {
	var v T
	err := q.QueryRow(ctx, sql, args...).Scan(&v)
	return v, err
}

// Each yields every row mapped through scan and stops at the first error
// the result set is closed when the loop ends, early break included
func Each[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		rows, err := q.Query(ctx, sql, args...)
		if err != nil {
			yield(zero, err)
			return
		}
		defer rows.Close()
		for rows.Next() {
			item, err := scan(rows)
			if !yield(item, err) || err != nil {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// Many collects Each into a slice
func Many[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	var out []T
	for item, err := range Each(ctx, q, scan, sql, args...) {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// One expects exactly one row: none is perr.ErrNotFound, two is ErrTooManyRows
func One[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var (
		zero, got T
		seen      bool
	)
	for item, err := range Each(ctx, q, scan, sql, args...) {
		switch {
		case err != nil:
			return zero, err
		case seen:
			return zero, ErrTooManyRows
		}
		got, seen = item, true
	}
	if !seen {
		return zero, perr.ErrNotFound
	}
	return got, nil
}

// IsNoRows reports whether err means nothing matched
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || perr.IsCode(err, perr.ErrorCodeNotFound)
}
