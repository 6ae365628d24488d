// Package repokit provides the seams repositories are written against
package repokit

import (
	"context"

	"levain/internal/platform/store"
)

// Queryer is the read and write surface a bound repo runs on, a pool or a tx
type Queryer = store.Queryer

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// WithTx binds a repo to a transaction and runs fn with it
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error {
		return fn(MustBind(b, q))
	})
}
