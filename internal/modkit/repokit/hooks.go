package repokit

import (
	"context"
	"strconv"
	"time"
)

// BeginHook runs first inside every transaction, on the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps inner so every Tx runs hooks before fn
// plain Exec/Query/QueryRow calls outside a tx are passed through untouched
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// StatementTimeout caps every statement of the transaction at d
// zero or negative d returns nil, WithBeginHooks callers filter it with Hooks
func StatementTimeout(d time.Duration) BeginHook {
	if d <= 0 {
		return nil
	}
	ms := strconv.FormatInt(d.Milliseconds(), 10)
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, `select set_config('statement_timeout', $1, true)`, ms)
		return err
	}
}

// Hooks drops nil entries so optional hooks can be listed inline
func Hooks(hs ...BeginHook) []BeginHook {
	var out []BeginHook
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}
