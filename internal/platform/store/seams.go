package store

import "context"

// Row is one scanned result
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; Close must be called once iteration stops
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// Queryer runs statements against a pool or an open transaction
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a Queryer that can also scope fn to one transaction:
// commit when fn returns nil, roll back otherwise
type TxRunner interface {
	Queryer
	Tx(ctx context.Context, fn func(q Queryer) error) error
}

// Clickhouse is the analytics seam; rows are in table column order
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger reports whether a backend answers
type Pinger interface{ Ping(context.Context) error }

// Check is one readiness probe; Ping is nil when the backend is off or cannot be pinged
type Check struct {
	Name string
	Ping func(context.Context) error
}

// Checks lists the probes for the given backends, pg first
func Checks(pg TxRunner, ch Clickhouse) []Check {
	return []Check{probe("pg", pg), probe("ch", ch)}
}

func probe(name string, backend any) Check {
	c := Check{Name: name}
	if p, ok := backend.(Pinger); ok && backend != nil {
		c.Ping = p.Ping
	}
	return c
}
