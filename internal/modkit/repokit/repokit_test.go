package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeTag struct{}

func (fakeTag) String() string      { return "SELECT 1" }
func (fakeTag) RowsAffected() int64 { return 1 }

// fakeDB records statements; Tx hands out itself as the tx Queryer
type fakeDB struct {
	stmts []string
	args  [][]any
	txs   int
	err   error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.stmts = append(f.stmts, sql)
	f.args = append(f.args, args)
	return fakeTag{}, f.err
}

func (f *fakeDB) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (f *fakeDB) QueryRow(context.Context, string, ...any) Row        { return nil }

func (f *fakeDB) Tx(_ context.Context, fn func(q Queryer) error) error {
	f.txs++
	return fn(f)
}

type namedRepo struct{ q Queryer }

func TestBindFunc_MustBind(t *testing.T) {
	db := &fakeDB{}
	b := BindFunc[namedRepo](func(q Queryer) namedRepo { return namedRepo{q: q} })
	if got := MustBind[namedRepo](b, db); got.q != db {
		t.Fatalf("bound to %v", got.q)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on nil Queryer")
		}
	}()
	MustBind[namedRepo](b, nil)
}

func TestWithTx(t *testing.T) {
	db := &fakeDB{}
	b := BindFunc[namedRepo](func(q Queryer) namedRepo { return namedRepo{q: q} })
	want := errors.New("boom")

	err := WithTx(context.Background(), db, b, func(r namedRepo) error {
		if r.q != db {
			t.Fatalf("repo not bound to tx")
		}
		return want
	})
	if !errors.Is(err, want) || db.txs != 1 {
		t.Fatalf("err=%v txs=%d", err, db.txs)
	}
}

func TestWithBeginHooks(t *testing.T) {
	cases := []struct {
		name    string
		hooks   []BeginHook
		hookErr error
		want    []string
		wantErr bool
	}{
		{name: "no hooks returns inner", want: []string{"work"}},
		{
			name:  "hooks run in order before fn",
			hooks: []BeginHook{execHook("one"), execHook("two")},
			want:  []string{"one", "two", "work"},
		},
		{
			name:    "failing hook skips fn",
			hooks:   []BeginHook{execHook("one")},
			hookErr: errors.New("nope"),
			want:    []string{"one"},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := &fakeDB{err: tc.hookErr}
			tx := WithBeginHooks(db, tc.hooks...)
			if len(tc.hooks) == 0 && tx != TxRunner(db) {
				t.Fatalf("expected inner runner back")
			}
			err := tx.Tx(context.Background(), func(q Queryer) error {
				db.stmts = append(db.stmts, "work")
				return nil
			})
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v", err)
			}
			if strings.Join(db.stmts, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("stmts = %v want %v", db.stmts, tc.want)
			}
		})
	}
}

func TestWithBeginHooks_PassThroughOutsideTx(t *testing.T) {
	db := &fakeDB{}
	tx := WithBeginHooks(db, execHook("hook"))
	if _, err := tx.Exec(context.Background(), "delete"); err != nil {
		t.Fatal(err)
	}
	if len(db.stmts) != 1 || db.stmts[0] != "delete" {
		t.Fatalf("stmts = %v", db.stmts)
	}
}

func TestStatementTimeout(t *testing.T) {
	if StatementTimeout(0) != nil {
		t.Fatal("zero timeout should disable the hook")
	}
	if got := Hooks(nil, StatementTimeout(-time.Second), nil); len(got) != 0 {
		t.Fatalf("Hooks kept %d nil hooks", len(got))
	}

	db := &fakeDB{}
	tx := WithBeginHooks(db, Hooks(StatementTimeout(1500*time.Millisecond))...)
	if err := tx.Tx(context.Background(), func(Queryer) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if len(db.stmts) != 1 || !strings.Contains(db.stmts[0], "statement_timeout") {
		t.Fatalf("stmts = %v", db.stmts)
	}
	if db.args[0][0] != "1500" {
		t.Fatalf("args = %v", db.args[0])
	}
}

type guardFn func(context.Context) error

func (g guardFn) Guard(ctx context.Context) error { return g(ctx) }

func TestMustGuard(t *testing.T) {
	var hadDeadline bool
	MustGuard(context.Background(), guardFn(func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}))
	if !hadDeadline {
		t.Fatal("guard should run with a deadline")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !strings.Contains(err.Error(), "pg down") {
			t.Fatalf("panic = %v", r)
		}
	}()
	MustGuard(context.Background(), guardFn(func(context.Context) error { return errors.New("pg down") }))
}

func execHook(stmt string) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, stmt)
		return err
	}
}
