package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// plainTx is a TxRunner that cannot be pinged
type plainTx struct{}

func (plainTx) Tx(_ context.Context, fn func(Queryer) error) error { return fn(plainTx{}) }
func (plainTx) Exec(context.Context, string, ...any) (CommandTag, error) {
	return nil, nil
}
func (plainTx) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (plainTx) QueryRow(context.Context, string, ...any) Row        { return nil }

type pingTx struct {
	plainTx
	err error
}

func (p pingTx) Ping(context.Context) error { return p.err }

func TestChecks(t *testing.T) {
	cases := []struct {
		name     string
		pg       TxRunner
		ch       Clickhouse
		pingable [2]bool
	}{
		{"nothing enabled", nil, nil, [2]bool{false, false}},
		{"pg without ping", plainTx{}, nil, [2]bool{false, false}},
		{"both pingable", pingTx{}, newCHAdapter(&fakeCH{}), [2]bool{true, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Checks(tc.pg, tc.ch)
			if len(got) != 2 || got[0].Name != "pg" || got[1].Name != "ch" {
				t.Fatalf("checks = %+v", got)
			}
			for i, c := range got {
				if (c.Ping != nil) != tc.pingable[i] {
					t.Fatalf("%s pingable = %v", c.Name, c.Ping != nil)
				}
			}
		})
	}
}

func TestGuard(t *testing.T) {
	cases := []struct {
		name string
		s    *Store
		want []string
	}{
		{"nil store", nil, []string{"not opened"}},
		{"nothing enabled", &Store{}, nil},
		{"unpingable pg is skipped", &Store{PG: plainTx{}}, nil},
		{"pg ok", &Store{PG: pingTx{}}, nil},
		{"pg down", &Store{PG: pingTx{err: errors.New("refused")}}, []string{"pg: refused"}},
		{
			"both down",
			&Store{PG: pingTx{err: errors.New("refused")}, CH: newCHAdapter(&fakeCH{ping: errors.New("timeout")})},
			[]string{"pg: refused", "ch: timeout"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Guard(context.Background())
			if len(tc.want) == 0 {
				if err != nil {
					t.Fatalf("Guard = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Guard = nil")
			}
			for _, w := range tc.want {
				if !strings.Contains(err.Error(), w) {
					t.Fatalf("Guard = %q, missing %q", err, w)
				}
			}
		})
	}
}

func TestOpen_NothingEnabled(t *testing.T) {
	var buf bytes.Buffer
	s, err := Open(context.Background(), Config{AppName: "levain"}, WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("unexpected backends PG=%T CH=%T", s.PG, s.CH)
	}
	s.Log.Info().Msg("hello")
	if buf.Len() == 0 {
		t.Fatal("WithLogger not applied")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_Failures(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad pg url", Config{PG: PGConfig{Enabled: true, URL: "://bad"}}, "open postgres"},
		{"empty ch url", Config{CH: CHConfig{Enabled: true}}, "open clickhouse"},
		{
			"pg fails before ch is tried",
			Config{PG: PGConfig{Enabled: true, URL: "://bad"}, CH: CHConfig{Enabled: true, URL: "clickhouse://127.0.0.1:1"}},
			"open postgres",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(context.Background(), tc.cfg, WithLogger(zerolog.Nop()))
			if err == nil || s != nil {
				t.Fatalf("Open = %v, %v", s, err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %q want %q", err, tc.want)
			}
		})
	}
}

func TestClose_ClosesCH(t *testing.T) {
	f := &fakeCH{}
	s := &Store{CH: newCHAdapter(f)}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !f.closed {
		t.Fatal("clickhouse not closed")
	}
}
