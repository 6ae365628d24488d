package config

import (
	"testing"
	"time"

	kit "levain/internal/platform/testkit"

	"github.com/google/go-cmp/cmp"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_DBURL", "  postgres://levain ")
	if got := c.MustString("DBURL"); got != "postgres://levain" {
		t.Fatalf("MustString = %q", got)
	}
	t.Setenv("T_BLANK", "   ")
	kit.MustPanic(t, func() { c.MustString("BLANK") })
	kit.MustPanic(t, func() { c.MustString("MISSING") })
}

func TestMay(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_NAME", " levain ")
	t.Setenv("M_PORT", "4000")
	t.Setenv("M_BADINT", "four")
	t.Setenv("M_ON", "true")
	t.Setenv("M_BADBOOL", "nope")
	t.Setenv("M_TTL", "90s")
	t.Setenv("M_BADTTL", "soon")

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"string set", c.MayString("NAME", "x"), "levain"},
		{"string default", c.MayString("UNSET", "x"), "x"},
		{"int set", c.MayInt("PORT", 1), 4000},
		{"int malformed", c.MayInt("BADINT", 1), 1},
		{"int default", c.MayInt("UNSET", 7), 7},
		{"bool set", c.MayBool("ON", false), true},
		{"bool malformed", c.MayBool("BADBOOL", true), true},
		{"duration set", c.MayDuration("TTL", time.Second), 90 * time.Second},
		{"duration malformed", c.MayDuration("BADTTL", time.Minute), time.Minute},
		{"duration default", c.MayDuration("UNSET", 5*time.Minute), 5 * time.Minute},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"farina", "flour"}

	cases := []struct {
		name string
		env  string
		want []string
	}{
		{"unset", "", def},
		{"trimmed", " farina, mehl , ,harina ,, ", []string{"farina", "mehl", "harina"}},
		{"only separators", " , ,  ,", def},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CSV_KEYWORDS", tc.env)
			if diff := cmp.Diff(tc.want, c.MayCSV("KEYWORDS", def)); diff != "" {
				t.Fatalf("MayCSV (-want +got):\n%s", diff)
			}
		})
	}
}
