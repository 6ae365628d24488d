package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty([]string{"GET"}, []string{"POST"}); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty kept = %v", got)
	}
	if got := IfEmpty(nil, []string{"POST"}); len(got) != 1 || got[0] != "POST" {
		t.Fatalf("IfEmpty default = %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := []struct {
		in, want string
		panics   bool
	}{
		{in: "recipes", want: "/recipes"},
		{in: "/recipes/", want: "/recipes"},
		{in: "  /meta ", want: "/meta"},
		{in: "/a/b/", want: "/a/b"},
		{in: "/", panics: true},
		{in: "  ", panics: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != tc.panics {
					t.Fatalf("panic = %v", r)
				}
			}()
			if got := MustPrefix(tc.in); got != tc.want {
				t.Fatalf("MustPrefix(%q) = %q want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMustString(t *testing.T) {
	if MustString("recipes", "name") != "recipes" {
		t.Fatal("value not returned")
	}
	defer func() {
		if msg, _ := recover().(string); msg != "module name is required" {
			t.Fatalf("panic = %q", msg)
		}
	}()
	MustString(" \t", "module name")
}
