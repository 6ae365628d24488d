package bind

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "levain/internal/platform/errors"
)

type yield struct {
	Flour   *float64 `query:"newFlour" validate:"omitempty,gt=0"`
	Pieces  *int     `query:"pieces" validate:"omitempty,gt=0"`
	Limit   int      `query:"limit" validate:"omitempty,max=200"`
	Name    string   `query:"name"`
	Rounded bool     `query:"rounded"`
	Skip    string
}

func TestQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?newFlour=1500.5&pieces=+12+&limit=20&name=poolish&rounded=true&Skip=x", nil)
	got, err := Query[yield](req)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got.Flour == nil || *got.Flour != 1500.5 || got.Pieces == nil || *got.Pieces != 12 {
		t.Fatalf("pointers = %v %v", got.Flour, got.Pieces)
	}
	if got.Limit != 20 || got.Name != "poolish" || !got.Rounded || got.Skip != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestQuery_AbsentStaysNil(t *testing.T) {
	got, err := Query[yield](httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got.Flour != nil || got.Pieces != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestQuery_Errors(t *testing.T) {
	cases := []struct {
		query string
		field string
	}{
		{"newFlour=lots", "newFlour"},
		{"pieces=1.5", "pieces"},
		{"rounded=maybe", "rounded"},
		{"newFlour=-3", "newFlour"},
		{"pieces=0", "pieces"},
		{"limit=500", "limit"},
	}
	for _, c := range cases {
		_, err := Query[yield](httptest.NewRequest(http.MethodGet, "/?"+c.query, nil))
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("%s: err = %v", c.query, err)
		}
		if e, _ := perr.As(err); e.Field() != c.field {
			t.Fatalf("%s: field = %q", c.query, e.Field())
		}
	}
}

func TestQuery_NonStruct(t *testing.T) {
	if _, err := Query[int](httptest.NewRequest(http.MethodGet, "/", nil)); err == nil {
		t.Fatal("non struct accepted")
	}
}
