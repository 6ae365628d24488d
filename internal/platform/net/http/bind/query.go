package bind

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "levain/internal/platform/errors"
)

// Query decodes URL query parameters into T using `query:"name"` struct tags, then validates it
// supported field kinds are string, bool, ints, floats and pointers to them; absent keys leave fields zero (nil)
// malformed values and failed validation both map to invalid argument errors carrying the field name
func Query[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, fmt.Errorf("bind: Query needs a struct, got %s", rv.Kind())
	}

	values := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("query"), ",")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setField(rv.Field(i), strings.TrimSpace(raw[0])); err != nil {
			return dst, perr.WithField(perr.InvalidArgf("invalid parameters: %s %v", name, err), name)
		}
	}

	if field, msg, bad := firstFailure(dst); bad {
		return dst, perr.WithField(perr.InvalidArgf("invalid parameters: %s", msg), field)
	}
	return dst, nil
}

func setField(f reflect.Value, raw string) error {
	if f.Kind() == reflect.Pointer {
		v := reflect.New(f.Type().Elem())
		if err := setField(v.Elem(), raw); err != nil {
			return err
		}
		f.Set(v)
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("must be a boolean")
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		f.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("must be a non negative integer")
		}
		f.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		f.SetFloat(n)
	default:
		return fmt.Errorf("has unsupported kind %s", f.Kind())
	}
	return nil
}
