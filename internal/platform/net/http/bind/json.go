package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "levain/internal/platform/errors"
	"levain/internal/platform/logger"
)

// MaxBody caps what ParseJSON reads from a request
const MaxBody = 1 << 20

// ParseJSON decodes exactly one JSON value into T and validates it
// unknown fields, trailing data and empty bodies are JSON errors; rule
// violations are validation errors naming the field
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst T
	if r.Body == nil {
		return dst, perr.JSONErrf("empty body")
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		var zero T
		return zero, decodeErr(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var zero T
		return zero, perr.JSONErrf("unexpected data after the JSON body")
	}

	if field, msg, bad := firstFailure(dst); bad {
		var zero T
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

func decodeErr(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return perr.JSONErrf("empty body")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return perr.WithField(perr.JSONErrf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value), typeErr.Field)
	}
	return perr.JSONErrf("invalid JSON: %v", err)
}
