// Package bind turns request bodies and query strings into validated structs,
// reporting the first bad field as a project error
package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"levain/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

type validation struct {
	v     *validator.Validate
	trans ut.Translator
}

// terse overrides for the stock English messages
var shortMessages = map[string]string{
	"min": "{0} must be at least {1}",
	"max": "{0} must be at most {1}",
	"gt":  "{0} must be greater than {1}",
	"gte": "{0} must be {1} or more",
}

var validate = sync.OnceValue(func() *validation {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	if err := entrans.RegisterDefaultTranslations(v, trans); err != nil {
		logger.Named("bind").Error().Err(err).Msg("register translations")
	}
	for tag, text := range shortMessages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &validation{v: v, trans: trans}
})

// fieldName reports fields the way clients spelled them: json tag, then query tag
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		switch name, _, _ := strings.Cut(f.Tag.Get(key), ","); name {
		case "":
			continue
		case "-":
			return f.Name
		default:
			return name
		}
	}
	return f.Name
}

// firstFailure validates s; bad is false when s passes or is not a struct
func firstFailure(s any) (field, msg string, bad bool) {
	x := validate()
	err := x.v.Struct(s)
	if err == nil {
		return "", "", false
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(x.trans), true
	}
	// InvalidValidationError: nothing to validate
	return "", "", false
}
