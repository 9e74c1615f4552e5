package binder

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"

	govalidator "github.com/go-playground/validator/v10"
)

// FieldErrors maps a payload field, named after its json tag, to what is
// wrong with it.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e[k], ", "))
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

var structValidator = sync.OnceValue(func() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
})

// Validate checks `validate` struct tags on the already bound value. It is
// meant to run last, guarding payload shape (sizes, presence) before any
// domain logic sees it. Failures are ErrInvalidPayload joined with
// FieldErrors.
func Validate() func(r *http.Request, v any) error {
	return func(_ *http.Request, v any) error {
		err := structValidator().Struct(v)
		if err == nil {
			return nil
		}

		var invalid *govalidator.InvalidValidationError
		if errors.As(err, &invalid) {
			return ErrBinderNotApplicable
		}

		var verrs govalidator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}

		fields := make(FieldErrors, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], describe(fe))
		}
		return errors.Join(ErrInvalidPayload, fields)
	}
}

func describe(fe govalidator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "required":
		return "is required"
	default:
		return "failed " + fe.Tag()
	}
}
