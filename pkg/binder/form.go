package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into fields tagged `form:"name"`. Only the first value of a repeated key is
// used. Other content types are not applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)
			if err := r.ParseForm(); err != nil {
				return formError(err)
			}
		case "multipart/form-data":
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)
			if err := r.ParseMultipartForm(DefaultMaxBodySize); err != nil {
				return formError(err)
			}
		default:
			return ErrBinderNotApplicable
		}

		return bindTagged(v, "form", func(name string) (string, bool) {
			values, ok := r.PostForm[name]
			if !ok || len(values) == 0 {
				return "", false
			}
			return values[0], true
		})
	}
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errors.Join(ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
}
