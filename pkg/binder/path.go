package binder

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path binds chi URL parameters into fields tagged `path:"name"`.
// It is not applicable outside a chi route.
func Path() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return ErrBinderNotApplicable
		}

		err := bindTagged(v, "path", func(name string) (string, bool) {
			for i, key := range rctx.URLParams.Keys {
				if key == name {
					return rctx.URLParams.Values[i], true
				}
			}
			return "", false
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParsePath, err)
		}
		return nil
	}
}
