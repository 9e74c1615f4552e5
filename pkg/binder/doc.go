// Package binder turns an *http.Request into a typed value.
//
// Each constructor returns a func(*http.Request, any) error suitable for
// handler.WithBinders. A binder that does not match the request returns
// ErrBinderNotApplicable and is skipped, so one handler can accept form
// posts, JSON bodies and DataStar signals at once:
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, Request](
//		binder.Path(),
//		binder.Signals(),
//		binder.JSON(),
//		binder.Form(),
//		binder.Validate(),
//	))
//
// String values are never trimmed or sanitized.
package binder
