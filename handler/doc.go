// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already filled in by
// the configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	mux.Post("/signup/state", handler.Wrap(stateHandler,
//		handler.WithBinders[handler.Context, registration.FormRequest](
//			binder.Signals(), binder.JSON(), binder.Form(), binder.Validate(),
//		),
//		handler.WithErrorHandler[handler.Context, registration.FormRequest](handler.NewErrorHandler(log)),
//	))
//
// Responses come in three shapes: JSON envelopes ({data, meta, error}),
// DataStar signal patches (Signals) that fall back to JSON for plain
// clients, and long-lived event streams (SSE).
//
// Errors are classified once, in ClassifyError: validation failures are 422,
// malformed or oversized payloads 400 or 413, HTTPError values carry their
// own code, and anything else is a 500.
package handler
