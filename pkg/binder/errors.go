package binder

import "errors"

var (
	// ErrBinderNotApplicable tells Wrap to skip a binder that does not match
	// the request, e.g. the JSON binder on a form post.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrInvalidTarget      = errors.New("bind target must be a non-nil pointer to struct")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm  = errors.New("failed to parse form data")
	ErrFailedToParsePath  = errors.New("failed to parse path parameters")
	ErrFailedToReadSignal = errors.New("failed to read datastar signals")
	ErrRequestTooLarge    = errors.New("request body too large")
	ErrInvalidPayload     = errors.New("request payload failed validation")
)
