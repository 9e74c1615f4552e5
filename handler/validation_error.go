package handler

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// ValidationError lists messages per field.
type ValidationError url.Values

// NewValidationError returns an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom groups validator failures by field, keeping rule order.
func ValidationErrorFrom(verrs validator.ValidationErrors) ValidationError {
	e := NewValidationError()
	for _, field := range verrs.Fields() {
		for _, msg := range verrs.Get(field) {
			e.Add(field, msg)
		}
	}
	return e
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Add appends a message for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether field has any message.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no field has a message.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
