package signup

import (
	"fmt"
	"slices"
)

// Field identifies one input of the signup form.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldConfirm  Field = "confirm"
)

var fields = []Field{FieldName, FieldEmail, FieldPassword, FieldConfirm}

// Fields returns every field in form order.
func Fields() []Field {
	return slices.Clone(fields)
}

func (f Field) String() string {
	return string(f)
}

// Valid reports whether f is one of the four signup fields.
func (f Field) Valid() bool {
	return slices.Contains(fields, f)
}

// ParseField converts s into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// Affected returns the fields whose state may change when f is edited.
// Editing the password also re-checks the confirmation, since the latter
// compares against it.
func Affected(f Field) []Field {
	switch f {
	case FieldPassword:
		return []Field{FieldPassword, FieldConfirm}
	case FieldName, FieldEmail, FieldConfirm:
		return []Field{f}
	default:
		return nil
	}
}
