package signup

import "errors"

var (
	// ErrUnknownField is returned when a field kind is not one of name, email,
	// password or confirm.
	ErrUnknownField = errors.New("unknown signup field")

	// ErrInvalidForm is returned by Submit when at least one field fails its rules.
	// It is joined with the validator.ValidationErrors describing the failures.
	ErrInvalidForm = errors.New("signup form is invalid")

	// ErrSubmissionFailed is returned when the outcome provider rejects a submission.
	ErrSubmissionFailed = errors.New("signup submission failed")

	// ErrEmailTaken is returned by an AccountStore when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrAccountNotFound is returned by an AccountStore lookup that matches nothing.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNilAccount is returned by an AccountStore asked to persist a nil account.
	ErrNilAccount = errors.New("nil account")
)
