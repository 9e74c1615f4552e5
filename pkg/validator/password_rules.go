package validator

import "regexp"

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*]`)
)

// AtLeast8Chars reports whether value is at least eight characters long.
// The value is not trimmed: spaces count.
func AtLeast8Chars(value string) bool {
	return formLen(value) >= 8
}

func HasUpper(value string) bool {
	return uppercaseRegex.MatchString(value)
}

func HasLower(value string) bool {
	return lowercaseRegex.MatchString(value)
}

func HasDigit(value string) bool {
	return digitRegex.MatchString(value)
}

// HasSpecial reports whether value contains one of ! @ # $ % ^ & *.
func HasSpecial(value string) bool {
	return specialCharRegex.MatchString(value)
}

// PasswordsMatch reports exact equality. No trimming, case-sensitive.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}

func PasswordMinLength(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return AtLeast8Chars(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Minimum 8 characters",
			TranslationKey: "signup.password.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   8,
			},
		},
	}
}

func PasswordUpper(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return HasUpper(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Add an uppercase letter",
			TranslationKey: "signup.password.uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordLower(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return HasLower(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Add a lowercase letter",
			TranslationKey: "signup.password.lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return HasDigit(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Add a number",
			TranslationKey: "signup.password.digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordSpecial(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return HasSpecial(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Add a special character",
			TranslationKey: "signup.password.special",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": "!@#$%^&*",
			},
		},
	}
}

// PasswordConfirmed requires confirm to repeat password exactly.
// The error is reported against field, normally the confirmation input.
func PasswordConfirmed(field, password, confirm string) Rule {
	return Rule{
		Check: func() bool {
			return PasswordsMatch(password, confirm)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Passwords do not match",
			TranslationKey: "signup.confirm.match",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
