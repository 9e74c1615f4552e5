package validator

import "regexp"

// Digit class shared by the name and password rules.
var digitRegex = regexp.MustCompile(`[0-9]`)

// AtLeast3Chars reports whether value holds at least three characters once
// surrounding whitespace is trimmed.
func AtLeast3Chars(value string) bool {
	return formLen(trimFormSpace(value)) >= 3
}

// NoNumber reports whether value contains no ASCII digit.
func NoNumber(value string) bool {
	return !digitRegex.MatchString(value)
}

// TwoWords reports whether value holds at least two words.
// Only the ASCII space separates words; tabs and newlines are part of a word.
// Surrounding whitespace is trimmed first.
func TwoWords(value string) bool {
	value = trimFormSpace(value)

	words := 0
	inWord := false
	for i := 0; i < len(value); i++ {
		if value[i] == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
	}

	return words >= 2
}

// NameMinLength requires at least three non-blank characters.
func NameMinLength(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return AtLeast3Chars(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "At least 3 characters",
			TranslationKey: "signup.name.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   3,
			},
		},
	}
}

// NameNoDigits rejects names containing digits.
func NameNoDigits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return NoNumber(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "No numbers allowed",
			TranslationKey: "signup.name.no_digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NameFullName requires a first and a last name.
func NameFullName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return TwoWords(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Enter first and last name",
			TranslationKey: "signup.name.two_words",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
