package validator

import (
	"strings"
	"unicode"
)

// isFormSpace matches the whitespace class browsers apply to form input:
// Unicode White_Space plus the byte order mark, without U+0085.
func isFormSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r)
}

// trimFormSpace strips leading and trailing form whitespace.
func trimFormSpace(value string) string {
	return strings.TrimFunc(value, isFormSpace)
}

// formLen counts UTF-16 code units, the unit browsers use for input length.
// Invalid UTF-8 bytes count as one unit each.
func formLen(value string) int {
	n := 0
	for _, r := range value {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}
