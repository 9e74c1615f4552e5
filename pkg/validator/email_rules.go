package validator

import (
	"regexp"
	"slices"
	"strings"
)

// nonSpace is one character outside the form whitespace class (see isFormSpace).
const nonSpace = `[^\t\n\v\f\r\p{Z}\x{FEFF}]`

var (
	// Permissive shape check: something@something.something with no whitespace.
	emailShapeRegex = regexp.MustCompile(`^` + nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+$`)

	// Disposable mailbox providers rejected at signup. Compared verbatim.
	blockedEmailDomains = []string{
		"tempmail.com",
		"mailinator.com",
		"10minutemail.com",
	}
)

// BlockedEmailDomains returns a copy of the rejected email domains.
func BlockedEmailDomains() []string {
	return slices.Clone(blockedEmailDomains)
}

// EmailShape reports whether value looks like local@domain.tld.
// It is a syntactic check only and far more permissive than RFC 5322.
func EmailShape(value string) bool {
	return emailShapeRegex.MatchString(value)
}

// EmailDomain returns the part of value between the first "@" and the next
// "@" (or the end). ok is false when value has no "@".
func EmailDomain(value string) (domain string, ok bool) {
	_, rest, found := strings.Cut(value, "@")
	if !found {
		return "", false
	}
	domain, _, _ = strings.Cut(rest, "@")
	return domain, true
}

// BlockedEmail reports whether the domain of value is on the denylist.
// The comparison is exact: no case folding and no subdomain matching.
func BlockedEmail(value string) bool {
	domain, ok := EmailDomain(value)
	if !ok {
		return false
	}
	return slices.Contains(blockedEmailDomains, domain)
}

// EmailFormat requires the local@domain.tld shape.
func EmailFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return EmailShape(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid email format",
			TranslationKey: "signup.email.format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailDomainAllowed rejects addresses on a blocked domain.
func EmailDomainAllowed(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !BlockedEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Email domain not allowed",
			TranslationKey: "signup.email.blocked_domain",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
