package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

func TestEmailShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"minimal address", "a@b.com", true},
		{"missing tld", "a@b", false},
		{"space in local part", "a b@c.com", false},
		{"empty", "", false},
		{"missing local part", "@b.com", false},
		{"dot right after at", "a@.com", false},
		{"trailing dot", "a@b.", false},
		{"subdomains", "john.smith@mail.example.co.uk", true},
		{"plus addressing", "john+news@example.com", true},
		{"two at signs still match the shape", "a@b@c.com", true},
		{"leading space", " a@b.com", false},
		{"trailing newline", "a@b.com\n", false},
		{"tab inside", "a@b\t.com", false},
		{"non-breaking space", "a@b\u00a0c.com", false},
		{"byte order mark", "\ufeffa@b.com", false},
		{"unicode domain", "ünï@cödé.de", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.EmailShape(tt.value))
		})
	}
}

func TestEmailDomain(t *testing.T) {
	t.Parallel()

	domain, ok := validator.EmailDomain("x@mailinator.com")
	assert.True(t, ok)
	assert.Equal(t, "mailinator.com", domain)

	domain, ok = validator.EmailDomain("x@mailinator.com@other.org")
	assert.True(t, ok)
	assert.Equal(t, "mailinator.com", domain, "only the segment up to a second @ is the domain")

	domain, ok = validator.EmailDomain("no-at-sign")
	assert.False(t, ok)
	assert.Empty(t, domain)

	domain, ok = validator.EmailDomain("trailing@")
	assert.True(t, ok)
	assert.Empty(t, domain)
}

func TestBlockedEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"mailinator", "x@mailinator.com", true},
		{"tempmail", "x@tempmail.com", true},
		{"10minutemail", "x@10minutemail.com", true},
		{"case is not normalized", "x@Mailinator.com", false},
		{"subdomains are not matched", "x@eu.mailinator.com", false},
		{"regular provider", "x@example.com", false},
		{"no at sign", "mailinator.com", false},
		{"empty", "", false},
		{"second at sign ends the domain", "x@tempmail.com@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.BlockedEmail(tt.value))
		})
	}
}

func TestBlockedEmailDomains(t *testing.T) {
	t.Parallel()

	domains := validator.BlockedEmailDomains()
	assert.Equal(t, []string{"tempmail.com", "mailinator.com", "10minutemail.com"}, domains)

	domains[0] = "changed.example"
	assert.True(t, validator.BlockedEmail("x@tempmail.com"), "returned slice must be a copy")
}

func TestEmailRules(t *testing.T) {
	t.Parallel()

	format := validator.EmailFormat("email", "not-an-email")
	assert.False(t, format.Check())
	assert.Equal(t, "Invalid email format", format.Error.Message)
	assert.Equal(t, "signup.email.format", format.Error.TranslationKey)

	allowed := validator.EmailDomainAllowed("email", "bot@mailinator.com")
	assert.False(t, allowed.Check())
	assert.Equal(t, "Email domain not allowed", allowed.Error.Message)
	assert.Equal(t, "signup.email.blocked_domain", allowed.Error.TranslationKey)

	assert.True(t, validator.EmailDomainAllowed("email", "jane@example.com").Check())
}
