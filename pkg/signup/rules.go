package signup

import (
	"fmt"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// Rules returns the ordered rule set for field f against values.
// Order decides which message is reported when several rules fail.
func Rules(f Field, values Values) ([]validator.Rule, error) {
	switch f {
	case FieldName:
		return nameRules(values.Name), nil
	case FieldEmail:
		return emailRules(values.Email), nil
	case FieldPassword:
		return passwordRules(values.Password), nil
	case FieldConfirm:
		return confirmRules(values.Password, values.Confirm), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
}

func nameRules(name string) []validator.Rule {
	field := FieldName.String()
	return []validator.Rule{
		validator.NameMinLength(field, name),
		validator.NameNoDigits(field, name),
		validator.NameFullName(field, name),
	}
}

func emailRules(email string) []validator.Rule {
	field := FieldEmail.String()
	return []validator.Rule{
		validator.EmailFormat(field, email),
		validator.EmailDomainAllowed(field, email),
	}
}

func passwordRules(password string) []validator.Rule {
	field := FieldPassword.String()
	return []validator.Rule{
		validator.PasswordMinLength(field, password),
		validator.PasswordUpper(field, password),
		validator.PasswordLower(field, password),
		validator.PasswordDigit(field, password),
		validator.PasswordSpecial(field, password),
	}
}

func confirmRules(password, confirm string) []validator.Rule {
	return []validator.Rule{
		validator.PasswordConfirmed(FieldConfirm.String(), password, confirm),
	}
}
