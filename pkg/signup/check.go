package signup

import "github.com/dmitrymomot/signupkit/pkg/validator"

// Result is the outcome of checking one field.
// Message and Rule are empty when the field is valid.
type Result struct {
	Field   Field  `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

// CheckName validates a full name.
func CheckName(name string) Result {
	return check(FieldName, nameRules(name))
}

// CheckEmail validates an email address.
func CheckEmail(email string) Result {
	return check(FieldEmail, emailRules(email))
}

// CheckPassword validates password strength.
func CheckPassword(password string) Result {
	return check(FieldPassword, passwordRules(password))
}

// CheckConfirm validates that confirm repeats password.
func CheckConfirm(password, confirm string) Result {
	return check(FieldConfirm, confirmRules(password, confirm))
}

// CheckField validates field f. The confirmation field reads both
// values.Password and values.Confirm; the others read only their own value.
func CheckField(f Field, values Values) (Result, error) {
	rules, err := Rules(f, values)
	if err != nil {
		return Result{}, err
	}
	return check(f, rules), nil
}

// check evaluates rules in order and reports the first failure.
func check(f Field, rules []validator.Rule) Result {
	verr, failed := validator.First(rules...)
	if !failed {
		return Result{Field: f, Valid: true}
	}
	return Result{
		Field:   f,
		Valid:   false,
		Message: verr.Message,
		Rule:    verr.TranslationKey,
	}
}
