package signup

import "github.com/dmitrymomot/signupkit/pkg/validator"

// FormState is the per-field state of the whole form.
type FormState struct {
	Name     Result `json:"name"`
	Email    Result `json:"email"`
	Password Result `json:"password"`
	Confirm  Result `json:"confirm"`
	AllValid bool   `json:"allValid"`
}

// Results returns the four field results in form order.
func (s FormState) Results() []Result {
	return []Result{s.Name, s.Email, s.Password, s.Confirm}
}

// Result returns the result for field f.
func (s FormState) Result(f Field) (Result, bool) {
	switch f {
	case FieldName:
		return s.Name, true
	case FieldEmail:
		return s.Email, true
	case FieldPassword:
		return s.Password, true
	case FieldConfirm:
		return s.Confirm, true
	default:
		return Result{}, false
	}
}

// Evaluate checks every field and derives AllValid from the four results.
func Evaluate(values Values) FormState {
	s := FormState{
		Name:     CheckName(values.Name),
		Email:    CheckEmail(values.Email),
		Password: CheckPassword(values.Password),
		Confirm:  CheckConfirm(values.Password, values.Confirm),
	}
	s.AllValid = s.Name.Valid && s.Email.Valid && s.Password.Valid && s.Confirm.Valid
	return s
}

// IsFormValid reports whether every rule of every field passes.
// It builds no messages and is meant for enabling a submit control.
// It always agrees with Evaluate(values).AllValid.
func IsFormValid(values Values) bool {
	return validator.All(allRules(values)...)
}

// Validate returns nil when the form is valid, otherwise
// validator.ValidationErrors holding the first failure of each failing field,
// in form order.
func Validate(values Values) error {
	var errs validator.ValidationErrors
	for _, rules := range [][]validator.Rule{
		nameRules(values.Name),
		emailRules(values.Email),
		passwordRules(values.Password),
		confirmRules(values.Password, values.Confirm),
	} {
		if verr, failed := validator.First(rules...); failed {
			errs.Add(verr)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func allRules(values Values) []validator.Rule {
	rules := make([]validator.Rule, 0, 11)
	rules = append(rules, nameRules(values.Name)...)
	rules = append(rules, emailRules(values.Email)...)
	rules = append(rules, passwordRules(values.Password)...)
	rules = append(rules, confirmRules(values.Password, values.Confirm)...)
	return rules
}
