// Package signup validates and submits the four-field signup form: full
// name, email, password and password confirmation.
//
// Each field has an ordered rule list built from package validator; the
// first failing rule supplies the field's message. Rules run on the raw
// input, so whitespace and letter case matter exactly as typed.
//
//	res := signup.CheckEmail("bot@mailinator.com")
//	// res.Valid == false, res.Message == "Email domain not allowed"
//
//	signup.IsFormValid(values)   // drives the submit control
//	signup.Evaluate(values)      // every field's Result at once
//	signup.Validate(values)      // nil or validator.ValidationErrors
//
// Submitter turns a valid form into an Account after a delay, subject to an
// Outcome that may reject it; RandomOutcome(DefaultSuccessRate) reproduces
// the flaky backend the form was designed against.
package signup
