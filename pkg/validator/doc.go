// Package validator provides the predicates and rules used to validate a
// signup form: full name, email address, password and password confirmation.
//
// Every predicate is a pure, total function over plain strings (AtLeast3Chars,
// NoNumber, TwoWords, EmailShape, BlockedEmail, AtLeast8Chars, HasUpper,
// HasLower, HasDigit, HasSpecial, PasswordsMatch). None of them panic, whatever
// the input: empty, very long, or invalid UTF-8.
//
// Each predicate is paired with a fixed, human-readable message in a Rule
// constructor (NameMinLength, EmailFormat, PasswordUpper, ...). A Rule holds a
// Check func together with translation-friendly error metadata, so the same
// rule can drive an HTML form, a JSON API or a log line.
//
// # Evaluation modes
//
// Rules are evaluated with one of three helpers:
//   - Apply  – runs every rule and aggregates each failure into ValidationErrors
//   - First  – stops at the first failing rule and returns its error
//   - All    – silent boolean AND of every rule, no error values built
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.PasswordMinLength("password", pw),
//	    validator.PasswordUpper("password", pw),
//	}
//	if verr, failed := validator.First(rules...); failed {
//	    fmt.Println(verr.Message) // "Add an uppercase letter"
//	}
//
// # Lengths and whitespace
//
// Lengths are counted in UTF-16 code units and trimming uses the browser
// whitespace class, so a value gets the same verdict here as in the page
// that collected it.
package validator
