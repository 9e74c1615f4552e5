// Package registration serves the signup form over HTTP.
//
// Every route accepts form posts, JSON bodies and DataStar signal payloads.
// DataStar clients get signal patches, in the shape
//
//	{"fields": {"email": {"valid": false, "message": "Invalid email format"}},
//	 "canSubmit": false,
//	 "status": {"message": "Submitting...", "kind": "info"},
//	 "submitting": true}
//
// and plain clients get the same object as JSON under "data". Submission
// over DataStar streams its progress; plain submission answers 201 with the
// new account ID, 422 with per-field messages, 409 for a registered email or
// 503 when the submission is rejected.
package registration
