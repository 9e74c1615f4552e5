package registration

import "github.com/dmitrymomot/signupkit/pkg/signup"

// Status kinds shown next to the form.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "error"
)

// MessageEmailTaken is shown when the email already has an account.
const MessageEmailTaken = "Email already registered"

// FieldState is the client-side state of one input.
type FieldState struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Status is the form-level status line.
type Status struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// CheckSignals patches the checked fields and the submit control.
type CheckSignals struct {
	Fields    map[signup.Field]FieldState `json:"fields"`
	CanSubmit bool                        `json:"canSubmit"`
}

// StatusSignals patches the status line and the submitting flag.
type StatusSignals struct {
	Status     Status `json:"status"`
	Submitting bool   `json:"submitting"`
	CanSubmit  bool   `json:"canSubmit"`
}

// FormSignals is the complete client state.
type FormSignals struct {
	Name       string                      `json:"name"`
	Email      string                      `json:"email"`
	Password   string                      `json:"password"`
	Confirm    string                      `json:"confirm"`
	Fields     map[signup.Field]FieldState `json:"fields"`
	CanSubmit  bool                        `json:"canSubmit"`
	Status     Status                      `json:"status"`
	Submitting bool                        `json:"submitting"`
}

func fieldStates(results ...signup.Result) map[signup.Field]FieldState {
	states := make(map[signup.Field]FieldState, len(results))
	for _, r := range results {
		states[r.Field] = FieldState{Valid: r.Valid, Message: r.Message}
	}
	return states
}

// emptyForm is the state of a fresh or freshly reset form: no text, no
// messages shown, submit disabled.
func emptyForm(status Status) FormSignals {
	fields := make(map[signup.Field]FieldState, len(signup.Fields()))
	for _, f := range signup.Fields() {
		fields[f] = FieldState{}
	}
	return FormSignals{Fields: fields, Status: status}
}
