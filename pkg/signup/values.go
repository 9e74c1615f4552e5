package signup

// Values holds the raw text of every signup input.
// Values are used verbatim: no trimming or case folding happens before the
// rules run.
type Values struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Value returns the text of field f, or "" for an unknown field.
func (v Values) Value(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirm:
		return v.Confirm
	default:
		return ""
	}
}
