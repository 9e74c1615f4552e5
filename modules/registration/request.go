package registration

import "github.com/dmitrymomot/signupkit/pkg/signup"

// FormRequest is what every signup route binds: the four inputs, plus the
// field being checked on /check/{field}. Values arrive verbatim.
type FormRequest struct {
	Field    string `path:"field" json:"-"`
	Name     string `json:"name" form:"name" validate:"max=1024"`
	Email    string `json:"email" form:"email" validate:"max=1024"`
	Password string `json:"password" form:"password" validate:"max=1024"`
	Confirm  string `json:"confirm" form:"confirm" validate:"max=1024"`
}

// Values returns the inputs as signup.Values.
func (r FormRequest) Values() signup.Values {
	return signup.Values{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Confirm:  r.Confirm,
	}
}
