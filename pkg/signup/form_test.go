package signup_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/signup"
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

var validValues = signup.Values{
	Name:     "Jane Doe",
	Email:    "jane@example.com",
	Password: "Abc12345!",
	Confirm:  "Abc12345!",
}

func TestIsFormValid(t *testing.T) {
	t.Parallel()

	assert.True(t, signup.IsFormValid(validValues))
	assert.False(t, signup.IsFormValid(signup.Values{}))

	v := validValues
	v.Confirm = "Abc12345"
	assert.False(t, signup.IsFormValid(v))

	v = validValues
	v.Email = "jane@10minutemail.com"
	assert.False(t, signup.IsFormValid(v))
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	state := signup.Evaluate(validValues)
	assert.True(t, state.AllValid)
	for _, res := range state.Results() {
		assert.True(t, res.Valid, res.Field)
		assert.Empty(t, res.Message)
	}

	state = signup.Evaluate(signup.Values{Name: "Jane Doe", Password: "x", Confirm: "y"})
	assert.False(t, state.AllValid)
	assert.True(t, state.Name.Valid)
	assert.Equal(t, "Invalid email format", state.Email.Message)
	assert.Equal(t, "Minimum 8 characters", state.Password.Message)

	confirm, ok := state.Result(signup.FieldConfirm)
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match", confirm.Message)

	_, ok = state.Result(signup.Field("age"))
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, signup.Validate(validValues))

	err := signup.Validate(signup.Values{Name: "Al", Email: "a@mailinator.com", Password: "Abc12345!", Confirm: "nope"})
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 3)
	assert.Equal(t, []string{"name", "email", "confirm"}, verrs.Fields())
	assert.Equal(t, []string{"At least 3 characters"}, verrs.Get("name"))
	assert.Equal(t, []string{"Email domain not allowed"}, verrs.Get("email"))
	assert.Equal(t, []string{"Passwords do not match"}, verrs.Get("confirm"))
}

func valuesGen() gopter.Gen {
	word := gen.OneGenOf(gen.AlphaString(), gen.AnyString(), gen.Const("Jane Doe"), gen.Const("Abc12345!"))
	email := gen.OneGenOf(gen.AnyString(), gen.Const("jane@example.com"), gen.Const("x@mailinator.com"))
	return gopter.CombineGens(word, email, word, word).Map(func(vs []any) signup.Values {
		return signup.Values{
			Name:     vs[0].(string),
			Email:    vs[1].(string),
			Password: vs[2].(string),
			Confirm:  vs[3].(string),
		}
	})
}

func TestProperty_FormConsistency(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	props := gopter.NewProperties(params)

	props.Property("IsFormValid agrees with every field check", prop.ForAll(
		func(v signup.Values) bool {
			all := true
			for _, f := range signup.Fields() {
				res, err := signup.CheckField(f, v)
				if err != nil {
					return false
				}
				all = all && res.Valid
			}
			return signup.IsFormValid(v) == all
		},
		valuesGen(),
	))

	props.Property("IsFormValid, Evaluate and Validate agree", prop.ForAll(
		func(v signup.Values) bool {
			valid := signup.IsFormValid(v)
			return signup.Evaluate(v).AllValid == valid && (signup.Validate(v) == nil) == valid
		},
		valuesGen(),
	))

	props.Property("checks are deterministic", prop.ForAll(
		func(v signup.Values) bool {
			return signup.Evaluate(v) == signup.Evaluate(v)
		},
		valuesGen(),
	))

	props.Property("a valid result never carries a message", prop.ForAll(
		func(v signup.Values) bool {
			for _, res := range signup.Evaluate(v).Results() {
				if res.Valid != (res.Message == "") {
					return false
				}
			}
			return true
		},
		valuesGen(),
	))

	props.TestingRun(t)
}
