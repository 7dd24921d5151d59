// Package forms contains the two form controllers: sign-up and
// profile-edit. A controller holds per-field input values and an error
// map, runs the validators synchronously on every Set, and on Submit
// re-validates everything before invoking the session. All error-message
// text and field attribution lives here; the session only passes raw
// failures through.
package forms

import "errors"

// Field names the controllers accept in Set.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldCurrentPassword Field = "currentPassword"
	FieldNewPassword     Field = "newPassword"
)

// State is the controller's position in its submit cycle. A form is
// Editing by default, Submitting only while a network call is
// outstanding, and always returns to Editing whatever the outcome.
type State int

const (
	Editing State = iota
	Submitting
)

var (
	// ErrValidation signals that Submit stopped on field errors: either
	// local validation before any network call, or a server rejection
	// mapped onto a field. Inspect Errors() for the details.
	ErrValidation = errors.New("form has validation errors")

	// ErrSubmitInFlight signals a second Submit while one is outstanding.
	// Submits are mutually exclusive per form instance.
	ErrSubmitInFlight = errors.New("submit already in progress")
)

// Messages owned by the form layer.
const (
	// MsgPasswordRequired replaces the full violation list when the
	// sign-up form's password pair is entirely empty. This short-circuit
	// is sign-up policy: the profile form treats an empty password group
	// as "not changing the password" instead.
	MsgPasswordRequired        = "Please type your desired password."
	MsgCurrentPasswordRequired = "Please type your current password."
	MsgNewPasswordRequired     = "Please type your new desired password."
	MsgEmailTaken              = "Email address has already taken. Please choose another email."
	MsgCurrentPasswordNoMatch  = "Your current password does not match the record."
)

// Errors is the per-form error map: one string per plain field (empty
// means valid) and an ordered violation list for the password group,
// whose validity depends on several fields jointly.
type Errors struct {
	Name     string
	Email    string
	Password []string
}

// Empty reports whether the form may be submitted.
func (e Errors) Empty() bool {
	return e.Name == "" && e.Email == "" && len(e.Password) == 0
}
