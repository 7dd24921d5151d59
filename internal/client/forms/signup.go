package forms

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/validation"
)

// Registrar is the slice of the session the sign-up form depends on.
type Registrar interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) error
}

// SignUp is the sign-up form controller. One instance per sign-up
// screen; construct it when the screen appears and drop it after.
type SignUp struct {
	session Registrar
	state   State

	name            string
	email           string
	password        string
	confirmPassword string

	errors Errors
}

func NewSignUp(session Registrar) *SignUp {
	return &SignUp{session: session}
}

// State returns the controller's current submit-cycle state.
func (f *SignUp) State() State { return f.state }

// Errors returns the current error map.
func (f *SignUp) Errors() Errors { return f.errors }

// Set stores a field value and synchronously runs the validator(s) that
// depend on it. Either password field re-validates the whole pair.
func (f *SignUp) Set(field Field, value string) {
	switch field {
	case FieldName:
		f.name = value
		f.errors.Name = validation.ValidateName(value)
	case FieldEmail:
		f.email = value
		f.errors.Email = validation.ValidateEmail(value)
	case FieldPassword:
		f.password = value
		f.validatePasswords()
	case FieldConfirmPassword:
		f.confirmPassword = value
		f.validatePasswords()
	}
}

// validatePasswords applies the sign-up password policy: an entirely
// empty pair collapses to a single "please type a password" message;
// anything else goes through the full evaluator.
func (f *SignUp) validatePasswords() {
	if f.password == "" && f.confirmPassword == "" {
		f.errors.Password = []string{MsgPasswordRequired}
		return
	}
	f.errors.Password = validation.EvaluatePassword(f.password, f.confirmPassword).Violations
}

// Submit re-validates every field and, when clean, registers the account.
//
// Outcomes:
//   - nil: registered; the password fields are cleared, name and email
//     stay populated. The view decides what happens next.
//   - ErrValidation: field errors are set (local validation, or the
//     EMAIL_ALREADY_TAKEN rejection mapped to the email field); no state
//     was changed remotely in the local case.
//   - ErrSubmitInFlight: a submit is already outstanding.
//   - anything else: an unrecognized failure for the view to surface
//     generically; field errors are left untouched.
func (f *SignUp) Submit(ctx context.Context) error {
	if f.state == Submitting {
		return ErrSubmitInFlight
	}

	// Re-run everything against current values; per-change validation
	// may be stale.
	f.errors.Name = validation.ValidateName(f.name)
	f.errors.Email = validation.ValidateEmail(f.email)
	f.validatePasswords()
	if !f.errors.Empty() {
		return ErrValidation
	}

	f.state = Submitting
	defer func() { f.state = Editing }()

	if err := f.session.Register(ctx, f.name, f.email, f.password, f.confirmPassword); err != nil {
		if api.ErrorCode(err) == api.CodeEmailAlreadyTaken {
			f.errors.Email = MsgEmailTaken
			return ErrValidation
		}
		return err
	}

	// Never keep a password around after it has been used.
	f.password = ""
	f.confirmPassword = ""
	return nil
}
