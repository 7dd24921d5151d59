package forms

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/validation"
)

// ProfileSession is the slice of the session the profile-edit form
// depends on.
type ProfileSession interface {
	User() models.User
	OnUserChange(fn func(models.User))
	EditProfile(ctx context.Context, req api.UpdateUserRequest) error
}

// ProfileEdit is the profile-edit form controller. It seeds its name and
// email from the session's user record and keeps following external
// changes to it, but only into fields the user has not touched.
// In-flight edits are never silently overwritten; Refresh is the explicit
// way to discard them.
type ProfileEdit struct {
	session ProfileSession
	state   State

	name            string
	email           string
	currentPassword string
	newPassword     string
	confirmPassword string

	// dirty marks name/email fields edited since the last seed or
	// successful submit. Pristine fields follow the session user.
	dirty map[Field]bool

	errors Errors
}

func NewProfileEdit(session ProfileSession) *ProfileEdit {
	f := &ProfileEdit{session: session, dirty: make(map[Field]bool)}
	f.seed(session.User())
	session.OnUserChange(f.reseed)
	return f
}

// State returns the controller's current submit-cycle state.
func (f *ProfileEdit) State() State { return f.state }

// Errors returns the current error map.
func (f *ProfileEdit) Errors() Errors { return f.errors }

// Name returns the current name field value.
func (f *ProfileEdit) Name() string { return f.name }

// Email returns the current email field value.
func (f *ProfileEdit) Email() string { return f.email }

// Set stores a field value and synchronously runs the validator(s) that
// depend on it. Name and email become dirty and stop following the
// session user until the next Refresh or successful Submit.
func (f *ProfileEdit) Set(field Field, value string) {
	switch field {
	case FieldName:
		f.name = value
		f.dirty[FieldName] = true
		f.errors.Name = validation.ValidateName(value)
	case FieldEmail:
		f.email = value
		f.dirty[FieldEmail] = true
		f.errors.Email = validation.ValidateEmail(value)
	case FieldCurrentPassword:
		f.currentPassword = value
		f.validatePasswords()
	case FieldNewPassword:
		f.newPassword = value
		f.validatePasswords()
	case FieldConfirmPassword:
		f.confirmPassword = value
		f.validatePasswords()
	}
}

// Refresh overwrites name and email from the session's current user,
// discarding in-flight edits, and resets the password group.
func (f *ProfileEdit) Refresh() {
	f.seed(f.session.User())
	f.currentPassword = ""
	f.newPassword = ""
	f.confirmPassword = ""
	f.validatePasswords()
}

// seed loads name and email from u, marks them pristine, and validates.
func (f *ProfileEdit) seed(u models.User) {
	f.name = u.Name
	f.email = u.Email
	delete(f.dirty, FieldName)
	delete(f.dirty, FieldEmail)
	f.errors.Name = validation.ValidateName(f.name)
	f.errors.Email = validation.ValidateEmail(f.email)
}

// reseed is the OnUserChange subscriber: a one-way sync from session to
// form that only touches pristine fields.
func (f *ProfileEdit) reseed(u models.User) {
	if !f.dirty[FieldName] {
		f.name = u.Name
		f.errors.Name = validation.ValidateName(f.name)
	}
	if !f.dirty[FieldEmail] {
		f.email = u.Email
		f.errors.Email = validation.ValidateEmail(f.email)
	}
}

// validatePasswords applies the profile-edit password policy. An entirely
// empty group means "not changing the password" and produces no
// violations. This differs from the sign-up form, which
// requires one. A partially filled group names the missing pieces; once a
// new password (or its confirmation) is present, the full evaluator runs
// on the pair.
func (f *ProfileEdit) validatePasswords() {
	f.errors.Password = nil

	if f.currentPassword == "" && f.newPassword == "" && f.confirmPassword == "" {
		return
	}

	if f.currentPassword == "" && (f.newPassword != "" || f.confirmPassword != "") {
		f.errors.Password = append(f.errors.Password, MsgCurrentPasswordRequired)
	}
	if f.newPassword == "" && (f.currentPassword != "" || f.confirmPassword != "") {
		f.errors.Password = append(f.errors.Password, MsgNewPasswordRequired)
	}
	if f.newPassword != "" || f.confirmPassword != "" {
		res := validation.EvaluatePassword(f.newPassword, f.confirmPassword)
		f.errors.Password = append(f.errors.Password, res.Violations...)
	}
}

// Submit re-validates every field and, when clean, patches the profile.
// Empty password fields are omitted from the outgoing request entirely.
//
// Outcomes mirror SignUp.Submit: nil on success (password group cleared,
// fields back in sync with the session), ErrValidation when field errors
// are set (locally, or mapped from EMAIL_ALREADY_TAKEN /
// CURRENT_PASSWORD_NOT_MATCH), ErrSubmitInFlight on re-entry, and any
// other error surfaces generically with field errors untouched.
func (f *ProfileEdit) Submit(ctx context.Context) error {
	if f.state == Submitting {
		return ErrSubmitInFlight
	}

	f.errors.Name = validation.ValidateName(f.name)
	f.errors.Email = validation.ValidateEmail(f.email)
	f.validatePasswords()
	if !f.errors.Empty() {
		return ErrValidation
	}

	f.state = Submitting
	defer func() { f.state = Editing }()

	err := f.session.EditProfile(ctx, api.UpdateUserRequest{
		Name:            f.name,
		Email:           f.email,
		CurrentPassword: f.currentPassword,
		NewPassword:     f.newPassword,
		ConfirmPassword: f.confirmPassword,
	})
	if err != nil {
		switch api.ErrorCode(err) {
		case api.CodeEmailAlreadyTaken:
			f.errors.Email = MsgEmailTaken
			return ErrValidation
		case api.CodeCurrentPasswordNotMatch:
			f.errors.Password = []string{MsgCurrentPasswordNoMatch}
			return ErrValidation
		}
		return err
	}

	f.currentPassword = ""
	f.newPassword = ""
	f.confirmPassword = ""
	// The submitted values are the session's values now; start following
	// external changes again.
	clear(f.dirty)
	return nil
}
