package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/validation"
)

// fakeProfileSession implements ProfileSession and lets tests emit
// external user changes the way the real session does after a fetch.
type fakeProfileSession struct {
	user models.User
	subs []func(models.User)

	editErr error
	calls   int
	lastReq api.UpdateUserRequest

	// onEdit, when set, runs inside EditProfile.
	onEdit func()
}

func (f *fakeProfileSession) User() models.User { return f.user }

func (f *fakeProfileSession) OnUserChange(fn func(models.User)) {
	f.subs = append(f.subs, fn)
}

func (f *fakeProfileSession) EditProfile(ctx context.Context, req api.UpdateUserRequest) error {
	f.calls++
	f.lastReq = req
	if f.onEdit != nil {
		f.onEdit()
	}
	return f.editErr
}

func (f *fakeProfileSession) emitUserChange(u models.User) {
	f.user = u
	for _, fn := range f.subs {
		fn(u)
	}
}

func newProfileSession() *fakeProfileSession {
	return &fakeProfileSession{user: models.User{ID: "u1", Name: "Ada", Email: "ada@b.co"}}
}

func TestProfileEdit_SeedsFromSessionUser(t *testing.T) {
	f := NewProfileEdit(newProfileSession())

	assert.Equal(t, "Ada", f.Name())
	assert.Equal(t, "ada@b.co", f.Email())
	assert.True(t, f.Errors().Empty())
}

func TestProfileEdit_ReseedsPristineFieldsOnExternalChange(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	sess.emitUserChange(models.User{ID: "u1", Name: "Ada L.", Email: "ada@new.co"})

	assert.Equal(t, "Ada L.", f.Name())
	assert.Equal(t, "ada@new.co", f.Email())
}

func TestProfileEdit_NeverClobbersInFlightEdits(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	f.Set(FieldName, "My New Name")
	sess.emitUserChange(models.User{ID: "u1", Name: "Server Name", Email: "server@b.co"})

	// The edited name survives; the untouched email follows the session.
	assert.Equal(t, "My New Name", f.Name())
	assert.Equal(t, "server@b.co", f.Email())
}

func TestProfileEdit_RefreshDiscardsEdits(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	f.Set(FieldName, "Unsaved")
	f.Set(FieldNewPassword, "abc123!")
	f.Refresh()

	assert.Equal(t, "Ada", f.Name())
	assert.Equal(t, "", f.newPassword)
	assert.True(t, f.Errors().Empty())

	// After Refresh the fields are pristine again and follow the session.
	sess.emitUserChange(models.User{ID: "u1", Name: "Newer", Email: "ada@b.co"})
	assert.Equal(t, "Newer", f.Name())
}

func TestProfileEdit_EmptyPasswordGroupMeansNotChanging(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	require.NoError(t, f.Submit(context.Background()))

	// Empty password values ride along as "" and the gateway omits the
	// keys; no violation is raised, unlike sign-up.
	assert.Equal(t, "", sess.lastReq.CurrentPassword)
	assert.Equal(t, "", sess.lastReq.NewPassword)
	assert.Equal(t, "", sess.lastReq.ConfirmPassword)
}

func TestProfileEdit_PartialPasswordGroupNamesMissingPieces(t *testing.T) {
	tests := []struct {
		name string
		set  map[Field]string
		want []string
	}{
		{
			name: "only current",
			set:  map[Field]string{FieldCurrentPassword: "old123!"},
			want: []string{MsgNewPasswordRequired},
		},
		{
			name: "new without current",
			set:  map[Field]string{FieldNewPassword: "new123!", FieldConfirmPassword: "new123!"},
			want: []string{MsgCurrentPasswordRequired},
		},
		{
			name: "confirm only",
			set:  map[Field]string{FieldConfirmPassword: "new123!"},
			want: []string{
				MsgCurrentPasswordRequired,
				MsgNewPasswordRequired,
				validation.MsgPasswordMismatch,
				validation.MsgPasswordTooShort,
				validation.MsgPasswordNeedsDigit,
				validation.MsgPasswordNeedsLetter,
				validation.MsgPasswordNeedsSymbol,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewProfileEdit(newProfileSession())
			for field, value := range tt.set {
				f.Set(field, value)
			}
			assert.Equal(t, tt.want, f.Errors().Password)
		})
	}
}

func TestProfileEdit_FullPasswordChangeIsEvaluated(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	f.Set(FieldCurrentPassword, "old123!")
	f.Set(FieldNewPassword, "new123!")
	f.Set(FieldConfirmPassword, "different")
	assert.Equal(t, []string{validation.MsgPasswordMismatch}, f.Errors().Password)

	f.Set(FieldConfirmPassword, "new123!")
	assert.Empty(t, f.Errors().Password)

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, "old123!", sess.lastReq.CurrentPassword)
	assert.Equal(t, "new123!", sess.lastReq.NewPassword)

	// Passwords never survive a successful submit.
	assert.Equal(t, "", f.currentPassword)
	assert.Equal(t, "", f.newPassword)
	assert.Equal(t, "", f.confirmPassword)
}

func TestProfileEdit_SubmitAbortsLocallyWithoutNetworkCall(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)
	f.Set(FieldEmail, "broken")

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, validation.MsgEmailBadFormat, f.Errors().Email)
	assert.Equal(t, 0, sess.calls)
}

func TestProfileEdit_MapsKnownServerRejections(t *testing.T) {
	t.Run("email taken", func(t *testing.T) {
		sess := newProfileSession()
		sess.editErr = &api.Error{Status: 409, Code: api.CodeEmailAlreadyTaken}
		f := NewProfileEdit(sess)

		err := f.Submit(context.Background())
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, MsgEmailTaken, f.Errors().Email)
	})

	t.Run("current password mismatch", func(t *testing.T) {
		sess := newProfileSession()
		sess.editErr = &api.Error{Status: 400, Code: api.CodeCurrentPasswordNotMatch}
		f := NewProfileEdit(sess)
		f.Set(FieldCurrentPassword, "wrong12!")
		f.Set(FieldNewPassword, "new123!")
		f.Set(FieldConfirmPassword, "new123!")

		err := f.Submit(context.Background())
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, []string{MsgCurrentPasswordNoMatch}, f.Errors().Password)
		// The typed passwords stay for another attempt.
		assert.Equal(t, "wrong12!", f.currentPassword)
	})
}

func TestProfileEdit_SuccessfulSubmitResumesFollowingSession(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	f.Set(FieldName, "Edited")
	require.NoError(t, f.Submit(context.Background()))

	// Dirty flags were cleared: the next external change flows in again.
	sess.emitUserChange(models.User{ID: "u1", Name: "External", Email: "ada@b.co"})
	assert.Equal(t, "External", f.Name())
}

func TestProfileEdit_SubmitIsMutuallyExclusive(t *testing.T) {
	sess := newProfileSession()
	f := NewProfileEdit(sess)

	var reentrant error
	sess.onEdit = func() {
		reentrant = f.Submit(context.Background())
	}

	require.NoError(t, f.Submit(context.Background()))
	assert.ErrorIs(t, reentrant, ErrSubmitInFlight)
	assert.Equal(t, 1, sess.calls)
}
