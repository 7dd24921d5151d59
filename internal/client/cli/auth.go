package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/forms"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used
// to facilitate testing. They point to interactive input helpers and can
// be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// SignUp walks the user through the sign-up form: one prompt per field,
// then submit. Field errors are printed and the command returns without
// registering; the user can run signup again.
func (a *App) SignUp(ctx context.Context) error {
	form := forms.NewSignUp(a.session)

	name, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldName, name)

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldEmail, email)

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldPassword, password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldConfirmPassword, confirm)

	switch err := form.Submit(ctx); {
	case err == nil:
		printlnFn("Account created. You can now log in.")
		return nil
	case errors.Is(err, forms.ErrValidation):
		a.printFormErrors(form.Errors())
		return err
	default:
		printlnFn("Sign-up failed: " + err.Error())
		return err
	}
}

// Login prompts for credentials, authenticates, and fetches the profile
// so the prompt can greet the user by name.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Authenticate(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server unavailable, please try again later.")
		} else {
			printlnFn("Login unsuccessful: " + err.Error())
		}
		return err
	}

	if err := a.session.FetchProfile(ctx); err != nil {
		// Logged in, profile fetch failed: not fatal, whoami can retry.
		a.log.Warn(ctx, "profile fetch after login failed", "error", err)
	}

	printlnFn("Login successful")
	return nil
}

// Logout clears the session. It is purely local and always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
