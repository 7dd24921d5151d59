package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/client/forms"
)

// Whoami fetches the profile from the server and prints it.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.session.FetchProfile(ctx); err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	user := a.session.User()
	printlnFn(fmt.Sprintf("Name:  %s", user.Name))
	printlnFn(fmt.Sprintf("Email: %s", user.Email))
	return nil
}

// Edit walks the user through the profile-edit form. Name and email are
// pre-filled with the current values (Enter keeps them); the password
// prompts may all be left empty to keep the current password.
func (a *App) Edit(ctx context.Context) error {
	// Refresh first so the form seeds from the server's copy.
	if err := a.session.FetchProfile(ctx); err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	form := forms.NewProfileEdit(a.session)

	name, err := getTextWithDefault(a.reader, "Full name", form.Name(), os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldName, name)

	email, err := getTextWithDefault(a.reader, "Email", form.Email(), os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldEmail, email)

	current, err := getPassword("Current password (empty to keep your password)", os.Stdout)
	if err != nil {
		return err
	}
	form.Set(forms.FieldCurrentPassword, current)

	if current != "" {
		newPassword, err := getPassword("New password", os.Stdout)
		if err != nil {
			return err
		}
		form.Set(forms.FieldNewPassword, newPassword)

		confirm, err := getPassword("Confirm new password", os.Stdout)
		if err != nil {
			return err
		}
		form.Set(forms.FieldConfirmPassword, confirm)
	}

	switch err := form.Submit(ctx); {
	case err == nil:
		printlnFn("User info updated successfully!")
		return nil
	case errors.Is(err, forms.ErrValidation):
		a.printFormErrors(form.Errors())
		return err
	default:
		printlnFn("Update failed: " + err.Error())
		return err
	}
}
