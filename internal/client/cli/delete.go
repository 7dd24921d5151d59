package cli

import (
	"context"
	"os"
)

// Delete removes the account after an explicit confirmation. On success
// the session is logged out as part of the same operation; on failure it
// is left exactly as it was.
func (a *App) Delete(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Type 'yes' to delete your account permanently", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		printlnFn("There is a problem deleting your account.")
		return err
	}

	printlnFn("Account deleted")
	return nil
}
