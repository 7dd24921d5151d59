package cli

import (
	"context"
	"fmt"
)

// Users prints every account known to the service.
func (a *App) Users(ctx context.Context) error {
	users, err := a.session.ListUsers(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	if len(users) == 0 {
		printlnFn("No users found")
		return nil
	}
	for _, user := range users {
		printlnFn(fmt.Sprintf("%s\t%s\t%s", user.ID, user.Name, user.Email))
	}
	return nil
}
