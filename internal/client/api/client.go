// Package api is the HTTP gateway to the remote account service. It is
// consumed by the session only; forms and the CLI never talk to it
// directly.
package api

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// RegisterRequest is the body of POST /user.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateUserRequest is the body of PATCH /user. The three password fields
// are optional: an empty value means "not changing the password" and the
// key must be omitted from the outgoing JSON entirely, never sent as "".
type UpdateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// Client defines the remote operations the session depends on.
//
// Contract:
//   - Login: exchange credentials for a bearer token.
//   - Register: create an account; does not log the user in.
//   - FetchUser: the authenticated user's profile.
//   - UpdateUser: patch the authenticated user's profile.
//   - DeleteUser: remove the authenticated user's account.
//   - ListUsers: all users (admin listing).
//
// All methods honor context cancellation and the configured request
// timeout. Transport failures match ErrUnavailable via errors.Is; service
// rejections are returned as *Error.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req RegisterRequest) error
	FetchUser(ctx context.Context, token string) (models.User, error)
	UpdateUser(ctx context.Context, token string, req UpdateUserRequest) error
	DeleteUser(ctx context.Context, token string) error
	ListUsers(ctx context.Context, token string) ([]models.User, error)
}
