package api

import (
	"errors"
	"fmt"
)

// Error codes the account service puts in rejection bodies. Forms map
// these onto field-level errors; everything else is surfaced generically.
const (
	CodeEmailAlreadyTaken       = "EMAIL_ALREADY_TAKEN"
	CodeCurrentPasswordNotMatch = "CURRENT_PASSWORD_NOT_MATCH"
)

var (
	// ErrNotAuthenticated is raised locally when an operation that needs a
	// token is attempted without one. No request leaves the process.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnavailable wraps transport-level failures: connection refused,
	// DNS errors, request timeout.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is a non-2xx rejection decoded from the service response body.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("account service: %s (status %d)", e.Code, e.Status)
	}
	if e.Message != "" {
		return fmt.Sprintf("account service: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("account service: status %d", e.Status)
}

// ErrorCode extracts the service error code from err, or "" when err is
// not a service rejection (or carries no code).
func ErrorCode(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}
