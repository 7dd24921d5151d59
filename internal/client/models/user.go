// Package models holds the client-side data records shared by the API
// gateway, the session and the forms.
package models

// User is the profile record as the account service returns it. The
// password never appears here: the client sends it when registering or
// editing and forgets it immediately after.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsZero reports whether u carries no profile data at all.
func (u User) IsZero() bool {
	return u == User{}
}
