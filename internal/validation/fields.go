package validation

import "regexp"

// Field validator messages.
const (
	MsgNameRequired   = "Full Name is required."
	MsgEmailRequired  = "Email address is required."
	MsgEmailBadFormat = "Invalid Email Address format."
)

// emailPattern is a permissive, lowercase-ASCII shape check. It exists
// as a typing hint only; the server performs the authoritative
// validation. Do not tighten it here, the server accepts addresses this
// pattern would reject.
var emailPattern = regexp.MustCompile(`[a-z0-9]+@[a-z]+\.[a-z]{1,3}`)

// ValidateName returns an error message for the name field, or "" when valid.
func ValidateName(name string) string {
	if name == "" {
		return MsgNameRequired
	}
	return ""
}

// ValidateEmail returns an error message for the email field, or "" when valid.
func ValidateEmail(email string) string {
	if email == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return MsgEmailBadFormat
	}
	return ""
}
