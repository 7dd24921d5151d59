// Package validation contains the pure checks shared by the sign-up and
// profile-edit forms: the password policy evaluator and the single-field
// validators for name and email. Nothing here touches the network or any
// state; the forms decide when a check runs and where its message lands.
package validation

import "strings"

// Password policy messages, in rule declaration order. The evaluator
// reports them verbatim; forms render them as the password violation list.
const (
	MsgPasswordMismatch    = "The confirmation password does not match."
	MsgPasswordTooShort    = "Your password must be at least six characters long."
	MsgPasswordTooLong     = "Your password cannot be longer than 50 characters."
	MsgPasswordNeedsDigit  = "Your password must contain at least one digit."
	MsgPasswordNeedsLetter = "Your password must contain at least one letter."
	MsgPasswordNeedsSymbol = "Your password must contain at least one symbol in this list !@#$%^&*()=+_- or a space."
)

// passwordSymbols is the accepted symbol set, plus the space character.
const passwordSymbols = "!@#$%^&*() =+_-"

// PasswordResult is the outcome of evaluating a candidate password against
// the full policy. Violations preserves rule declaration order.
type PasswordResult struct {
	Valid      bool
	Violations []string
}

// passwordRule is a named predicate over the candidate password. failed
// reports whether the rule is violated.
type passwordRule struct {
	message string
	failed  func(password string) bool
}

// passwordRules are evaluated in declaration order. Every rule is checked;
// violations accumulate, none short-circuits.
var passwordRules = []passwordRule{
	{
		message: MsgPasswordTooShort,
		failed:  func(p string) bool { return len(p) < 6 },
	},
	{
		message: MsgPasswordTooLong,
		failed:  func(p string) bool { return len(p) > 50 },
	},
	{
		message: MsgPasswordNeedsDigit,
		failed:  func(p string) bool { return !strings.ContainsAny(p, "0123456789") },
	},
	{
		message: MsgPasswordNeedsLetter,
		failed: func(p string) bool {
			return !strings.ContainsFunc(p, func(r rune) bool {
				return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			})
		},
	},
	{
		message: MsgPasswordNeedsSymbol,
		failed:  func(p string) bool { return !strings.ContainsAny(p, passwordSymbols) },
	},
}

// EvaluatePassword checks password against the full policy, including the
// confirmation match. The mismatch rule comes first in the violation list,
// followed by the remaining rules in declaration order.
//
// There is no "both fields empty" short-circuit here: an empty pair
// simply fails the length, digit, letter and symbol rules. Forms that
// treat an empty pair specially (the sign-up form) substitute their own
// message before calling this.
func EvaluatePassword(password, confirmPassword string) PasswordResult {
	var violations []string

	if password != confirmPassword {
		violations = append(violations, MsgPasswordMismatch)
	}

	for _, rule := range passwordRules {
		if rule.failed(password) {
			violations = append(violations, rule.message)
		}
	}

	return PasswordResult{Valid: len(violations) == 0, Violations: violations}
}
