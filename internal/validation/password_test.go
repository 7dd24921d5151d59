package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePassword_Valid(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"letters digits symbol", "abc123!"},
		{"space counts as symbol", "abc 123"},
		{"underscore symbol", "secret_1"},
		{"exactly six chars", "a1@xyz"},
		{"exactly fifty chars", strings.Repeat("a1!", 16) + "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluatePassword(tt.password, tt.password)
			assert.True(t, res.Valid)
			assert.Empty(t, res.Violations)
		})
	}
}

func TestEvaluatePassword_SingleViolations(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		want     string
	}{
		{"mismatch only", "abc123!", "xyz", MsgPasswordMismatch},
		{"too short", "a1!", "a1!", MsgPasswordTooShort},
		{"too long", strings.Repeat("a1!", 17), strings.Repeat("a1!", 17), MsgPasswordTooLong},
		{"no digit", "abcdef!", "abcdef!", MsgPasswordNeedsDigit},
		{"no letter", "123456!", "123456!", MsgPasswordNeedsLetter},
		{"no symbol", "abc1234", "abc1234", MsgPasswordNeedsSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluatePassword(tt.password, tt.confirm)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{tt.want}, res.Violations)
		})
	}
}

func TestEvaluatePassword_AccumulatesInRuleOrder(t *testing.T) {
	// "@" fails length, digit and letter while the confirmation differs:
	// every violated rule must show up, mismatch first.
	res := EvaluatePassword("@", "other")
	require.False(t, res.Valid)
	assert.Equal(t, []string{
		MsgPasswordMismatch,
		MsgPasswordTooShort,
		MsgPasswordNeedsDigit,
		MsgPasswordNeedsLetter,
	}, res.Violations)
}

func TestEvaluatePassword_EmptyPair(t *testing.T) {
	// The evaluator itself has no empty-pair special case: an empty
	// password just fails the content rules. The sign-up form substitutes
	// its own single message before ever calling this.
	res := EvaluatePassword("", "")
	require.False(t, res.Valid)
	assert.Equal(t, []string{
		MsgPasswordTooShort,
		MsgPasswordNeedsDigit,
		MsgPasswordNeedsLetter,
		MsgPasswordNeedsSymbol,
	}, res.Violations)
}

func TestEvaluatePassword_MinLengthBoundary(t *testing.T) {
	for _, p := range []string{"", "a", "a1!", "a1!x2"} {
		res := EvaluatePassword(p, p)
		assert.Contains(t, res.Violations, MsgPasswordTooShort, "password %q", p)
	}
	res := EvaluatePassword("a1!x2z", "a1!x2z")
	assert.NotContains(t, res.Violations, MsgPasswordTooShort)
}
