package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.com", true},
		{"john.doe@example.org", true},
		{"bad", false},
		{"", false},
		{"a@", false},
		{"@b.com", false},
		{"a b@c.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailValid(tt.input))
		})
	}
}

func TestPasswordRules_FirstFailureOnly(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantOK  bool
	}{
		{"strong", "Aa1!Aa1!", "", true},
		{"all classes missing reports lowercase", "", "Password must contain at least 2 lowercase letters", false},
		{"one lowercase is not enough", "aBB11!!", "Password must contain at least 2 lowercase letters", false},
		{"missing uppercase", "ab11!!", "Password must contain at least 2 uppercase letters", false},
		{"missing digits", "abAB!!", "Password must contain at least 2 numbers", false},
		{"missing specials", "abAB12", "Password must contain at least 2 special characters", false},
		{"special outside set does not count", "abAB12()", "Password must contain at least 2 special characters", false},
		{"weak stops at uppercase", "weak", "Password must contain at least 2 uppercase letters", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := First(tt.input, PasswordRules()...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantOK, PasswordStrength(tt.input))
		})
	}
}

func TestAlphaOnly(t *testing.T) {
	assert.True(t, AlphaOnly("Jo"))
	assert.True(t, AlphaOnly("Smith"))
	assert.False(t, AlphaOnly(""))
	assert.False(t, AlphaOnly("Jo3"))
	assert.False(t, AlphaOnly("Mary Ann"))
	assert.False(t, AlphaOnly("O'Brien"))
}

func TestDigits10(t *testing.T) {
	assert.True(t, Digits10("1234567890"))
	assert.False(t, Digits10("123456789"))
	assert.False(t, Digits10("12345678901"))
	assert.False(t, Digits10("12345abcde"))
	assert.False(t, Digits10("-123456789"))
	assert.False(t, Digits10(""))
}

func TestLengthChecks(t *testing.T) {
	assert.False(t, NonEmptyMin("", 0), "empty never passes")
	assert.False(t, NonEmptyMin("123", 10))
	assert.True(t, NonEmptyMin("1 Main St.", 10))
	assert.True(t, MaxLen(strings.Repeat("a", 50), 50))
	assert.False(t, MaxLen(strings.Repeat("a", 51), 50))
}

func TestOneOf(t *testing.T) {
	set := []string{"+91", "+1"}
	assert.True(t, OneOf("+91", set))
	assert.True(t, OneOf("+1", set))
	assert.False(t, OneOf("+44", set))
	assert.False(t, OneOf("", set))
}

func TestFirst_NoRules(t *testing.T) {
	msg, ok := First("anything")
	assert.True(t, ok)
	assert.Empty(t, msg)
}
