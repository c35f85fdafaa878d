// Package validate holds the field-level checks shared by every wizard step.
// All functions are pure; none of them return errors.
package validate

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// specialChars is the set counted by the special-character password rule.
const specialChars = "!@#$%^&*"

// minPerClass is how many characters of each class a password needs.
const minPerClass = 2

var v = validator.New()

// Rule is one check in an ordered chain. Test reports whether the value passes;
// Message is what the user sees when it does not.
type Rule struct {
	Message string
	Test    func(string) bool
}

// First runs rules in order and returns the message of the first rule that
// fails. ok is true when every rule passes.
func First(s string, rules ...Rule) (msg string, ok bool) {
	for _, r := range rules {
		if !r.Test(s) {
			return r.Message, false
		}
	}
	return "", true
}

// EmailValid reports whether s is a syntactically valid email address.
func EmailValid(s string) bool {
	return v.Var(s, "email") == nil
}

// AlphaOnly reports whether s is non-empty and made of ASCII letters only.
func AlphaOnly(s string) bool {
	return v.Var(s, "alpha") == nil
}

// Digits10 reports whether s is exactly ten ASCII digits.
func Digits10(s string) bool {
	return v.Var(s, "len=10,number") == nil
}

// NonEmptyMin reports whether s is non-empty and at least n characters long.
func NonEmptyMin(s string, n int) bool {
	count := utf8.RuneCountInString(s)
	return count > 0 && count >= n
}

// MaxLen reports whether s is at most n characters long.
func MaxLen(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

// OneOf reports whether s is a member of set.
func OneOf(s string, set []string) bool {
	return slices.Contains(set, s)
}

// PasswordRules returns the four character-class rules in evaluation order.
func PasswordRules() []Rule {
	return []Rule{
		{
			Message: "Password must contain at least 2 lowercase letters",
			Test:    func(s string) bool { return countIn(s, isLower) >= minPerClass },
		},
		{
			Message: "Password must contain at least 2 uppercase letters",
			Test:    func(s string) bool { return countIn(s, isUpper) >= minPerClass },
		},
		{
			Message: "Password must contain at least 2 numbers",
			Test:    func(s string) bool { return countIn(s, isDigit) >= minPerClass },
		},
		{
			Message: "Password must contain at least 2 special characters",
			Test:    func(s string) bool { return countIn(s, isSpecial) >= minPerClass },
		},
	}
}

// PasswordStrength reports whether s satisfies all four class rules.
func PasswordStrength(s string) bool {
	_, ok := First(s, PasswordRules()...)
	return ok
}

func countIn(s string, class func(rune) bool) int {
	n := 0
	for _, r := range s {
		if class(r) {
			n++
		}
	}
	return n
}

func isLower(r rune) bool   { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool   { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool   { return r >= '0' && r <= '9' }
func isSpecial(r rune) bool { return strings.ContainsRune(specialChars, r) }
