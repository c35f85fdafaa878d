// Package step declares the three wizard steps: which fields each owns, the
// rules those fields are checked against, and the values shown when a step
// is (re)entered.
package step

import (
	"maps"

	"github.com/mark3labs/onboardr/internal/validate"
)

// Field names a single input. The string form is the key used in the
// submitted record.
type Field string

const (
	EmailID     Field = "emailId"
	Password    Field = "password"
	FirstName   Field = "firstName"
	LastName    Field = "lastName"
	Address     Field = "address"
	CountryCode Field = "countryCode"
	PhoneNumber Field = "phoneNumber"
	AcceptTerms Field = "acceptTermsAndCondition"
)

// RecordFields lists every persisted field in display order.
var RecordFields = []Field{
	EmailID,
	Password,
	FirstName,
	LastName,
	Address,
	CountryCode,
	PhoneNumber,
}

// Kind tells the presentation layer which widget a field needs.
type Kind int

const (
	KindText   Kind = iota // Free text
	KindSecret             // Free text, masked on screen
	KindChoice             // One of Options
	KindCheck              // Boolean checkbox
)

// Option is a selectable value for a KindChoice field.
type Option struct {
	Value string
	Label string
}

// FieldSpec declares one field of a step.
type FieldSpec struct {
	Name  Field
	Label string
	Kind  Kind

	// Required fields report RequiredMessage when empty (or unchecked for
	// KindCheck). Optional fields skip Rules entirely when empty.
	Required        bool
	RequiredMessage string

	// Persist is false for gate fields that must never reach the record.
	Persist bool

	Rules   []validate.Rule
	Options []Option
}

// check validates a text value. Required-ness is checked before any rule.
func (f FieldSpec) check(v string) (string, bool) {
	if v == "" {
		if f.Required {
			return f.RequiredMessage, false
		}
		return "", true
	}
	return validate.First(v, f.Rules...)
}

// checkBox validates a checkbox value.
func (f FieldSpec) checkBox(checked bool) (string, bool) {
	if f.Required && !checked {
		return f.RequiredMessage, false
	}
	return "", true
}

// Values carries the raw inputs of one step as entered by the user.
type Values struct {
	Text   map[Field]string
	Checks map[Field]bool
}

// Get returns the text value of f, or "" when unset.
func (v Values) Get(f Field) string {
	return v.Text[f]
}

// Checked returns the checkbox value of f, or false when unset.
func (v Values) Checked(f Field) bool {
	return v.Checks[f]
}

// Clone returns a deep copy of v.
func (v Values) Clone() Values {
	return Values{
		Text:   maps.Clone(v.Text),
		Checks: maps.Clone(v.Checks),
	}
}

// FieldError is a single field failing its rules.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Result is the outcome of validating one step.
type Result struct {
	Errors []FieldError
	Valid  bool
}

// Message returns the error message for f, or "" if f passed.
func (r Result) Message(f Field) string {
	for _, e := range r.Errors {
		if e.Field == f {
			return e.Message
		}
	}
	return ""
}

// Map returns the errors keyed by field.
func (r Result) Map() map[Field]string {
	m := make(map[Field]string, len(r.Errors))
	for _, e := range r.Errors {
		m[e.Field] = e.Message
	}
	return m
}
