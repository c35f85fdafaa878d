package step

import (
	"github.com/mark3labs/onboardr/internal/validate"
)

// Step indexes.
const (
	IndexCredentials = 1
	IndexIdentity    = 2
	IndexContact     = 3
)

// Count is the number of data-entry steps.
const Count = 3

// DefaultCountryCodes are the dialing codes offered when none are configured.
func DefaultCountryCodes() []Option {
	return []Option{
		{Value: "+91", Label: "+91 India"},
		{Value: "+1", Label: "+1 America"},
	}
}

// Steps returns the wizard's steps in order. An empty codes slice falls back
// to DefaultCountryCodes.
func Steps(codes []Option) []Step {
	return []Step{Credentials(), Identity(), Contact(codes)}
}

// Credentials is step 1: login email and password.
func Credentials() Step {
	return Step{
		Index: IndexCredentials,
		Title: "Credentials",
		Fields: []FieldSpec{
			{
				Name:            EmailID,
				Label:           "Email",
				Kind:            KindText,
				Required:        true,
				RequiredMessage: "Email is required",
				Persist:         true,
				Rules: []validate.Rule{
					{Message: "Please enter a valid email", Test: validate.EmailValid},
				},
			},
			{
				Name:            Password,
				Label:           "Password",
				Kind:            KindSecret,
				Required:        true,
				RequiredMessage: "Password is required",
				Persist:         true,
				Rules:           validate.PasswordRules(),
			},
		},
	}
}

// Identity is step 2: name and postal address. Last name is optional.
func Identity() Step {
	return Step{
		Index: IndexIdentity,
		Title: "Personal Details",
		Fields: []FieldSpec{
			{
				Name:            FirstName,
				Label:           "First Name",
				Kind:            KindText,
				Required:        true,
				RequiredMessage: "First name is required",
				Persist:         true,
				Rules: []validate.Rule{
					{Message: "Only alphabets are allowed for first name", Test: validate.AlphaOnly},
					{Message: "First name must be at least 2 characters", Test: minLen(2)},
					{Message: "First name must not exceed 50 characters", Test: maxLen(50)},
				},
			},
			{
				Name:    LastName,
				Label:   "Last Name",
				Kind:    KindText,
				Persist: true,
				Rules: []validate.Rule{
					{Message: "Only alphabets are allowed for last name", Test: validate.AlphaOnly},
				},
			},
			{
				Name:            Address,
				Label:           "Address",
				Kind:            KindText,
				Required:        true,
				RequiredMessage: "Address is required",
				Persist:         true,
				Rules: []validate.Rule{
					{Message: "Address must be at least 10 characters", Test: minLen(10)},
				},
			},
		},
	}
}

// Contact is step 3: phone number and the terms gate. The terms checkbox is
// validated but never persisted.
func Contact(codes []Option) Step {
	if len(codes) == 0 {
		codes = DefaultCountryCodes()
	}
	allowed := make([]string, 0, len(codes))
	for _, o := range codes {
		allowed = append(allowed, o.Value)
	}

	return Step{
		Index: IndexContact,
		Title: "Contact",
		Fields: []FieldSpec{
			{
				Name:            CountryCode,
				Label:           "Country Code",
				Kind:            KindChoice,
				Required:        true,
				RequiredMessage: "Country code is required",
				Persist:         true,
				Options:         codes,
				Rules: []validate.Rule{
					{Message: "Invalid country code", Test: func(s string) bool { return validate.OneOf(s, allowed) }},
				},
			},
			{
				Name:            PhoneNumber,
				Label:           "Phone Number",
				Kind:            KindText,
				Required:        true,
				RequiredMessage: "Phone number is required",
				Persist:         true,
				Rules: []validate.Rule{
					{Message: "Phone number must be 10 digits", Test: validate.Digits10},
				},
			},
			{
				Name:            AcceptTerms,
				Label:           "Accept Terms and Conditions",
				Kind:            KindCheck,
				Required:        true,
				RequiredMessage: "You must accept the terms and conditions",
				Persist:         false,
			},
		},
	}
}

func minLen(n int) func(string) bool {
	return func(s string) bool { return validate.NonEmptyMin(s, n) }
}

func maxLen(n int) func(string) bool {
	return func(s string) bool { return validate.MaxLen(s, n) }
}
