package step

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(kv map[Field]string) Values {
	return Values{Text: kv}
}

func TestCredentials_Validate(t *testing.T) {
	s := Credentials()

	tests := []struct {
		name       string
		values     Values
		wantValid  bool
		wantErrors map[Field]string
	}{
		{
			name:      "valid",
			values:    text(map[Field]string{EmailID: "a@b.com", Password: "Aa1!Aa1!"}),
			wantValid: true,
		},
		{
			name:   "both invalid",
			values: text(map[Field]string{EmailID: "bad", Password: "weak"}),
			wantErrors: map[Field]string{
				EmailID:  "Please enter a valid email",
				Password: "Password must contain at least 2 uppercase letters",
			},
		},
		{
			name:   "both empty report required",
			values: Values{},
			wantErrors: map[Field]string{
				EmailID:  "Email is required",
				Password: "Password is required",
			},
		},
		{
			name:   "whitespace is not empty",
			values: text(map[Field]string{EmailID: "   ", Password: "  "}),
			wantErrors: map[Field]string{
				EmailID:  "Please enter a valid email",
				Password: "Password must contain at least 2 lowercase letters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Validate(tt.values)
			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantValid {
				assert.Empty(t, res.Errors)
				return
			}
			assert.Equal(t, tt.wantErrors, res.Map())
		})
	}
}

func TestIdentity_Validate(t *testing.T) {
	s := Identity()

	tests := []struct {
		name       string
		values     map[Field]string
		wantErrors map[Field]string
	}{
		{
			name:   "valid without last name",
			values: map[Field]string{FirstName: "Jo", LastName: "", Address: "221B Baker Street"},
		},
		{
			name:   "valid with last name",
			values: map[Field]string{FirstName: "Jo", LastName: "March", Address: "221B Baker Street"},
		},
		{
			name:   "first name alpha check precedes length",
			values: map[Field]string{FirstName: "J1", Address: "221B Baker Street"},
			wantErrors: map[Field]string{
				FirstName: "Only alphabets are allowed for first name",
			},
		},
		{
			name:   "first name too short",
			values: map[Field]string{FirstName: "J", Address: "221B Baker Street"},
			wantErrors: map[Field]string{
				FirstName: "First name must be at least 2 characters",
			},
		},
		{
			name:   "first name too long",
			values: map[Field]string{FirstName: strings.Repeat("a", 51), Address: "221B Baker Street"},
			wantErrors: map[Field]string{
				FirstName: "First name must not exceed 50 characters",
			},
		},
		{
			name:   "bad last name and short address",
			values: map[Field]string{FirstName: "Jo", LastName: "M4rch", Address: "123"},
			wantErrors: map[Field]string{
				LastName: "Only alphabets are allowed for last name",
				Address:  "Address must be at least 10 characters",
			},
		},
		{
			name:   "missing required",
			values: map[Field]string{},
			wantErrors: map[Field]string{
				FirstName: "First name is required",
				Address:   "Address is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Validate(text(tt.values))
			assert.Equal(t, len(tt.wantErrors) == 0, res.Valid)
			if len(tt.wantErrors) == 0 {
				assert.Empty(t, res.Errors)
				return
			}
			assert.Equal(t, tt.wantErrors, res.Map())
		})
	}
}

func TestContact_Validate(t *testing.T) {
	s := Contact(nil)

	valid := Values{
		Text:   map[Field]string{CountryCode: "+91", PhoneNumber: "1234567890"},
		Checks: map[Field]bool{AcceptTerms: true},
	}
	assert.True(t, s.Validate(valid).Valid)

	badCode := valid.Clone()
	badCode.Text[CountryCode] = "+44"
	res := s.Validate(badCode)
	assert.False(t, res.Valid)
	assert.Equal(t, "Invalid country code", res.Message(CountryCode))

	noTerms := valid.Clone()
	noTerms.Checks[AcceptTerms] = false
	res = s.Validate(noTerms)
	assert.False(t, res.Valid)
	assert.Equal(t, "You must accept the terms and conditions", res.Message(AcceptTerms))

	res = s.Validate(Values{})
	assert.Equal(t, map[Field]string{
		CountryCode: "Country code is required",
		PhoneNumber: "Phone number is required",
		AcceptTerms: "You must accept the terms and conditions",
	}, res.Map())

	shortPhone := valid.Clone()
	shortPhone.Text[PhoneNumber] = "12345"
	assert.Equal(t, "Phone number must be 10 digits", s.Validate(shortPhone).Message(PhoneNumber))
}

func TestContact_ConfiguredCodes(t *testing.T) {
	s := Contact([]Option{{Value: "+44", Label: "+44 United Kingdom"}})

	v := Values{
		Text:   map[Field]string{CountryCode: "+44", PhoneNumber: "1234567890"},
		Checks: map[Field]bool{AcceptTerms: true},
	}
	assert.True(t, s.Validate(v).Valid)

	v.Text[CountryCode] = "+91"
	assert.False(t, s.Validate(v).Valid)

	spec, ok := s.Field(CountryCode)
	require.True(t, ok)
	assert.Equal(t, "+44 United Kingdom", spec.Options[0].Label)
}

func TestDefaults(t *testing.T) {
	rec := Record{EmailID: "a@b.com", FirstName: "Jo"}

	creds := Credentials().Defaults(rec)
	assert.Equal(t, map[Field]string{EmailID: "a@b.com", Password: ""}, creds.Text)

	ident := Identity().Defaults(rec)
	assert.Equal(t, map[Field]string{FirstName: "Jo", LastName: "", Address: ""}, ident.Text)

	contact := Contact(nil).Defaults(nil)
	assert.Equal(t, map[Field]string{CountryCode: "", PhoneNumber: ""}, contact.Text)
	assert.Equal(t, map[Field]bool{AcceptTerms: false}, contact.Checks)
}

func TestPersisted_StripsTermsAndKeepsOwnedFields(t *testing.T) {
	v := Values{
		Text: map[Field]string{
			CountryCode: "+91",
			PhoneNumber: "1234567890",
			EmailID:     "intruder@example.com",
		},
		Checks: map[Field]bool{AcceptTerms: true},
	}

	got := Contact(nil).Persisted(v)

	assert.Equal(t, Record{CountryCode: "+91", PhoneNumber: "1234567890"}, got)
	_, hasTerms := got.Get(AcceptTerms)
	assert.False(t, hasTerms)
}

func TestPersisted_PartialValuesDoNotBlank(t *testing.T) {
	got := Identity().Persisted(text(map[Field]string{FirstName: "Jo"}))
	assert.Equal(t, Record{FirstName: "Jo"}, got)
}

func TestAccepted_FillsOmittedFields(t *testing.T) {
	got := Identity().Accepted(text(map[Field]string{FirstName: "Jo", Address: "221B Baker Street"}))
	assert.Equal(t, Record{FirstName: "Jo", LastName: "", Address: "221B Baker Street"}, got)

	got = Contact(nil).Accepted(Values{Checks: map[Field]bool{AcceptTerms: true}})
	assert.Equal(t, Record{CountryCode: "", PhoneNumber: ""}, got)
}

func TestOwns(t *testing.T) {
	assert.True(t, Credentials().Owns(Password))
	assert.False(t, Credentials().Owns(Address))
	assert.True(t, Contact(nil).Owns(AcceptTerms))
}

func TestSteps_Order(t *testing.T) {
	steps := Steps(nil)
	require.Len(t, steps, Count)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Index)
	}
}
