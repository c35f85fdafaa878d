package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/onboardr/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill sets a field's widget directly, bypassing key events.
func fill(t *testing.T, f *FormStep, name step.Field, value string) {
	t.Helper()
	for _, ff := range f.fields {
		if ff.spec.Name != name {
			continue
		}
		switch ff.spec.Kind {
		case step.KindChoice:
			ff.choice = -1
			for i, o := range ff.spec.Options {
				if o.Value == value {
					ff.choice = i
				}
			}
		case step.KindCheck:
			ff.checked = value != ""
		default:
			ff.input.SetValue(value)
		}
		return
	}
	t.Fatalf("field %s not on step %d", name, f.step.Index)
}

func TestFormStep_DefaultsPrefill(t *testing.T) {
	s := step.Contact(nil)
	defaults := step.Values{
		Text: map[step.Field]string{
			step.CountryCode: "+1",
			step.PhoneNumber: "2025550123",
		},
		Checks: map[step.Field]bool{step.AcceptTerms: false},
	}

	f := NewFormStep(s, defaults)
	v := f.Values()

	assert.Equal(t, "+1", v.Get(step.CountryCode))
	assert.Equal(t, "2025550123", v.Get(step.PhoneNumber))
	assert.False(t, v.Checked(step.AcceptTerms))
	assert.Equal(t, s.Index, f.Step().Index)
}

func TestFormStep_EmptyChoiceHasNoValue(t *testing.T) {
	f := NewFormStep(step.Contact(nil), step.Values{})
	assert.Equal(t, "", f.Values().Get(step.CountryCode))
	assert.Contains(t, f.View(nil), "Select country code")
}

func TestFormStep_TabCyclesAndExits(t *testing.T) {
	f := NewFormStep(step.Credentials(), step.Values{})
	f.Focus()
	require.Equal(t, step.EmailID, f.Focused())

	f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, step.Password, f.Focused())

	cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.IsType(t, TabExitForwardMsg{}, cmd())
	assert.Equal(t, step.Password, f.Focused(), "focus stays on the last field")

	f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, step.EmailID, f.Focused())

	cmd = f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.NotNil(t, cmd)
	assert.IsType(t, TabExitBackwardMsg{}, cmd())
}

func TestFormStep_EnterSubmits(t *testing.T) {
	f := NewFormStep(step.Credentials(), step.Values{})
	f.Focus()

	cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, SubmitFormMsg{}, cmd())
}

func TestFormStep_ChoiceCycles(t *testing.T) {
	f := NewFormStep(step.Contact(nil), step.Values{})
	f.Focus()
	require.Equal(t, step.CountryCode, f.Focused())

	f.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, "+91", f.Values().Get(step.CountryCode))

	f.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, "+1", f.Values().Get(step.CountryCode))

	f.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, "+91", f.Values().Get(step.CountryCode), "wraps around")

	f.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, "+1", f.Values().Get(step.CountryCode))
}

func TestFormStep_CheckboxToggles(t *testing.T) {
	f := NewFormStep(step.Contact(nil), step.Values{})
	f.FocusLast()
	require.Equal(t, step.AcceptTerms, f.Focused())

	f.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.True(t, f.Values().Checked(step.AcceptTerms))
	assert.Contains(t, f.View(nil), "[x] Accept Terms and Conditions")

	f.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.False(t, f.Values().Checked(step.AcceptTerms))
}

func TestFormStep_TypingReachesFocusedInput(t *testing.T) {
	f := NewFormStep(step.Identity(), step.Values{})
	f.Focus()

	f.Update(tea.KeyPressMsg{Code: 'J', Text: "J"})
	f.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})

	assert.Equal(t, "Jo", f.Values().Get(step.FirstName))
	assert.Equal(t, "", f.Values().Get(step.LastName))
}

func TestFormStep_PasswordIsMasked(t *testing.T) {
	f := NewFormStep(step.Credentials(), step.Values{})
	fill(t, f, step.Password, "aaBB11!!")

	assert.Equal(t, "aaBB11!!", f.Values().Get(step.Password))
	assert.NotContains(t, f.View(nil), "aaBB11!!")
}

func TestFormStep_ViewShowsErrors(t *testing.T) {
	f := NewFormStep(step.Credentials(), step.Values{})
	view := f.View(map[step.Field]string{step.EmailID: "Email is required"})

	assert.Contains(t, view, "Email is required")
	assert.Contains(t, view, "Password *")
}
