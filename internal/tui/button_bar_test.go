package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonBar_FocusSkipsDisabled(t *testing.T) {
	bar := NewButtonBar([]Button{
		{ID: ButtonBack, Label: "← Back", State: ButtonDisabled},
		{ID: ButtonSave, Label: "Save", State: ButtonNormal},
		{ID: ButtonNext, Label: "Save and Next", State: ButtonNormal},
	})
	assert.False(t, bar.IsFocused())

	require.True(t, bar.FocusFirst())
	btn, ok := bar.FocusedButton()
	require.True(t, ok)
	assert.Equal(t, ButtonSave, btn.ID)

	assert.False(t, bar.FocusPrev(), "nothing enabled to the left")
	btn, _ = bar.FocusedButton()
	assert.Equal(t, ButtonSave, btn.ID)

	require.True(t, bar.FocusNext())
	assert.False(t, bar.FocusNext())

	require.True(t, bar.FocusLast())
	btn, _ = bar.FocusedButton()
	assert.Equal(t, ButtonNext, btn.ID)

	bar.Blur()
	_, ok = bar.FocusedButton()
	assert.False(t, ok)
}

func TestButtonBar_ButtonsReportFocus(t *testing.T) {
	bar := NewButtonBar([]Button{
		{ID: ButtonDismiss, Label: "Back", State: ButtonNormal},
		{ID: ButtonConfirm, Label: "Confirm and Submit", State: ButtonNormal},
	})
	bar.FocusLast()

	buttons := bar.Buttons()
	assert.Equal(t, ButtonNormal, buttons[0].State)
	assert.Equal(t, ButtonFocused, buttons[1].State)
}

func TestButtonBar_Render(t *testing.T) {
	assert.Empty(t, NewButtonBar(nil).Render())

	bar := NewButtonBar([]Button{
		{ID: ButtonSave, Label: "Save", State: ButtonNormal},
		{ID: ButtonNext, Label: "Save and Next", State: ButtonDisabled},
	})
	bar.SetWidth(40)
	out := bar.Render()
	assert.Contains(t, out, "Save")
	assert.Contains(t, out, "Save and Next")
}

func TestRenderHintBar(t *testing.T) {
	assert.Empty(t, renderHintBar())
	assert.Empty(t, renderHintBar("odd"))

	out := renderHintBar("tab", "next field", "enter", "save and next")
	assert.Contains(t, out, "tab")
	assert.Contains(t, out, "save and next")
	assert.Contains(t, out, "•")
}
