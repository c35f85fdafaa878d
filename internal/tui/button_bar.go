package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies what a button does when pressed.
type ButtonID int

const (
	ButtonBack ButtonID = iota
	ButtonSave
	ButtonNext
	ButtonConfirm
	ButtonDismiss
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// Enabled reports whether the button can be pressed.
func (b Button) Enabled() bool {
	return b.State != ButtonDisabled
}

// ButtonBar manages a set of buttons with consistent styling and a focus
// cursor that skips disabled buttons.
type ButtonBar struct {
	buttons []Button
	focus   int // -1 when nothing is focused
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the buttons with their current states.
func (b *ButtonBar) Buttons() []Button {
	out := make([]Button, len(b.buttons))
	for i, btn := range b.buttons {
		if i == b.focus && btn.Enabled() {
			btn.State = ButtonFocused
		}
		out[i] = btn
	}
	return out
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	b.focus = -1
	return b.FocusNext()
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	b.focus = len(b.buttons)
	return b.FocusPrev()
}

// FocusNext moves focus right. Returns false when there is no enabled
// button to the right; focus is unchanged in that case.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focus + 1; i < len(b.buttons); i++ {
		if b.buttons[i].Enabled() {
			b.focus = i
			return true
		}
	}
	return false
}

// FocusPrev moves focus left. Returns false when there is no enabled
// button to the left.
func (b *ButtonBar) FocusPrev() bool {
	for i := b.focus - 1; i >= 0; i-- {
		if b.buttons[i].Enabled() {
			b.focus = i
			return true
		}
	}
	return false
}

// Blur clears focus.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

// IsFocused reports whether any button has focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focus >= 0 && b.focus < len(b.buttons)
}

// FocusedButton returns the focused button. ok is false if none is.
func (b *ButtonBar) FocusedButton() (btn Button, ok bool) {
	if !b.IsFocused() {
		return Button{}, false
	}
	return b.buttons[b.focus], true
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	normalStyle := lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface0).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(colorOverlay0).
		Background(colorMantle).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(colorBase).
		Background(colorSecondary).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var rendered []string
	for _, btn := range b.Buttons() {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

func stateFor(enabled bool) ButtonState {
	if enabled {
		return ButtonNormal
	}
	return ButtonDisabled
}
