package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/onboardr/internal/step"
)

// formField is the widget behind one step.FieldSpec.
type formField struct {
	spec    step.FieldSpec
	input   textinput.Model // KindText and KindSecret
	choice  int             // KindChoice; -1 while nothing is selected
	checked bool            // KindCheck
}

func (f *formField) text() string {
	switch f.spec.Kind {
	case step.KindChoice:
		if f.choice < 0 || f.choice >= len(f.spec.Options) {
			return ""
		}
		return f.spec.Options[f.choice].Value
	case step.KindCheck:
		return ""
	default:
		return f.input.Value()
	}
}

func (f *formField) focus() tea.Cmd {
	if f.spec.Kind == step.KindText || f.spec.Kind == step.KindSecret {
		return f.input.Focus()
	}
	return nil
}

func (f *formField) blur() {
	if f.spec.Kind == step.KindText || f.spec.Kind == step.KindSecret {
		f.input.Blur()
	}
}

func (f *formField) cycle(delta int) {
	n := len(f.spec.Options)
	if n == 0 {
		return
	}
	if f.choice < 0 {
		if delta > 0 {
			f.choice = 0
		} else {
			f.choice = n - 1
		}
		return
	}
	f.choice = (f.choice + delta + n) % n
}

// FormStep renders the inputs of one wizard step.
type FormStep struct {
	step   step.Step
	fields []*formField
	focus  int
	width  int
}

// NewFormStep builds the widgets for s, pre-filled from defaults.
func NewFormStep(s step.Step, defaults step.Values) *FormStep {
	fs := &FormStep{step: s, width: 60}
	for _, spec := range s.Fields {
		f := &formField{spec: spec, choice: -1}
		switch spec.Kind {
		case step.KindChoice:
			val := defaults.Get(spec.Name)
			for i, o := range spec.Options {
				if o.Value == val {
					f.choice = i
					break
				}
			}
		case step.KindCheck:
			f.checked = defaults.Checked(spec.Name)
		default:
			ti := textinput.New()
			ti.Prompt = "> "
			ti.Placeholder = "Enter " + strings.ToLower(spec.Label) + "..."
			ti.SetStyles(inputStyles())
			ti.SetWidth(50)
			if spec.Kind == step.KindSecret {
				ti.EchoMode = textinput.EchoPassword
				ti.EchoCharacter = '•'
			}
			ti.SetValue(defaults.Get(spec.Name))
			f.input = ti
		}
		fs.fields = append(fs.fields, f)
	}
	return fs
}

// Step returns the step this form edits.
func (s *FormStep) Step() step.Step {
	return s.step
}

// Values returns what the user has entered so far.
func (s *FormStep) Values() step.Values {
	v := step.Values{
		Text:   make(map[step.Field]string, len(s.fields)),
		Checks: make(map[step.Field]bool),
	}
	for _, f := range s.fields {
		if f.spec.Kind == step.KindCheck {
			v.Checks[f.spec.Name] = f.checked
			continue
		}
		v.Text[f.spec.Name] = f.text()
	}
	return v
}

// Focused returns the field that has focus.
func (s *FormStep) Focused() step.Field {
	if len(s.fields) == 0 {
		return ""
	}
	return s.fields[s.focus].spec.Name
}

// Focus gives focus to the first field.
func (s *FormStep) Focus() tea.Cmd {
	return s.focusAt(0)
}

// FocusLast gives focus to the last field.
func (s *FormStep) FocusLast() tea.Cmd {
	return s.focusAt(len(s.fields) - 1)
}

// Blur removes focus from every field.
func (s *FormStep) Blur() {
	for _, f := range s.fields {
		f.blur()
	}
}

func (s *FormStep) focusAt(i int) tea.Cmd {
	if i < 0 || i >= len(s.fields) {
		return nil
	}
	s.Blur()
	s.focus = i
	return s.fields[i].focus()
}

// SetSize updates the dimensions for the form.
func (s *FormStep) SetSize(width, _ int) {
	s.width = width
	for _, f := range s.fields {
		if f.spec.Kind == step.KindText || f.spec.Kind == step.KindSecret {
			f.input.SetWidth(max(width-10, 20))
		}
	}
}

// Update handles messages for the form.
func (s *FormStep) Update(msg tea.Msg) tea.Cmd {
	if len(s.fields) == 0 {
		return nil
	}
	cur := s.fields[s.focus]

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			if s.focus == len(s.fields)-1 {
				return func() tea.Msg { return TabExitForwardMsg{} }
			}
			return s.focusAt(s.focus + 1)

		case "shift+tab", "up":
			if s.focus == 0 {
				return func() tea.Msg { return TabExitBackwardMsg{} }
			}
			return s.focusAt(s.focus - 1)

		case "enter":
			return func() tea.Msg { return SubmitFormMsg{} }
		}

		switch cur.spec.Kind {
		case step.KindChoice:
			switch keyMsg.String() {
			case "right", "l", "space", " ":
				cur.cycle(1)
			case "left", "h":
				cur.cycle(-1)
			}
			return nil
		case step.KindCheck:
			switch keyMsg.String() {
			case "space", " ", "x":
				cur.checked = !cur.checked
			}
			return nil
		}
	}

	if cur.spec.Kind == step.KindText || cur.spec.Kind == step.KindSecret {
		var cmd tea.Cmd
		cur.input, cmd = cur.input.Update(msg)
		return cmd
	}
	return nil
}

// View renders the form. errs holds the messages to show under each field.
func (s *FormStep) View(errs map[step.Field]string) string {
	var b strings.Builder
	for i, f := range s.fields {
		focused := i == s.focus
		label := f.spec.Label
		if f.spec.Required {
			label += " *"
		}

		switch f.spec.Kind {
		case step.KindCheck:
			box := "[ ]"
			if f.checked {
				box = "[x]"
			}
			b.WriteString(labelStyle(focused).Render(box + " " + f.spec.Label))
			b.WriteString("\n")

		case step.KindChoice:
			b.WriteString(labelStyle(focused).Render(label))
			b.WriteString("\n")
			b.WriteString(s.renderChoice(f, focused))
			b.WriteString("\n")

		default:
			b.WriteString(labelStyle(focused).Render(label))
			b.WriteString("\n")
			b.WriteString(f.input.View())
			b.WriteString("\n")
		}

		if msg := errs[f.spec.Name]; msg != "" {
			b.WriteString(styleError.Render("✗ " + msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (s *FormStep) renderChoice(f *formField, focused bool) string {
	if f.choice < 0 {
		return styleChoiceMuted.Render("  Select " + strings.ToLower(f.spec.Label))
	}
	label := f.spec.Options[f.choice].Label
	if focused {
		return styleChoice.Render("‹ " + label + " ›")
	}
	return styleChoice.Render("  " + label)
}

func labelStyle(focused bool) lipgloss.Style {
	if focused {
		return styleLabelFocused
	}
	return styleLabel
}

// SubmitFormMsg is sent when Enter is pressed inside the form.
type SubmitFormMsg struct{}

// TabExitForwardMsg is sent when Tab is pressed on the last field.
// Parent should move focus to buttons.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first field.
// Parent should move focus to buttons (from end).
type TabExitBackwardMsg struct{}
