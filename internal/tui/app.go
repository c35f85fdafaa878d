// Package tui is the terminal front end of the sign-up wizard. It renders
// the current step as a form and forwards every action to a
// wizard.Controller, which owns all state.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/onboardr/internal/step"
	"github.com/mark3labs/onboardr/internal/wizard"
)

// CompleteTitle is shown once the record has been submitted.
const CompleteTitle = "Submission Complete"

// ErrCancelled is returned by Run when the user quits before submitting.
var ErrCancelled = errors.New("wizard cancelled by user")

// Model is the BubbleTea model for the sign-up wizard.
type Model struct {
	ctrl *wizard.Controller

	form    *FormStep
	buttons *ButtonBar
	review  *ReviewModal

	result  step.Result // Latest validation of the form, for inline errors
	status  string      // Transient confirmation, e.g. after Save
	failure string      // Last rejected transition

	cancelled bool
	width     int
	height    int
}

// New creates the model on the controller's current step.
func New(ctrl *wizard.Controller) *Model {
	m := &Model{
		ctrl:   ctrl,
		width:  80,
		height: 24,
	}
	m.loadStep()
	return m
}

// Run starts a standalone BubbleTea program and blocks until the user
// submits or quits.
func Run(ctrl *wizard.Controller) error {
	p := tea.NewProgram(New(ctrl))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	m, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if m.cancelled || !m.ctrl.State().Complete {
		return ErrCancelled
	}
	return nil
}

// Cancelled reports whether the user quit without submitting.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Form returns the form for the current step, or nil once complete.
func (m *Model) Form() *FormStep {
	return m.form
}

// ReviewOpen reports whether the review modal is showing.
func (m *Model) ReviewOpen() bool {
	return m.review != nil
}

// Init focuses the first field.
func (m *Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Focus()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.ctrl.State().Complete {
			switch msg.String() {
			case "enter", "q", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		if m.review != nil {
			return m, m.review.Update(msg)
		}
		return m, m.handleKey(msg)

	case ConfirmReviewMsg:
		return m, m.confirm()

	case DismissReviewMsg:
		return m, m.dismiss()

	case SubmitFormMsg:
		return m, m.advance()

	case TabExitForwardMsg:
		m.ctrl.Touch(m.form.Focused())
		m.form.Blur()
		m.buttons.FocusFirst()
		return m, nil

	case TabExitBackwardMsg:
		m.form.Blur()
		m.buttons.FocusLast()
		return m, nil
	}

	if m.form != nil && m.review == nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

// handleKey routes a key press while a step form is showing.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		return m.save()
	case "esc":
		if m.ctrl.Actions().Back {
			return m.back()
		}
		m.cancelled = true
		return tea.Quit
	}

	if m.buttons.IsFocused() {
		switch msg.String() {
		case "tab", "right":
			if !m.buttons.FocusNext() {
				m.buttons.Blur()
				return m.form.Focus()
			}
		case "shift+tab", "left":
			if !m.buttons.FocusPrev() {
				m.buttons.Blur()
				return m.form.FocusLast()
			}
		case "enter", "space", " ":
			if btn, ok := m.buttons.FocusedButton(); ok {
				return m.press(btn.ID)
			}
		}
		return nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.ctrl.Touch(m.form.Focused())
	}
	cmd := m.form.Update(msg)
	m.revalidate()
	return cmd
}

// press runs the action behind a step button.
func (m *Model) press(id ButtonID) tea.Cmd {
	switch id {
	case ButtonBack:
		return m.back()
	case ButtonSave:
		// The last step has no separate Next; its Save opens the review.
		if m.ctrl.Actions().Complete {
			return m.complete()
		}
		return m.save()
	case ButtonNext:
		return m.next()
	}
	return nil
}

// advance is the Enter action: Next, or Complete on the last step.
func (m *Model) advance() tea.Cmd {
	if m.ctrl.Actions().Complete {
		return m.complete()
	}
	return m.next()
}

func (m *Model) save() tea.Cmd {
	cur := m.form.Step()
	res, err := m.ctrl.SaveOnly(cur.Index, m.form.Values())
	if err != nil {
		m.failure = err.Error()
		return nil
	}
	m.result = res
	m.failure = ""
	m.status = "Saved"
	return nil
}

func (m *Model) next() tea.Cmd {
	cur := m.form.Step()
	res, err := m.ctrl.Next(cur.Index, m.form.Values())
	if err != nil {
		m.failure = err.Error()
		return nil
	}
	if !res.Valid {
		m.result = res
		m.status = ""
		return nil
	}
	return m.loadStep()
}

func (m *Model) back() tea.Cmd {
	if _, err := m.ctrl.Back(); err != nil {
		m.failure = err.Error()
		return nil
	}
	return m.loadStep()
}

func (m *Model) complete() tea.Cmd {
	res, err := m.ctrl.Complete(m.form.Values())
	if err != nil {
		m.failure = err.Error()
		return nil
	}
	m.result = res
	if !m.ctrl.State().ReviewVisible {
		m.status = ""
		return nil
	}

	rec := m.ctrl.State().Record
	presenter := m.ctrl.Presenter()
	body, err := presenter.Render(rec)
	if err != nil {
		body = err.Error()
	}
	m.form.Blur()
	m.buttons.Blur()
	m.review = NewReviewModal(presenter.Summary(rec), body)
	m.review.SetWidth(m.contentWidth())
	return nil
}

func (m *Model) confirm() tea.Cmd {
	if m.review == nil {
		return nil
	}
	if _, err := m.ctrl.ConfirmSubmit(); err != nil {
		m.review.SetError(err.Error())
		return nil
	}
	m.review = nil
	m.form = nil
	return nil
}

func (m *Model) dismiss() tea.Cmd {
	if m.review == nil {
		return nil
	}
	if _, err := m.ctrl.Dismiss(); err != nil {
		m.failure = err.Error()
	}
	m.review = nil
	m.refreshButtons()
	return m.form.Focus()
}

// loadStep rebuilds the form for the controller's current step, filled
// from the record.
func (m *Model) loadStep() tea.Cmd {
	m.status = ""
	m.failure = ""
	cur, ok := m.ctrl.Current()
	if !ok {
		m.form = nil
		return nil
	}
	defaults, err := m.ctrl.DefaultsFor(cur.Index)
	if err != nil {
		m.failure = err.Error()
		return nil
	}
	m.form = NewFormStep(cur, defaults)
	m.refreshButtons()
	m.resize()
	m.revalidate()
	return m.form.Focus()
}

func (m *Model) refreshButtons() {
	a := m.ctrl.Actions()
	m.buttons = NewButtonBar([]Button{
		{ID: ButtonBack, Label: "← Back", State: stateFor(a.Back)},
		{ID: ButtonSave, Label: "Save", State: stateFor(a.Save || a.Complete)},
		{ID: ButtonNext, Label: "Save and Next", State: stateFor(a.Next)},
	})
	m.buttons.SetWidth(m.contentWidth())
}

func (m *Model) revalidate() {
	if m.form == nil {
		return
	}
	m.result = m.form.Step().Validate(m.form.Values())
}

func (m *Model) resize() {
	w := m.contentWidth()
	if m.form != nil {
		m.form.SetSize(w, m.height-10)
	}
	if m.buttons != nil {
		m.buttons.SetWidth(w)
	}
	if m.review != nil {
		m.review.SetWidth(w)
	}
}

// contentWidth is the usable width inside the modal container.
func (m *Model) contentWidth() int {
	w := m.width - 10
	if w < 60 {
		w = 60
	}
	if w > 100 {
		w = 100
	}
	return w - 6
}

// visibleErrors returns the messages for fields the user has visited.
func (m *Model) visibleErrors() map[step.Field]string {
	errs := make(map[step.Field]string)
	for _, e := range m.ctrl.VisibleErrors(m.result) {
		errs[e.Field] = e.Message
	}
	return errs
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	content := m.renderModal(m.body())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// title returns the modal heading for the current state.
func (m *Model) title() string {
	st := m.ctrl.State()
	if st.Complete {
		return CompleteTitle
	}
	cur, _ := m.ctrl.Current()
	return fmt.Sprintf("Sign Up - Step %d of %d: %s", cur.Index, len(m.ctrl.Steps()), cur.Title)
}

// body renders whatever sits under the title.
func (m *Model) body() string {
	if m.ctrl.State().Complete {
		return strings.Join([]string{
			styleStatus.Render("✓ Your details have been submitted."),
			"",
			renderHintBar("enter", "quit"),
		}, "\n")
	}
	if m.review != nil {
		return m.review.View()
	}

	var sections []string
	sections = append(sections, m.form.View(m.visibleErrors()), "")
	if m.failure != "" {
		sections = append(sections, styleError.Render("✗ "+m.failure), "")
	} else if m.status != "" {
		sections = append(sections, styleStatus.Render("✓ "+m.status), "")
	}
	sections = append(sections, m.buttons.Render(), "")

	primary := "save and next"
	if m.ctrl.Actions().Complete {
		primary = "review"
	}
	sections = append(sections, renderHintBar(
		"tab", "next field",
		"enter", primary,
		"ctrl+s", "save",
		"esc", "back",
	))
	return strings.Join(sections, "\n")
}

// renderModal wraps content in a centered container with the title.
func (m *Model) renderModal(content string) string {
	inner := strings.Join([]string{
		styleModalTitle.Render(m.title()),
		"",
		content,
	}, "\n")

	modal := styleModalContainer.Width(m.contentWidth() + 6).Render(inner)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
