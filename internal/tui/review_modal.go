package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/onboardr/internal/review"
)

// ReviewModal shows the finished record before it is submitted.
type ReviewModal struct {
	lines   []review.Line
	body    string
	err     string
	buttons *ButtonBar
	width   int
}

// NewReviewModal creates a review modal showing the summary lines above the
// rendered record.
func NewReviewModal(lines []review.Line, body string) *ReviewModal {
	bar := NewButtonBar([]Button{
		{ID: ButtonDismiss, Label: "Back", State: ButtonNormal},
		{ID: ButtonConfirm, Label: review.ConfirmLabel, State: ButtonNormal},
	})
	bar.FocusLast()
	return &ReviewModal{lines: lines, body: body, buttons: bar, width: 60}
}

// SetError shows a submission failure inside the modal.
func (m *ReviewModal) SetError(msg string) {
	m.err = msg
}

// SetWidth updates the modal width.
func (m *ReviewModal) SetWidth(width int) {
	m.width = width
	m.buttons.SetWidth(width)
}

// Update handles key presses. It returns ConfirmReviewMsg or
// DismissReviewMsg when the user decides.
func (m *ReviewModal) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "tab", "right":
		if !m.buttons.FocusNext() {
			m.buttons.FocusFirst()
		}
	case "shift+tab", "left":
		if !m.buttons.FocusPrev() {
			m.buttons.FocusLast()
		}
	case "y":
		return func() tea.Msg { return ConfirmReviewMsg{} }
	case "esc", "n":
		return func() tea.Msg { return DismissReviewMsg{} }
	case "enter", "space", " ":
		btn, ok := m.buttons.FocusedButton()
		if !ok {
			return nil
		}
		if btn.ID == ButtonConfirm {
			return func() tea.Msg { return ConfirmReviewMsg{} }
		}
		return func() tea.Msg { return DismissReviewMsg{} }
	}
	return nil
}

// View renders the modal.
func (m *ReviewModal) View() string {
	var sections []string
	sections = append(sections, styleModalTitle.Render(review.Title), "")
	if len(m.lines) > 0 {
		sections = append(sections, renderSummary(m.lines), "")
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(colorText).Render(m.body), "")
	if m.err != "" {
		sections = append(sections, styleError.Render("✗ "+m.err), "")
	}
	sections = append(sections, m.buttons.Render(), "")
	sections = append(sections, renderHintBar(
		"enter", "select",
		"y", "confirm",
		"esc", "back",
	))
	return strings.Join(sections, "\n")
}

// renderSummary lays the lines out as an aligned label/value table.
func renderSummary(lines []review.Line) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.Label))
	}
	value := lipgloss.NewStyle().Foreground(colorText)
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(l.Label))
		rows = append(rows, styleLabel.Render(l.Label+pad)+"  "+value.Render(l.Value))
	}
	return strings.Join(rows, "\n")
}

// ConfirmReviewMsg is sent when the user confirms the review.
type ConfirmReviewMsg struct{}

// DismissReviewMsg is sent when the user closes the review.
type DismissReviewMsg struct{}
