package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amelara/folio/internal/core/notify"
)

// ShowNotificationMsg shows a notification, replacing any visible one.
type ShowNotificationMsg struct {
	Message  string
	Severity notify.Severity
}

// ValidateFormMsg runs the contact form validator and decorates every failing field.
type ValidateFormMsg struct{}

// AnimateSkillBarsMsg re-arms the fill effect for every skill bar not yet animated.
type AnimateSkillBarsMsg struct{}

// ShowNotification returns a command that shows message. Unknown severities fall
// back to info.
func ShowNotification(message string, severity notify.Severity) tea.Cmd {
	return func() tea.Msg {
		return ShowNotificationMsg{Message: message, Severity: severity}
	}
}

// ValidateForm returns a command that validates the contact form.
func ValidateForm() tea.Cmd {
	return func() tea.Msg { return ValidateFormMsg{} }
}

// AnimateSkillBars returns a command that re-arms the skill bar effect.
func AnimateSkillBars() tea.Cmd {
	return func() tea.Msg { return AnimateSkillBarsMsg{} }
}

// ShowNotification shows message immediately and returns the retirement command.
func (m *Model) ShowNotification(message string, severity notify.Severity) tea.Cmd {
	return m.notifications.Notify(notify.New(message, severity))
}

// ValidateForm validates the contact form, decorating failing fields, and returns
// the verdict.
func (m *Model) ValidateForm() bool {
	return m.contactForm.Validate()
}

// AnimateSkillBars registers every bar not yet animated with a fresh trigger and
// measures immediately. It returns the number of bars registered and the command
// for any bar that fired at once.
func (m *Model) AnimateSkillBars() (int, tea.Cmd) {
	n := m.animator.RestartBars()
	return n, m.refresh()
}
