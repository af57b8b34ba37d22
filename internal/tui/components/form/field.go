package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/styles"
)

// Field is the interface implemented by all form field widgets. A field owns the
// editable value; the error decoration is pushed in by the owning form.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Label() string
	// SetError decorates the field with msg. An empty msg clears the decoration.
	SetError(msg string)
}

// decoration carries the label and error state shared by every widget.
type decoration struct {
	label    string
	required bool
	errMsg   string
	focused  bool
}

func (d *decoration) SetError(msg string) { d.errMsg = msg }
func (d *decoration) Focused() bool       { return d.focused }
func (d *decoration) Label() string       { return d.label }

// frame wraps a rendered input with its title, border and error line.
func (d *decoration) frame(input string) string {
	titleStyle := styles.TextMutedStyle
	if d.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := d.label
	if d.required {
		title += " *"
	}

	parts := []string{titleStyle.Render(title), input}
	if d.errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(d.errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	border := styles.FormFieldStyle
	switch {
	case d.errMsg != "":
		border = styles.FormFieldErrorStyle
	case d.focused:
		border = styles.FormFieldFocusedStyle
	}
	return border.Render(content)
}
