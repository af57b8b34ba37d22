package form

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/contact"
	"github.com/amelara/folio/internal/core/styles"
)

const (
	fieldWidth = 48

	SubmitLabel = "Send message"
	BusyLabel   = "Sending..."
)

// SubmitMsg asks the owner of a ContactForm to submit it.
type SubmitMsg struct{}

// ContactForm renders a contact.Form and handles focus cycling, blur validation and
// the submit control. Field widgets own the editable text; every edit is mirrored into
// the underlying contact.Form, which owns validation state.
type ContactForm struct {
	form     *contact.Form
	fields   []Field
	focus    int // len(fields) is the submit button
	active   bool
	busy     bool
	spinner  spinner.Model
	subjects []string
}

// NewContactForm builds widgets for every field of f. subjects are the choices of
// the subject select.
func NewContactForm(f *contact.Form, subjects []string) *ContactForm {
	c := &ContactForm{
		form:     f,
		subjects: subjects,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.TextPrimaryStyle),
		),
	}

	for _, fld := range f.Fields() {
		c.fields = append(c.fields, c.widgetFor(fld))
	}
	c.Refresh()
	return c
}

func (c *ContactForm) widgetFor(fld *contact.Field) Field {
	switch fld.Name {
	case contact.FieldEmail:
		return NewTextField(fld.Label, "you@example.com", fld.Required)
	case contact.FieldPhone:
		return NewTextField(fld.Label, "optional", fld.Required)
	case contact.FieldSubject:
		return NewSelectField(fld.Label, "Choose a subject", c.subjects, fld.Required)
	case contact.FieldMessage:
		return NewTextAreaField(fld.Label, "How can I help?", fld.Required)
	default:
		return NewTextField(fld.Label, "Your full name", fld.Required)
	}
}

// Form returns the underlying contact form.
func (c *ContactForm) Form() *contact.Form { return c.form }

// Active reports whether the form currently receives key input.
func (c *ContactForm) Active() bool { return c.active }

// Busy reports whether the submit control is in its busy state.
func (c *ContactForm) Busy() bool { return c.busy }

// FocusIndex returns the focused position; len(fields) is the submit button.
func (c *ContactForm) FocusIndex() int { return c.focus }

// Focus activates the form, focusing the previously focused control.
func (c *ContactForm) Focus() tea.Cmd {
	c.active = true
	if c.focus < len(c.fields) {
		return c.fields[c.focus].Focus()
	}
	return nil
}

// Blur deactivates the form. The focused field loses focus and is validated.
func (c *ContactForm) Blur() {
	c.active = false
	c.leave(c.focus)
}

// SetBusy switches the submit control between its normal and busy states.
func (c *ContactForm) SetBusy(busy bool) tea.Cmd {
	c.busy = busy
	if busy {
		return c.spinner.Tick
	}
	return nil
}

// Validate runs the form validator over the current values and refreshes every
// decoration.
func (c *ContactForm) Validate() bool {
	c.Sync()
	ok := contact.ValidateForm(c.form)
	c.Refresh()
	return ok
}

// Refresh copies values and decorations from the contact form into the widgets. Call
// it after the contact form changed underneath, e.g. after a reset.
func (c *ContactForm) Refresh() {
	for i, fld := range c.form.Fields() {
		w := c.fields[i]
		if w.Value() != fld.Value() {
			w.SetValue(fld.Value())
		}
		msg, _ := fld.Error()
		w.SetError(msg)
	}
}

// Sync mirrors widget values into the contact form, so the form holds exactly what
// is on screen. A select whose value matched no option holds the placeholder's.
func (c *ContactForm) Sync() {
	for i, fld := range c.form.Fields() {
		fld.SetValue(c.fields[i].Value())
	}
}

// Update handles key input for the form.
func (c *ContactForm) Update(msg tea.Msg) (*ContactForm, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !c.busy {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(tick)
		return c, cmd
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return c, c.move(1)
	case "shift+tab":
		return c, c.move(-1)
	case "ctrl+s":
		return c, submit
	case "enter":
		if c.focus == len(c.fields) {
			return c, submit
		}
		if _, isArea := c.fields[c.focus].(*TextAreaField); isArea {
			return c.updateFocused(msg)
		}
		return c, c.move(1)
	}

	return c.updateFocused(msg)
}

func submit() tea.Msg { return SubmitMsg{} }

func (c *ContactForm) updateFocused(msg tea.Msg) (*ContactForm, tea.Cmd) {
	if c.focus >= len(c.fields) {
		return c, nil
	}

	var cmd tea.Cmd
	w := c.fields[c.focus]
	c.fields[c.focus], cmd = w.Update(msg)

	// Input clears the field's error as soon as the value changes.
	fld := c.form.Fields()[c.focus]
	if v := c.fields[c.focus].Value(); v != fld.Value() {
		fld.SetValue(v)
		errMsg, _ := fld.Error()
		c.fields[c.focus].SetError(errMsg)
	}
	return c, cmd
}

// leave blurs the control at i and validates its field.
func (c *ContactForm) leave(i int) {
	if i >= len(c.fields) {
		return
	}
	w := c.fields[i]
	w.Blur()

	fld := c.form.Fields()[i]
	fld.SetValue(w.Value())
	contact.ValidateField(fld)
	msg, _ := fld.Error()
	w.SetError(msg)
}

func (c *ContactForm) move(delta int) tea.Cmd {
	n := len(c.fields) + 1
	c.leave(c.focus)
	c.focus = ((c.focus+delta)%n + n) % n
	if c.focus < len(c.fields) {
		return c.fields[c.focus].Focus()
	}
	return nil
}

// View renders every field followed by the submit control.
func (c *ContactForm) View() string {
	parts := make([]string, 0, len(c.fields)*2+3)
	for i, f := range c.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, f.View())
	}

	parts = append(parts, "", c.buttonView())
	if c.active {
		help := styles.FormHelpStyle.Render("tab: next  shift+tab: prev  ctrl+s: send  esc: leave form")
		parts = append(parts, "", help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (c *ContactForm) buttonView() string {
	if c.busy {
		return styles.ButtonBusyStyle.Render(c.spinner.View() + " " + BusyLabel)
	}
	label := styles.IconMail + " " + SubmitLabel
	if c.active && c.focus == len(c.fields) {
		return styles.ButtonFocusedStyle.Render(label)
	}
	return styles.ButtonStyle.Render(label)
}

// ButtonLabel returns the text currently shown on the submit control.
func (c *ContactForm) ButtonLabel() string {
	if c.busy {
		return BusyLabel
	}
	return SubmitLabel
}
