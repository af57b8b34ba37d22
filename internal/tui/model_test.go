package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amelara/folio/internal/core/config"
	"github.com/amelara/folio/internal/core/contact"
	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/notify"
	"github.com/amelara/folio/internal/tui/components/form"
	"github.com/amelara/folio/pkg/tuitest"
)

func newTestModel(t *testing.T) (Model, *fakeSender) {
	t.Helper()
	cfg := config.DefaultConfig()
	sender := &fakeSender{}
	m := New(&cfg, testPortfolio(), Options{Sender: sender})
	return send(t, m, tuitest.WindowSize(100, 20)), sender
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_Init(t *testing.T) {
	cfg := config.DefaultConfig()
	m := New(&cfg, testPortfolio(), Options{})
	assert.NotNil(t, m.Init())
	assert.Equal(t, stateNormal, m.State())
}

// drain runs cmd and any batched commands it returns, collecting their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func TestModel_Init_showsContentNotice(t *testing.T) {
	cfg := config.DefaultConfig()
	p := testPortfolio()
	p.Notice = &content.Notice{Message: "Open to work", Severity: notify.SeveritySuccess}
	m := New(&cfg, p, Options{})

	var shown []ShowNotificationMsg
	for _, msg := range drain(m.Init()) {
		if n, ok := msg.(ShowNotificationMsg); ok {
			shown = append(shown, n)
		}
	}
	require.Len(t, shown, 1)
	assert.Equal(t, ShowNotificationMsg{Message: "Open to work", Severity: notify.SeveritySuccess}, shown[0])

	m = send(t, m, tuitest.WindowSize(100, 20), shown[0])
	n, ok := m.Notifications().Current()
	require.True(t, ok)
	assert.Equal(t, "Open to work", n.Message)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	assert.True(t, m.ready)
	assert.Equal(t, 20-headerHeight-footerHeight, m.viewport.Height())
	assert.Len(t, m.layout.sections, 5)
	assert.Equal(t, "about", m.ActiveSection())

	v := m.View()
	assert.True(t, v.AltScreen)
}

func TestModel_Header(t *testing.T) {
	m, _ := newTestModel(t)
	header := tuitest.StripANSI(m.headerView())

	assert.Contains(t, header, "Ada")
	assert.Contains(t, header, "1 About")
	assert.Contains(t, header, "5 Contact")

	m = send(t, m, tuitest.WindowSize(30, 20))
	header = tuitest.StripANSI(m.headerView())
	assert.Contains(t, header, "m menu", "narrow header collapses links")
}

func TestModel_JumpToSection(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('2'))

	maxOffset := max(m.layout.lines-m.viewport.Height(), 0)
	want := min(m.layout.sections[1].span.Top, maxOffset)
	assert.Equal(t, want, m.YOffset())
	assert.Equal(t, stateNormal, m.State())

	before := m.YOffset()
	m = send(t, m, tuitest.KeyPress('9'))
	assert.Equal(t, before, m.YOffset(), "jump past the last section is ignored")
}

func TestModel_ScrollUpdatesHeaderState(t *testing.T) {
	m, _ := newTestModel(t)
	require.Greater(t, m.layout.lines, m.viewport.Height()+scrolledAfter)

	assert.False(t, m.Scrolled())
	m = send(t, m, tuitest.KeyPress('G'))
	assert.True(t, m.Scrolled())
	assert.Equal(t, "contact", m.ActiveSection())

	m = send(t, m, tuitest.KeyPress('g'))
	assert.False(t, m.Scrolled())
	assert.Zero(t, m.YOffset())
}

func TestModel_Menu(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('m'))
	assert.Equal(t, stateMenu, m.State())
	assert.True(t, m.menu.Open())

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyEnter())
	assert.Equal(t, stateNormal, m.State())
	assert.False(t, m.menu.Open())
	assert.Positive(t, m.YOffset())

	m = send(t, m, tuitest.KeyPress('m'), tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.State())
}

func TestModel_Search(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('/'))
	require.Equal(t, stateSearch, m.State())

	m = send(t, m, tuitest.Type("broker")...)
	assert.Equal(t, "broker", m.Query())
	assert.Equal(t, 1, m.layout.matches)

	m = send(t, m, tuitest.KeyEnter())
	assert.Equal(t, stateNormal, m.State())
	assert.Equal(t, "broker", m.Query(), "enter keeps the filter")
	assert.Contains(t, tuitest.StripANSI(m.footerView()), "1 matching")

	m = send(t, m, tuitest.KeyEsc())
	assert.Empty(t, m.Query())
	assert.Equal(t, 3, m.layout.matches)
}

func TestModel_Help(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('?'))
	assert.Equal(t, stateHelp, m.State())

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.State())
}

func TestModel_ContactForm_enterAndLeave(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('c'))
	assert.Equal(t, stateForm, m.State())
	assert.True(t, m.ContactForm().Active())
	assert.Equal(t, "contact", m.ActiveSection())

	// Typing goes to the form, not to the page bindings.
	m = send(t, m, tuitest.Type("q")...)
	assert.Equal(t, stateForm, m.State())
	assert.Equal(t, "q", m.ContactForm().Form().Field(contact.FieldFullName).Value())

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.State())
	assert.False(t, m.ContactForm().Active())

	msg, ok := m.ContactForm().Form().Field(contact.FieldFullName).Error()
	assert.True(t, ok, "leaving the form validates the focused field")
	assert.Equal(t, contact.MsgNameTooShort, msg)
}

func TestModel_Submit_invalid(t *testing.T) {
	m, sender := newTestModel(t)

	m = send(t, m, form.SubmitMsg{})

	n, ok := m.Notifications().Current()
	require.True(t, ok)
	assert.Equal(t, MsgFixErrors, n.Message)
	assert.Equal(t, notify.SeverityError, n.Severity)
	assert.False(t, m.Submitting())
	assert.Empty(t, sender.calls)
}

func TestModel_Submit_success(t *testing.T) {
	m, _ := newTestModel(t)
	m.ContactForm().Form().Fill(validValues)
	m.ContactForm().Refresh()

	m = send(t, m, form.SubmitMsg{})
	assert.True(t, m.Submitting())
	assert.False(t, m.Notifications().HasNotification())

	m = send(t, m, form.SubmitMsg{})
	assert.True(t, m.Submitting(), "repeated submit is ignored")

	m = send(t, m, submitResultMsg{generation: 1})
	assert.False(t, m.Submitting())

	n, ok := m.Notifications().Current()
	require.True(t, ok)
	assert.Equal(t, MsgSendSuccess, n.Message)
	assert.Equal(t, notify.SeveritySuccess, n.Severity)
}

func TestModel_NotificationLifecycle(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(ShowNotificationMsg{Message: "hi", Severity: notify.SeverityWarning})
	m = next.(Model)
	require.NotNil(t, cmd)

	n, ok := m.Notifications().Current()
	require.True(t, ok)
	assert.Equal(t, "hi", n.Message)

	m = send(t, m, notificationExpireMsg{id: "stale"})
	assert.False(t, m.Notifications().Leaving())

	m = send(t, m, notificationExpireMsg{id: n.ID})
	assert.True(t, m.Notifications().Leaving())

	m = send(t, m, notificationRemoveMsg{id: n.ID})
	assert.False(t, m.Notifications().HasNotification())
}

func TestModel_DismissNotification(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, ShowNotificationMsg{Message: "bye", Severity: notify.SeverityInfo})

	m = send(t, m, tuitest.KeyPress('x'))
	assert.False(t, m.Notifications().HasNotification())
}

func TestModel_ValidateFormMsg(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, ValidateFormMsg{})

	for _, name := range []contact.FieldName{contact.FieldFullName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage} {
		_, errored := m.ContactForm().Form().Field(name).Error()
		assert.True(t, errored, "%s", name)
	}
	_, errored := m.ContactForm().Form().Field(contact.FieldPhone).Error()
	assert.False(t, errored, "optional fields are not checked on submit")
}

func TestModel_CountersAnimateOnLoad(t *testing.T) {
	m, _ := newTestModel(t)
	path := counterID("about", 0).path

	for range 1000 {
		if m.Animator().CounterDone(path) {
			break
		}
		m = send(t, m, counterTickMsg{path: path})
	}
	assert.Equal(t, 7, m.Animator().CounterValue(path))
}

func TestModel_AnimateSkillBars(t *testing.T) {
	m, _ := newTestModel(t)

	n, _ := m.AnimateSkillBars()
	_, pending, _ := m.Animator().Pending()
	assert.Equal(t, n, pending)
	assert.LessOrEqual(t, n, 2)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
}
