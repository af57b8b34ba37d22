package tui

import (
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/logging"
	"github.com/amelara/folio/internal/tui/components/form"
)

const keyCtrlC = "ctrl+c"

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Window
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.BackgroundColorMsg:
		m.log.Debug().Bool("dark", msg.IsDark()).Msg("terminal background detected")
		return m, nil

	// Public surface
	case ShowNotificationMsg:
		return m, m.ShowNotification(msg.Message, msg.Severity)
	case ValidateFormMsg:
		valid := m.ValidateForm()
		m.log.Debug().Bool("valid", valid).Msg("form validated")
		return m, m.refresh()
	case AnimateSkillBarsMsg:
		n, cmd := m.AnimateSkillBars()
		m.log.Debug().Int("bars", n).Msg("skill bars re-armed")
		return m, cmd

	// Notifications
	case notificationExpireMsg:
		return m, m.notifications.Expire(msg.id)
	case notificationRemoveMsg:
		m.notifications.Remove(msg.id)
		return m, nil

	// Animations
	case barFillMsg:
		cmd := m.animator.Fill(msg.path)
		m.render()
		return m, cmd
	case counterTickMsg:
		cmd := m.animator.Step(msg.path)
		m.render()
		return m, cmd
	case progress.FrameMsg:
		cmd := m.animator.UpdateBars(msg)
		m.render()
		return m, cmd

	// Contact form
	case form.SubmitMsg:
		return m.handleSubmit()
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.contactForm, cmd = m.contactForm.Update(msg)
		m.render()
		return m, cmd

	// Input
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseWheelMsg:
		if m.state != stateNormal && m.state != stateForm {
			return m, nil
		}
		m.viewport, _ = m.viewport.Update(msg)
		return m, m.refresh()
	}

	return m.handleFallthrough(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.viewport.SetWidth(msg.Width)
	m.viewport.SetHeight(max(msg.Height-headerHeight-footerHeight, 1))
	m.animator.SetBarWidth(min(msg.Width-pageMargin*2-skillLabelWidth, maxBarWidth))

	cmd := m.refresh()

	if !m.firstFrameLogged {
		m.firstFrameLogged = true
		m.log.Debug().
			Dur("elapsed", time.Since(m.startedAt)).
			Int("width", msg.Width).
			Int("height", msg.Height).
			Msg("first frame ready")
	}
	return m, cmd
}

// handleFallthrough routes messages no case claimed, such as cursor blinks, to the
// focused input.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateForm:
		m.contactForm, cmd = m.contactForm.Update(msg)
		m.render()
	case stateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	m.log.Debug().Str("target", "submit").Msg("interaction")

	n, sendCmd := m.submission.Submit()
	cmds := []tea.Cmd{sendCmd}
	if n != nil {
		cmds = append(cmds, m.notifications.Notify(*n))
	}
	cmds = append(cmds, m.refresh())
	return m, tea.Batch(cmds...)
}

func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	n := m.submission.Complete(msg)
	if n == nil {
		return m, nil
	}
	return m, tea.Batch(m.notifications.Notify(*n), m.refresh())
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == keyCtrlC {
		return m.quit()
	}

	switch m.state {
	case stateHelp:
		return m.handleHelpKey(keyStr)
	case stateMenu:
		return m.handleMenuKey(msg, keyStr)
	case stateSearch:
		return m.handleSearchKey(msg, keyStr)
	case stateForm:
		return m.handleFormKey(msg, keyStr)
	}

	return m.handleNormalKey(msg)
}

func (m Model) handleHelpKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc", "?", "q":
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch {
	case keyStr == "esc" || key.Matches(msg, m.keys.Menu):
		m.menu.Close()
		m.state = stateNormal
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.menu.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu.Move(1)
	case keyStr == "enter":
		link, ok := m.menu.Selected()
		m.menu.Close()
		m.state = stateNormal
		if !ok {
			return m, nil
		}
		if i, found := m.layout.sectionIndex(link.ID); found {
			return m, m.jumpTo(i, "menu")
		}
	case key.Matches(msg, m.keys.Jump):
		m.menu.Close()
		m.state = stateNormal
		return m, m.jumpTo(int(msg.Code-'1'), "menu")
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc":
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.query = ""
		m.state = stateNormal
		return m, m.refresh()
	case "enter":
		m.searchInput.Blur()
		m.state = stateNormal
		m.log.Debug().Str("query", m.query).Int("matches", m.layout.matches).Msg("search applied")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.query {
		m.query = q
		return m, tea.Batch(cmd, m.refresh())
	}
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.LeaveInput) {
		m.contactForm.Blur()
		m.state = stateNormal
		return m, m.refresh()
	}
	if keyStr == "ctrl+x" {
		m.notifications.Dismiss()
		return m, nil
	}

	var cmd tea.Cmd
	m.contactForm, cmd = m.contactForm.Update(msg)
	m.render()
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	vp := &m.viewport

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.notifications.Dismiss()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.menu.Toggle(m.activeSection)
		m.state = stateMenu
		m.log.Debug().Str("target", "menu").Msg("interaction")
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.state = stateSearch
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.Contact):
		return m.openContactForm()
	case key.Matches(msg, m.keys.Jump):
		return m, m.jumpTo(int(msg.Code-'1'), "key")
	case key.Matches(msg, m.keys.LeaveInput):
		if m.query == "" {
			return m, nil
		}
		m.query = ""
		m.searchInput.SetValue("")

	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		vp.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		vp.PageDown()
	case key.Matches(msg, m.keys.HalfUp):
		vp.HalfPageUp()
	case key.Matches(msg, m.keys.HalfDown):
		vp.HalfPageDown()
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	default:
		return m, nil
	}

	return m, m.refresh()
}

func (m Model) openContactForm() (tea.Model, tea.Cmd) {
	i, ok := m.contactSection()
	if !ok {
		return m, nil
	}
	m.state = stateForm
	return m, tea.Batch(m.jumpTo(i, "contact"), m.contactForm.Focus())
}

func (m Model) contactSection() (int, bool) {
	for i, s := range m.portfolio.Sections {
		if s.Kind == content.KindContact {
			return i, true
		}
	}
	return 0, false
}

// jumpTo scrolls section i to the top of the page.
func (m *Model) jumpTo(i int, source string) tea.Cmd {
	if i < 0 || i >= len(m.layout.sections) {
		return nil
	}
	s := m.layout.sections[i]

	ctx := logging.WithSection(m.ctx, s.id)
	m.log.Debug().Ctx(ctx).Str("source", source).Msg("navigate")

	m.viewport.SetYOffset(s.span.Top)
	return m.refresh()
}
