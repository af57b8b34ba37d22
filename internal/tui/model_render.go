package tui

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/styles"
)

// View renders the model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	if !m.ready {
		return tea.NewView("Loading...")
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)

	switch m.state {
	case stateMenu:
		page = m.menu.Overlay(page, m.width, headerHeight, m.activeSection)
	case stateHelp:
		page = m.helpDialog.Overlay(page, m.width, m.height)
	}

	page = m.toastView.Overlay(page, m.width, headerHeight)

	v := tea.NewView(page)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// headerView renders the brand and the section links. When the links do not fit,
// they collapse into a menu hint.
func (m Model) headerView() string {
	style := styles.HeaderStyle
	if m.scrolled {
		style = styles.HeaderScrolledStyle
	}
	inner := max(m.width-style.GetHorizontalFrameSize(), 0)

	brand := styles.BrandStyle.Render(styles.IconBrand + " " + m.portfolio.Name)

	links := make([]string, 0, len(m.layout.sections))
	for i, s := range m.layout.sections {
		ls := styles.NavLinkStyle
		if i == m.activeSection {
			ls = styles.NavLinkActiveStyle
		}
		links = append(links, ls.Render(strconv.Itoa(i+1)+" "+s.title))
	}
	nav := strings.Join(links, "  ")

	if lipgloss.Width(brand)+2+lipgloss.Width(nav) > inner {
		nav = styles.NavLinkStyle.Render(styles.IconMenu + " m menu")
		if m.activeSection < len(m.layout.sections) {
			nav = styles.NavLinkActiveStyle.Render(m.layout.sections[m.activeSection].title) + "  " + nav
		}
	}

	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(nav), 1)
	row := style.Width(m.width).Render(brand + strings.Repeat(" ", gap) + nav)
	rule := styles.DividerStyle.Render(strings.Repeat("─", max(m.width, 0)))
	return lipgloss.JoinVertical(lipgloss.Left, row, rule)
}

func (m Model) footerView() string {
	if m.state == stateSearch {
		return m.searchInput.View()
	}
	if m.query != "" {
		return styles.FilterPromptStyle.Render(styles.IconSearch+" "+m.query) +
			styles.TextMutedStyle.Render("  "+strconv.Itoa(m.layout.matches)+" matching  / edit  esc clear")
	}
	if m.state == stateForm {
		return styles.TextMutedStyle.Render("tab next field  shift+tab previous  ctrl+s send  esc leave form")
	}
	return m.help.View(m.keys)
}
