package components

import (
	"strconv"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/styles"
)

// NavLink is one entry of the navigation menu.
type NavLink struct {
	ID    string
	Title string
}

// NavMenu is the compact section menu toggled from the header.
type NavMenu struct {
	links  []NavLink
	cursor int
	open   bool
}

// NewNavMenu creates a closed menu.
func NewNavMenu(links []NavLink) *NavMenu {
	return &NavMenu{links: links}
}

// Open reports whether the menu is shown.
func (m *NavMenu) Open() bool { return m.open }

// Toggle opens or closes the menu. Opening places the cursor on active.
func (m *NavMenu) Toggle(active int) {
	if m.open {
		m.Close()
		return
	}
	m.open = true
	m.cursor = min(max(active, 0), max(len(m.links)-1, 0))
}

// Close hides the menu.
func (m *NavMenu) Close() { m.open = false }

// Move shifts the cursor by delta, wrapping around.
func (m *NavMenu) Move(delta int) {
	n := len(m.links)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Selected returns the link under the cursor.
func (m *NavMenu) Selected() (NavLink, bool) {
	if m.cursor < 0 || m.cursor >= len(m.links) {
		return NavLink{}, false
	}
	return m.links[m.cursor], true
}

// Cursor returns the cursor position.
func (m *NavMenu) Cursor() int { return m.cursor }

// View renders the menu. active marks the section currently on screen.
func (m *NavMenu) View(active int) string {
	rows := make([]string, 0, len(m.links)+1)
	for i, l := range m.links {
		label := strconv.Itoa(i+1) + "  " + l.Title
		style := styles.MenuItemStyle
		if i == active {
			style = styles.MenuItemActiveStyle
		}
		if i == m.cursor {
			style = styles.MenuItemCursorStyle
		}
		rows = append(rows, style.Render(" "+label+" "))
	}
	rows = append(rows, styles.ModalHelpStyle.Render("enter go  esc close"))
	return styles.MenuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Overlay composites the menu under the header at the right edge.
func (m *NavMenu) Overlay(background string, width, top, active int) string {
	if !m.open {
		return background
	}
	menu := m.View(active)

	bgLayer := lipgloss.NewLayer(background)
	menuLayer := lipgloss.NewLayer(menu)
	menuLayer.X(max(width-lipgloss.Width(menu)-1, 0)).Y(top).Z(1)

	return lipgloss.NewCompositor(bgLayer, menuLayer).Render()
}
