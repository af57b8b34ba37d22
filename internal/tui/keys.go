package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/amelara/folio/internal/tui/components"
)

// keyMap holds the page-level bindings.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	HalfUp     key.Binding
	HalfDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Jump       key.Binding
	Menu       key.Binding
	Search     key.Binding
	Contact    key.Binding
	Dismiss    key.Binding
	Help       key.Binding
	Quit       key.Binding
	LeaveInput key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "space", "f"), key.WithHelp("pgdn/space", "page down")),
		HalfUp:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Jump:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to section")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Contact:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact form")),
		Dismiss:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close notification")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		LeaveInput: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Jump, k.Menu, k.Search, k.Contact, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.HalfUp, k.HalfDown, k.Top, k.Bottom},
		{k.Jump, k.Menu, k.Search, k.Contact},
		{k.Dismiss, k.Help, k.Quit},
	}
}

// helpSections converts the bindings for the help dialog.
func (k keyMap) helpSections() []components.HelpDialogSection {
	titles := []string{"Scrolling", "Navigation", "General"}
	groups := k.FullHelp()
	sections := make([]components.HelpDialogSection, 0, len(groups)+1)
	for i, group := range groups {
		s := components.HelpDialogSection{Title: titles[i]}
		for _, b := range group {
			h := b.Help()
			s.Entries = append(s.Entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		sections = append(sections, s)
	}
	sections = append(sections, components.HelpDialogSection{
		Title: "Contact form",
		Entries: []components.HelpEntry{
			{Key: "tab", Desc: "next field"},
			{Key: "shift+tab", Desc: "previous field"},
			{Key: "ctrl+s", Desc: "send message"},
			{Key: "esc", Desc: "leave form"},
		},
	})
	return sections
}
