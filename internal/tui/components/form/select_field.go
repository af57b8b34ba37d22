package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/styles"
)

// SelectField is a single-select form field wrapping list.Model. The first row is a
// placeholder whose value is empty, so an untouched select fails a required check.
type SelectField struct {
	decoration
	list list.Model
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	if item.value == "" {
		style = styles.TextMutedStyle
	}
	cursor := "  "
	if index == m.Index() {
		style = styles.MenuItemActiveStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// NewSelectField creates a single-select field from static options.
func NewSelectField(label, placeholder string, options []string, required bool) *SelectField {
	items := make([]list.Item, 0, len(options)+1)
	items = append(items, selectItem{label: placeholder})
	for _, opt := range options {
		items = append(items, selectItem{label: opt, value: opt})
	}

	const maxVisible = 6
	height := max(min(len(items), maxVisible), 1)

	l := list.New(items, selectDelegate{}, fieldWidth, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(items) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	return &SelectField{
		decoration: decoration{label: label, required: required},
		list:       l,
	}
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectField) View() string {
	if !f.focused {
		// Collapsed: only the current choice.
		item, _ := f.list.SelectedItem().(selectItem)
		style := styles.TextForegroundStyle
		if item.value == "" {
			style = styles.TextMutedStyle
		}
		return f.frame(style.Render(item.label))
	}
	return f.frame(f.list.View())
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() {
	f.focused = false
}

func (f *SelectField) Value() string {
	item, ok := f.list.SelectedItem().(selectItem)
	if !ok {
		return ""
	}
	return item.value
}

// SetValue selects the option equal to v, or the placeholder when none matches.
func (f *SelectField) SetValue(v string) {
	for i, it := range f.list.Items() {
		if si, ok := it.(selectItem); ok && si.value == v {
			f.list.Select(i)
			return
		}
	}
	f.list.Select(0)
}
