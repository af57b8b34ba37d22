package form

// selectItem is the list item used by the select field. The placeholder item has an
// empty value.
type selectItem struct {
	label string
	value string
}

func (i selectItem) FilterValue() string { return i.label }
