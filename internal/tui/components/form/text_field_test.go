package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amelara/folio/pkg/tuitest"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("Name", "enter name", true)
		assert.Equal(t, "Name", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", false)
		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", false)
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("typing when focused", func(t *testing.T) {
		f := NewTextField("Name", "", false)
		f.Focus()
		for _, msg := range tuitest.Type("ada") {
			f.Update(msg)
		}
		assert.Equal(t, "ada", f.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewTextField("Name", "", false)
		f.SetValue("typed text")
		assert.Equal(t, "typed text", f.Value())
	})

	t.Run("required marker", func(t *testing.T) {
		view := tuitest.StripANSI(NewTextField("Email", "", true).View())
		assert.Contains(t, view, "Email *")

		view = tuitest.StripANSI(NewTextField("Phone", "", false).View())
		assert.NotContains(t, view, "Phone *")
	})

	t.Run("error decoration is rendered and cleared", func(t *testing.T) {
		f := NewTextField("Email", "", true)
		f.SetError("invalid email")
		assert.Contains(t, tuitest.StripANSI(f.View()), "invalid email")

		f.SetError("")
		assert.NotContains(t, tuitest.StripANSI(f.View()), "invalid email")
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("Name", "", false)
		unfocused := f.View()

		f.Focus()
		assert.NotEqual(t, unfocused, f.View())
	})
}
