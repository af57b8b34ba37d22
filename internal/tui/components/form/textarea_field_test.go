package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amelara/folio/pkg/tuitest"
)

func TestTextAreaField(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		f := NewTextAreaField("Message", "say hi", true)
		assert.Equal(t, "Message", f.Label())
		assert.Empty(t, f.Value())
	})

	t.Run("enter inserts a newline", func(t *testing.T) {
		f := NewTextAreaField("Message", "", true)
		f.Focus()

		f.Update(tuitest.KeyPress('a'))
		f.Update(tuitest.KeyEnter())
		f.Update(tuitest.KeyPress('b'))

		assert.Equal(t, "a\nb", f.Value())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextAreaField("Message", "", true)
		f.Update(tuitest.KeyPress('a'))
		assert.Empty(t, f.Value())
	})

	t.Run("error decoration", func(t *testing.T) {
		f := NewTextAreaField("Message", "", true)
		f.SetError("message too short")
		assert.Contains(t, tuitest.StripANSI(f.View()), "message too short")
	})
}
