package contact

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() map[FieldName]string {
	return map[FieldName]string{
		FieldFullName: "Ada Lovelace",
		FieldEmail:    "ada@example.com",
		FieldPhone:    "",
		FieldSubject:  "projects",
		FieldMessage:  "I would like to talk about your work.",
	}
}

func TestValidateField(t *testing.T) {
	t.Run("decorates on failure", func(t *testing.T) {
		f := NewField(FieldEmail, "Email", true)
		f.SetValue("nope")

		assert.False(t, ValidateField(f))
		msg, ok := f.Error()
		assert.True(t, ok)
		assert.Equal(t, MsgInvalidEmail, msg)
	})

	t.Run("valid field has no decoration", func(t *testing.T) {
		f := NewField(FieldEmail, "Email", true)
		f.SetValue("a@b.c")

		assert.True(t, ValidateField(f))
		assert.True(t, ValidateField(f))
		_, ok := f.Error()
		assert.False(t, ok)
	})

	t.Run("revalidation replaces previous message", func(t *testing.T) {
		f := NewField(FieldFullName, "Name", true)
		assert.False(t, ValidateField(f))
		assert.False(t, ValidateField(f))

		msg, ok := f.Error()
		assert.True(t, ok)
		assert.Equal(t, MsgNameTooShort, msg)
	})

	t.Run("input clears decoration", func(t *testing.T) {
		f := NewField(FieldMessage, "Message", true)
		f.SetValue("short")
		require.False(t, ValidateField(f))

		f.SetValue("short!")
		_, ok := f.Error()
		assert.False(t, ok, "value change must clear the error immediately")
	})

	t.Run("same value keeps decoration", func(t *testing.T) {
		f := NewField(FieldMessage, "Message", true)
		f.SetValue("short")
		require.False(t, ValidateField(f))

		f.SetValue("short")
		_, ok := f.Error()
		assert.True(t, ok)
	})
}

func TestValidateForm_DoesNotShortCircuit(t *testing.T) {
	form := DefaultForm()
	form.Fill(map[FieldName]string{
		FieldFullName: "x",
		FieldEmail:    "bad",
		FieldSubject:  "projects",
		FieldMessage:  "tiny",
	})

	assert.False(t, ValidateForm(form))

	for _, name := range []FieldName{FieldFullName, FieldEmail, FieldMessage} {
		_, ok := form.Field(name).Error()
		assert.True(t, ok, "%s should be decorated", name)
	}
	_, ok := form.Field(FieldSubject).Error()
	assert.False(t, ok)
}

func TestValidateForm_SkipsOptionalFields(t *testing.T) {
	form := DefaultForm()
	values := validValues()
	values[FieldPhone] = "123"
	form.Fill(values)

	assert.True(t, ValidateForm(form), "phone is optional and not checked on submit")
	_, ok := form.Field(FieldPhone).Error()
	assert.False(t, ok)
}

func TestValidateForm_Valid(t *testing.T) {
	form := DefaultForm()
	form.Fill(validValues())

	assert.True(t, ValidateForm(form))
	assert.NoError(t, form.Errors())
}

func TestForm_Errors(t *testing.T) {
	form := DefaultForm()
	ValidateForm(form)

	err := form.Errors()
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)
	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, MsgNameTooShort, fieldErrs[0].Err.Error())
}

func TestForm_Reset(t *testing.T) {
	form := DefaultForm()
	form.Fill(map[FieldName]string{FieldFullName: "x", FieldEmail: "bad"})
	ValidateForm(form)

	form.Reset()

	for _, fld := range form.Fields() {
		assert.Empty(t, fld.Value())
		_, ok := fld.Error()
		assert.False(t, ok)
	}
}

func TestForm_FillIgnoresUnknown(t *testing.T) {
	form := DefaultForm()
	form.Fill(map[FieldName]string{"website": "x"})
	assert.Nil(t, form.Field("website"))
}
