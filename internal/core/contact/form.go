package contact

import (
	"errors"

	"github.com/hay-kot/criterio"
)

// Form is an ordered set of fields.
type Form struct {
	fields []*Field
}

// NewForm creates a form over the given fields, preserving their order.
func NewForm(fields ...*Field) *Form {
	return &Form{fields: fields}
}

// DefaultForm returns the portfolio contact form. Phone is optional and therefore
// only checked on blur, never on submit.
func DefaultForm() *Form {
	return NewForm(
		NewField(FieldFullName, "Name", true),
		NewField(FieldEmail, "Email", true),
		NewField(FieldPhone, "Phone", false),
		NewField(FieldSubject, "Subject", true),
		NewField(FieldMessage, "Message", true),
	)
}

// Fields returns the form's fields in order.
func (f *Form) Fields() []*Field { return f.fields }

// Field returns the field with the given name, or nil.
func (f *Form) Field(name FieldName) *Field {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld
		}
	}
	return nil
}

// Required returns the fields flagged required.
func (f *Form) Required() []*Field {
	out := make([]*Field, 0, len(f.fields))
	for _, fld := range f.fields {
		if fld.Required {
			out = append(out, fld)
		}
	}
	return out
}

// ValidateForm validates every required field and returns the aggregate verdict.
// All required fields are visited, so one pass decorates every failing field.
func ValidateForm(form *Form) bool {
	ok := true
	for _, fld := range form.Required() {
		if !ValidateField(fld) {
			ok = false
		}
	}
	return ok
}

// Errors returns the currently decorated fields as criterio field errors, or nil.
func (f *Form) Errors() error {
	var errs criterio.FieldErrorsBuilder
	for _, fld := range f.fields {
		if msg, ok := fld.Error(); ok {
			errs = errs.Append(string(fld.Name), errors.New(msg))
		}
	}
	return errs.ToError()
}

// Values returns a snapshot of every field value keyed by name.
func (f *Form) Values() map[FieldName]string {
	out := make(map[FieldName]string, len(f.fields))
	for _, fld := range f.fields {
		out[fld.Name] = fld.value
	}
	return out
}

// Fill sets values by name. Unknown names are ignored.
func (f *Form) Fill(values map[FieldName]string) {
	for name, v := range values {
		if fld := f.Field(name); fld != nil {
			fld.SetValue(v)
		}
	}
}

// Reset empties every value and clears all decorations.
func (f *Form) Reset() {
	for _, fld := range f.fields {
		fld.value = ""
		fld.ClearError()
	}
}
