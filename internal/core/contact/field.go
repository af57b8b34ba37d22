package contact

// Field is one labeled input of the contact form. Validity is never stored; it is
// recomputed on every validation pass. The only mutable state besides the value is the
// error decoration shown next to the input.
type Field struct {
	Name     FieldName
	Label    string
	Required bool

	value   string
	errMsg  string
	errored bool
}

// NewField creates an empty field.
func NewField(name FieldName, label string, required bool) *Field {
	return &Field{Name: name, Label: label, Required: required}
}

// Value returns the current raw value.
func (f *Field) Value() string { return f.value }

// SetValue replaces the value. Any change clears the error decoration; errors are
// advisory between blur events and never enforced live.
func (f *Field) SetValue(v string) {
	if v == f.value {
		return
	}
	f.value = v
	f.ClearError()
}

// Error returns the decoration message and whether the field is currently errored.
func (f *Field) Error() (string, bool) { return f.errMsg, f.errored }

// ClearError removes the decoration. Safe to call on an undecorated field.
func (f *Field) ClearError() {
	f.errMsg = ""
	f.errored = false
}

func (f *Field) decorate(msg string) {
	f.errMsg = msg
	f.errored = true
}

// ValidateField re-runs the field's rule. The previous decoration is always removed
// first so repeated validation never stacks messages.
func ValidateField(f *Field) bool {
	f.ClearError()

	res := Validate(f.Name, f.value)
	if !res.Valid {
		f.decorate(res.Message)
	}
	return res.Valid
}
