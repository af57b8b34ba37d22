// Package contact implements the contact form: per-field rules, field decoration,
// form-level verdicts, and the submission state machine.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldName is the logical name of a contact form field.
type FieldName string

const (
	FieldFullName FieldName = "name"
	FieldEmail    FieldName = "email"
	FieldPhone    FieldName = "phone"
	FieldSubject  FieldName = "subject"
	FieldMessage  FieldName = "message"
	fieldNameNone FieldName = ""
)

// FieldNames lists every field in form order.
var FieldNames = []FieldName{FieldFullName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// ParseFieldName returns the FieldName for s.
func ParseFieldName(s string) (FieldName, error) {
	for _, n := range FieldNames {
		if string(n) == s {
			return n, nil
		}
	}
	return fieldNameNone, fmt.Errorf("unknown field %q", s)
}

// Validation messages.
const (
	MsgNameTooShort    = "name too short"
	MsgInvalidEmail    = "invalid email"
	MsgPhoneTooShort   = "phone too short"
	MsgMessageTooShort = "message too short"
	MsgSubjectRequired = "subject required"
)

const (
	minNameLen    = 2
	minPhoneLen   = 10
	minMessageLen = 10
)

// RE2's \s is ASCII only; \v, separators and the BOM count as whitespace too.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Result is the outcome of validating one value.
type Result struct {
	Valid   bool
	Message string
}

func pass() Result           { return Result{Valid: true} }
func fail(msg string) Result { return Result{Message: msg} }

// Validate applies the rule for name to value. It is a pure function of its inputs;
// value is trimmed before any rule runs. Unknown names always pass.
func Validate(name FieldName, value string) Result {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)

	switch name {
	case FieldFullName:
		if n < minNameLen {
			return fail(MsgNameTooShort)
		}
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return fail(MsgInvalidEmail)
		}
	case FieldPhone:
		// optional; only the length is checked, not the characters
		if n > 0 && n < minPhoneLen {
			return fail(MsgPhoneTooShort)
		}
	case FieldMessage:
		if n < minMessageLen {
			return fail(MsgMessageTooShort)
		}
	case FieldSubject:
		if n == 0 {
			return fail(MsgSubjectRequired)
		}
	}

	return pass()
}
