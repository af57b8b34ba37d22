package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		field FieldName
		value string
		want  Result
	}{
		{"name empty", FieldFullName, "", fail(MsgNameTooShort)},
		{"name one char", FieldFullName, "a", fail(MsgNameTooShort)},
		{"name trimmed to one char", FieldFullName, "  a  ", fail(MsgNameTooShort)},
		{"name two chars", FieldFullName, "Al", pass()},
		{"name multibyte", FieldFullName, "Jö", pass()},

		{"email valid", FieldEmail, "a@b.c", pass()},
		{"email with spaces around", FieldEmail, " user@example.com ", pass()},
		{"email no at", FieldEmail, "abc", fail(MsgInvalidEmail)},
		{"email no dot", FieldEmail, "a@b", fail(MsgInvalidEmail)},
		{"email inner space", FieldEmail, "a b@c.d", fail(MsgInvalidEmail)},
		{"email inner nbsp", FieldEmail, "a\u00a0b@c.d", fail(MsgInvalidEmail)},
		{"email inner vertical tab", FieldEmail, "a\vb@c.d", fail(MsgInvalidEmail)},
		{"email ideographic space in domain", FieldEmail, "a@b\u3000c.d", fail(MsgInvalidEmail)},
		{"email double at", FieldEmail, "a@@b.c", fail(MsgInvalidEmail)},
		{"email empty", FieldEmail, "", fail(MsgInvalidEmail)},

		{"phone empty is optional", FieldPhone, "", pass()},
		{"phone whitespace is empty", FieldPhone, "   ", pass()},
		{"phone short", FieldPhone, "12345", fail(MsgPhoneTooShort)},
		{"phone ten chars", FieldPhone, "1234567890", pass()},
		{"phone letters allowed", FieldPhone, "abcdefghij", pass()},

		{"message short", FieldMessage, "short", fail(MsgMessageTooShort)},
		{"message long enough", FieldMessage, "this is long enough", pass()},
		{"message exactly ten", FieldMessage, "0123456789", pass()},

		{"subject empty", FieldSubject, "", fail(MsgSubjectRequired)},
		{"subject blank", FieldSubject, " \t", fail(MsgSubjectRequired)},
		{"subject set", FieldSubject, "projects", pass()},

		{"unknown field passes", FieldName("website"), "", pass()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.field, tt.value))
		})
	}
}

func TestValidate_IsPure(t *testing.T) {
	inputs := []string{"", "x", "a@b.c", strings.Repeat("z", 12)}
	for _, name := range FieldNames {
		for _, in := range inputs {
			first := Validate(name, in)
			for range 3 {
				assert.Equal(t, first, Validate(name, in), "%s(%q)", name, in)
			}
		}
	}
}

func TestParseFieldName(t *testing.T) {
	for _, n := range FieldNames {
		got, err := ParseFieldName(string(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := ParseFieldName("nome")
	assert.Error(t, err)
}
