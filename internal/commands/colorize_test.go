package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amelara/folio/pkg/tuitest"
)

func TestColorizeJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"report", `{"valid":false,"errors":{"email":"invalid email"}}`, []string{`"valid": false`, `"email": "invalid email"`}},
		{"numbers and null", `{"n":-4.5e2,"x":null}`, []string{`"n": -4.5e2`, `"x": null`}},
		{"escaped quote", `{"msg":"say \"hi\""}`, []string{`"msg": "say \"hi\""`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tuitest.StripANSI(colorizeJSON([]byte(tt.input)))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.Contains(t, out, "\n", "output is indented")
		})
	}
}

func TestColorizeJSON_invalidPassesThrough(t *testing.T) {
	assert.Equal(t, "not json", colorizeJSON([]byte("not json")))
}
