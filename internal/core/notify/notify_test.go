package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"info", SeverityInfo},
		{"success", SeveritySuccess},
		{"warning", SeverityWarning},
		{"error", SeverityError},
		{"", SeverityInfo},
		{"fatal", SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSeverity(tt.in))
		})
	}
}

func TestSeverity_String_roundtrips(t *testing.T) {
	for s := SeverityInfo; s < SeverityCount; s++ {
		assert.Equal(t, s, ParseSeverity(s.String()))
	}
	assert.Equal(t, "info", Severity(42).String())
}

func TestNew(t *testing.T) {
	a := New("hello", SeveritySuccess)
	b := New("hello", SeveritySuccess)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "every notification gets its own token")
	assert.Equal(t, SeveritySuccess, a.Severity)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestNew_InvalidSeverityFallsBack(t *testing.T) {
	n := New("x", Severity(-1))
	assert.Equal(t, SeverityInfo, n.Severity)
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	for s := SeverityInfo; s < SeverityCount; s++ {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var back Severity
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
}

func TestSeverity_UnmarshalText_rejectsUnknown(t *testing.T) {
	var s Severity
	err := s.UnmarshalText([]byte("fatal"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fatal"`)
}
