// Package notify defines the transient notifications shown to the user.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity represents the tone of a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError

	// SeverityCount is the number of severities. Tables indexed by Severity are sized
	// with it so a new severity fails to compile until every table is extended.
	SeverityCount
)

var severityNames = [SeverityCount]string{
	SeverityInfo:    "info",
	SeveritySuccess: "success",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if s < 0 || s >= SeverityCount {
		return severityNames[SeverityInfo]
	}
	return severityNames[s]
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool { return s >= 0 && s < SeverityCount }

// ParseSeverity maps a name to a Severity. Unknown names fall back to info.
func ParseSeverity(name string) Severity {
	for i, n := range severityNames {
		if n == name {
			return Severity(i)
		}
	}
	return SeverityInfo
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a severity name. Unlike ParseSeverity it rejects unknown
// names, so a typo in a document is reported rather than shown as info.
func (s *Severity) UnmarshalText(b []byte) error {
	name := string(b)
	parsed := ParseSeverity(name)
	if parsed.String() != name {
		return fmt.Errorf("unknown severity %q (available: %v)", name, severityNames)
	}
	*s = parsed
	return nil
}

// Notification represents a single notification event. ID is unique per
// notification and is captured by scheduled callbacks to detect stale timers.
type Notification struct {
	ID        string
	Severity  Severity
	Message   string
	CreatedAt time.Time
}

// New creates a notification with a fresh ID.
func New(message string, severity Severity) Notification {
	if !severity.Valid() {
		severity = SeverityInfo
	}
	return Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
