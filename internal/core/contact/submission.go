package contact

import (
	"context"
	"html"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// State is the submission lifecycle state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Outcome describes what a submit event did.
type Outcome int

const (
	// OutcomeIgnored means a submission was already in flight.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid means the verdict was false; the form stays Idle and decorated.
	OutcomeInvalid
	// OutcomeStarted means the form moved to Submitting and a Ticket was issued.
	OutcomeStarted
)

// Payload is the sanitised form content handed to a Sender.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var stripMarkup = bluemonday.StrictPolicy()

// NewPayload snapshots the form values, stripping any markup. The sanitizer escapes
// entities on output, so the result is unescaped back to plain text.
func NewPayload(form *Form) Payload {
	v := form.Values()
	clean := func(name FieldName) string { return html.UnescapeString(stripMarkup.Sanitize(v[name])) }
	return Payload{
		Name:    clean(FieldFullName),
		Email:   clean(FieldEmail),
		Phone:   clean(FieldPhone),
		Subject: clean(FieldSubject),
		Message: clean(FieldMessage),
	}
}

// Sender delivers a payload. Implementations must honour ctx cancellation.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// SimulatedSender stands in for a network call: it waits Delay and logs the payload.
type SimulatedSender struct {
	Delay  time.Duration
	Logger zerolog.Logger
}

func (s SimulatedSender) Send(ctx context.Context, p Payload) error {
	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	s.Logger.Info().
		Ctx(ctx).
		Str("name", p.Name).
		Str("email", p.Email).
		Str("phone", p.Phone).
		Str("subject", p.Subject).
		Int("message_len", len(p.Message)).
		Msg("contact form sent")
	return nil
}

// Ticket identifies one in-flight submission.
type Ticket struct {
	Generation uint64
	Payload    Payload
}

// Submission owns the submission state of one form.
//
//	Idle --submit, invalid--> Idle
//	Idle --submit, valid----> Submitting
//	Submitting --complete---> Idle
//
// Submit events while Submitting are ignored.
type Submission struct {
	form       *Form
	state      State
	generation uint64
}

func NewSubmission(form *Form) *Submission {
	return &Submission{form: form}
}

func (s *Submission) State() State { return s.state }

// Form returns the form this submission drives.
func (s *Submission) Form() *Form { return s.form }

// Submit handles a submit event.
func (s *Submission) Submit() (Outcome, Ticket) {
	if s.state == StateSubmitting {
		return OutcomeIgnored, Ticket{}
	}

	if !ValidateForm(s.form) {
		return OutcomeInvalid, Ticket{}
	}

	s.generation++
	s.state = StateSubmitting
	return OutcomeStarted, Ticket{Generation: s.generation, Payload: NewPayload(s.form)}
}

// Complete finishes the submission identified by gen. On success the form is reset;
// on failure values are kept so the user does not lose input. Completions for stale
// or unknown generations are dropped and reported as false.
func (s *Submission) Complete(gen uint64, err error) bool {
	if s.state != StateSubmitting || gen != s.generation {
		return false
	}

	s.state = StateIdle
	if err == nil {
		s.form.Reset()
	}
	return true
}
