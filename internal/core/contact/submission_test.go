package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmission_InvalidStaysIdle(t *testing.T) {
	s := NewSubmission(DefaultForm())

	outcome, ticket := s.Submit()

	assert.Equal(t, OutcomeInvalid, outcome)
	assert.Zero(t, ticket.Generation)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmission_SuccessResetsForm(t *testing.T) {
	form := DefaultForm()
	form.Fill(validValues())
	s := NewSubmission(form)

	outcome, ticket := s.Submit()
	require.Equal(t, OutcomeStarted, outcome)
	assert.Equal(t, StateSubmitting, s.State())
	assert.Equal(t, "Ada Lovelace", ticket.Payload.Name)

	assert.True(t, s.Complete(ticket.Generation, nil))
	assert.Equal(t, StateIdle, s.State())
	for _, fld := range form.Fields() {
		assert.Empty(t, fld.Value())
	}
}

func TestSubmission_FailureKeepsValues(t *testing.T) {
	form := DefaultForm()
	form.Fill(validValues())
	s := NewSubmission(form)

	_, ticket := s.Submit()
	assert.True(t, s.Complete(ticket.Generation, errors.New("boom")))

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, "ada@example.com", form.Field(FieldEmail).Value())
}

func TestSubmission_IgnoresReentrantSubmit(t *testing.T) {
	form := DefaultForm()
	form.Fill(validValues())
	s := NewSubmission(form)

	_, first := s.Submit()
	outcome, second := s.Submit()

	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Zero(t, second.Generation)
	assert.Equal(t, StateSubmitting, s.State())
	assert.True(t, s.Complete(first.Generation, nil))
}

func TestSubmission_DropsStaleCompletion(t *testing.T) {
	form := DefaultForm()
	form.Fill(validValues())
	s := NewSubmission(form)

	_, first := s.Submit()
	require.True(t, s.Complete(first.Generation, nil))

	form.Fill(validValues())
	_, second := s.Submit()

	assert.False(t, s.Complete(first.Generation, nil), "old generation must be ignored")
	assert.Equal(t, StateSubmitting, s.State())
	assert.True(t, s.Complete(second.Generation, nil))
	assert.False(t, s.Complete(second.Generation, nil), "completion is applied once")
}

func TestNewPayload_StripsMarkup(t *testing.T) {
	form := DefaultForm()
	values := validValues()
	values[FieldMessage] = "<script>alert(1)</script>hello <b>there</b>"
	form.Fill(values)

	p := NewPayload(form)
	assert.Equal(t, "hello there", p.Message)
}

func TestNewPayload_KeepsPlainTextIntact(t *testing.T) {
	form := DefaultForm()
	values := validValues()
	values[FieldFullName] = "O'Brien"
	values[FieldMessage] = `Tom & Jerry's "quote" 5 < 6`
	form.Fill(values)

	p := NewPayload(form)
	assert.Equal(t, "O'Brien", p.Name)
	assert.Equal(t, `Tom & Jerry's "quote" 5 < 6`, p.Message)
}

func TestSimulatedSender(t *testing.T) {
	t.Run("completes after delay", func(t *testing.T) {
		s := SimulatedSender{Delay: time.Millisecond, Logger: zerolog.Nop()}
		assert.NoError(t, s.Send(context.Background(), Payload{}))
	})

	t.Run("honours cancellation", func(t *testing.T) {
		s := SimulatedSender{Delay: time.Hour, Logger: zerolog.Nop()}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, s.Send(ctx, Payload{}), context.Canceled)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "unknown", State(9).String())
}
