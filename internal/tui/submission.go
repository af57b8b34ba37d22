package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/amelara/folio/internal/core/contact"
	"github.com/amelara/folio/internal/core/logging"
	"github.com/amelara/folio/internal/core/notify"
	"github.com/amelara/folio/internal/tui/components/form"
)

const (
	MsgFixErrors   = "Please fix the errors in the form."
	MsgSendSuccess = "Message sent successfully! I'll get back to you soon."
	MsgSendFailure = "Could not send your message. Please try again."
)

// submitResultMsg reports the outcome of one send.
type submitResultMsg struct {
	generation uint64
	err        error
}

// submissionController connects the contact form widget to the submission state
// machine and the sender.
type submissionController struct {
	sub    *contact.Submission
	form   *form.ContactForm
	sender contact.Sender
	ctx    context.Context
	log    zerolog.Logger
}

func newSubmissionController(ctx context.Context, f *form.ContactForm, sender contact.Sender, log zerolog.Logger) *submissionController {
	return &submissionController{
		sub:    contact.NewSubmission(f.Form()),
		form:   f,
		sender: sender,
		ctx:    ctx,
		log:    log,
	}
}

// State returns the submission state.
func (s *submissionController) State() contact.State { return s.sub.State() }

// Submit handles one submit event. It returns the notification to show, if any, and
// the command that performs the send.
func (s *submissionController) Submit() (*notify.Notification, tea.Cmd) {
	s.form.Sync()
	outcome, ticket := s.sub.Submit()
	s.form.Refresh()

	switch outcome {
	case contact.OutcomeIgnored:
		s.log.Debug().Msg("submit ignored, already submitting")
		return nil, nil
	case contact.OutcomeInvalid:
		s.log.Debug().Err(s.sub.Form().Errors()).Msg("submit rejected")
		n := notify.New(MsgFixErrors, notify.SeverityError)
		return &n, nil
	}

	ctx := logging.WithSubmission(s.ctx, ticket.Generation)
	s.log.Debug().Ctx(ctx).Msg("submit started")

	sender, payload, gen := s.sender, ticket.Payload, ticket.Generation
	send := func() tea.Msg {
		return submitResultMsg{generation: gen, err: sender.Send(ctx, payload)}
	}
	return nil, tea.Batch(s.form.SetBusy(true), send)
}

// Complete applies a send result. Stale results are dropped and yield no
// notification.
func (s *submissionController) Complete(msg submitResultMsg) *notify.Notification {
	if !s.sub.Complete(msg.generation, msg.err) {
		s.log.Debug().Uint64("generation", msg.generation).Msg("stale submit result dropped")
		return nil
	}

	s.form.SetBusy(false)
	s.form.Refresh()

	ctx := logging.WithSubmission(s.ctx, msg.generation)
	if msg.err != nil {
		s.log.Error().Ctx(ctx).Err(msg.err).Msg("submit failed")
		n := notify.New(MsgSendFailure, notify.SeverityError)
		return &n
	}

	s.log.Info().Ctx(ctx).Msg("submit succeeded")
	n := notify.New(MsgSendSuccess, notify.SeveritySuccess)
	return &n
}
