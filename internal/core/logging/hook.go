package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts submission and section from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if gen := GetSubmission(ctx); gen != 0 {
		e.Uint64("submission", gen)
	}

	if section := GetSection(ctx); section != "" {
		e.Str("section", section)
	}
}
