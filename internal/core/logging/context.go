package logging

import "context"

type contextKey string

const (
	submissionKey contextKey = "submission"
	sectionKey    contextKey = "section"
)

// WithSubmission tags the context with a submission generation.
func WithSubmission(ctx context.Context, gen uint64) context.Context {
	return context.WithValue(ctx, submissionKey, gen)
}

// WithSection tags the context with the page section being acted on.
func WithSection(ctx context.Context, section string) context.Context {
	return context.WithValue(ctx, sectionKey, section)
}

// GetSubmission retrieves the submission generation from the context.
// Returns 0 if not present.
func GetSubmission(ctx context.Context) uint64 {
	if gen, ok := ctx.Value(submissionKey).(uint64); ok {
		return gen
	}
	return 0
}

// GetSection retrieves the section from the context.
// Returns empty string if not present.
func GetSection(ctx context.Context) string {
	if s, ok := ctx.Value(sectionKey).(string); ok {
		return s
	}
	return ""
}
