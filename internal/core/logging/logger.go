package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component names.
const (
	CmpTUI      = "tui"
	CmpProfiler = "profiler"
)

const (
	componentKey    = "cmp"
	subcomponentKey = "sub"
)

// Component derives a logger from the global one, tagged with cmp=name.
func Component(name string) zerolog.Logger {
	return log.With().Str(componentKey, name).Logger()
}

// Sub tags l with a part of its component (sub=name), leaving cmp untouched so a
// single JSON entry never carries the key twice.
func Sub(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(subcomponentKey, name).Logger()
}
