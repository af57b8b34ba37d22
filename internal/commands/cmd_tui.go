package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/logging"
	"github.com/amelara/folio/internal/tui"
	"github.com/amelara/folio/pkg/profiler"
)

type TuiCmd struct {
	flags     *Flags
	startedAt time.Time
}

// NewTuiCmd creates a new tui command. startedAt is the process start, used for the
// time-to-first-frame log.
func NewTuiCmd(flags *Flags, startedAt time.Time) *TuiCmd {
	return &TuiCmd{flags: flags, startedAt: startedAt}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("FOLIO_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	path := cmd.flags.ResolveContentPath()
	p, err := content.Load(path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, logging.Component(logging.CmpProfiler))
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	logger := logging.Component(logging.CmpTUI)
	model := tui.New(cmd.flags.Config, p, tui.Options{
		Logger:    &logger,
		StartedAt: cmd.startedAt,
	})

	log.Info().
		Str("content", path).
		Int("sections", len(p.Sections)).
		Msg("starting tui")

	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
