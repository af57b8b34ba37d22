package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/styles"
)

type ContentCmd struct {
	flags *Flags
}

// NewContentCmd creates the content command.
func NewContentCmd(flags *Flags) *ContentCmd {
	return &ContentCmd{flags: flags}
}

func (cmd *ContentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "content",
		Usage: "Portfolio content tools",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate a content file",
				UsageText: "folio content check [path]",
				Description: `Loads the content file and reports every structural problem.

Without a path the file from --content or the config is checked; with neither, the
built-in sample is checked.`,
				Action: cmd.runCheck,
			},
			{
				Name:      "sample",
				Usage:     "Print the built-in sample content",
				UsageText: "folio content sample > portfolio.yaml",
				Action:    cmd.runSample,
			},
		},
	})
	return app
}

func (cmd *ContentCmd) runCheck(_ context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		path = cmd.flags.ResolveContentPath()
	}
	return CheckContent(c.Root().Writer, path)
}

// CheckContent loads and validates the content at path, printing a summary to w.
func CheckContent(w io.Writer, path string) error {
	name := path
	if name == "" {
		name = "built-in sample"
	}

	p, err := content.Load(path)
	if err != nil {
		return err
	}

	if err := p.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", styles.TextErrorStyle.Render("✗"), name)
		for _, fe := range fieldErrs {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", styles.TextPrimaryStyle.Render(fe.Field), fe.Err)
		}
		return fmt.Errorf("%d problem(s) in %s", len(fieldErrs), name)
	}

	_, _ = fmt.Fprintf(w, "%s %s: %d sections\n", styles.TextSuccessStyle.Render("✓"), name, len(p.Sections))
	return nil
}

func (cmd *ContentCmd) runSample(_ context.Context, c *cli.Command) error {
	p, err := content.Default()
	if err != nil {
		return err
	}
	out, err := content.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	_, err = c.Root().Writer.Write(out)
	return err
}
