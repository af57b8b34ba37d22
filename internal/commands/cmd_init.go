package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/amelara/folio/internal/commands/init"
)

type InitCmd struct {
	flags   *Flags
	yes     bool
	force   bool
	output  string
	name    string
	tagline string
	email   string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a portfolio content file with an interactive wizard",
		UsageText: "folio init [options]",
		Description: `Scaffolds a content file from the built-in sample.

The wizard will:
  - Ask for your name, tagline and contact email
  - Let you pick which sample sections to keep
  - Write the content file and, if missing, a config pointing at it

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing content file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing content",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path of the content file to write",
				Value:       DefaultContentPath(),
				Destination: &cmd.output,
			},
			&cli.StringFlag{Name: "name", Usage: "your name", Destination: &cmd.name},
			&cli.StringFlag{Name: "tagline", Usage: "tagline under your name", Destination: &cmd.tagline},
			&cli.StringFlag{Name: "email", Usage: "contact email", Destination: &cmd.email},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath:  cmd.flags.ConfigPath,
		ContentPath: cmd.output,
		Yes:         cmd.yes,
		Force:       cmd.force,
		Name:        cmd.name,
		Tagline:     cmd.tagline,
		Email:       cmd.email,
		Out:         c.Root().Writer,
	})
	return wizard.Run(ctx)
}
