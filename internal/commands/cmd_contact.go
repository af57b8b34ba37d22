package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/amelara/folio/internal/core/contact"
	"github.com/amelara/folio/pkg/iojson"
)

// ErrInvalidContact is returned when a contact submission fails validation.
var ErrInvalidContact = errors.New("contact form is invalid")

type ContactCmd struct {
	flags  *Flags
	reader iojson.FileReader[map[string]string]
	all    bool
	color  bool
}

// NewContactCmd creates the contact command.
func NewContactCmd(flags *Flags) *ContactCmd {
	return &ContactCmd{flags: flags}
}

func (cmd *ContactCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "contact",
		Usage: "Contact form tools",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate a contact submission",
				UsageText: "folio contact validate [-f file.json] [--all]",
				Description: `Reads a JSON object of field values and runs the contact form validator over it.

Fields: name, email, phone, subject, message. By default only required fields are
checked, exactly like submitting the form; --all also checks optional fields that
have a value, like leaving each field does.

Example:
  echo '{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there!"}' | folio contact validate`,
				Flags: []cli.Flag{
					cmd.reader.Flag(),
					&cli.BoolFlag{
						Name:        "all",
						Usage:       "also validate optional fields",
						Destination: &cmd.all,
					},
					&cli.BoolFlag{
						Name:        "color",
						Usage:       "colorize the JSON report (default: when stdout is a terminal)",
						Value:       term.IsTerminal(int(os.Stdout.Fd())),
						Destination: &cmd.color,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})
	return app
}

// ValidationReport is the JSON output of contact validate.
type ValidationReport struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (cmd *ContactCmd) runValidate(_ context.Context, c *cli.Command) error {
	input, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	report, err := ValidateContact(input, cmd.all)
	if err != nil {
		return err
	}

	if cmd.color {
		err = writeColorReport(c.Root().Writer, report)
	} else {
		err = writeReport(c.Root().Writer, c.Root().ErrWriter, report)
	}
	if err != nil {
		return err
	}
	if !report.Valid {
		return ErrInvalidContact
	}
	return nil
}

// ValidateContact runs the form validator over raw field values keyed by field name.
// Unknown field names are an error.
func ValidateContact(input map[string]string, all bool) (ValidationReport, error) {
	values := make(map[contact.FieldName]string, len(input))
	names := make([]string, 0, len(input))
	for k := range input {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		name, err := contact.ParseFieldName(k)
		if err != nil {
			return ValidationReport{}, err
		}
		values[name] = input[k]
	}

	form := contact.DefaultForm()
	form.Fill(values)

	valid := contact.ValidateForm(form)
	if all {
		for _, fld := range form.Fields() {
			if !fld.Required && fld.Value() != "" && !contact.ValidateField(fld) {
				valid = false
			}
		}
	}

	report := ValidationReport{Valid: valid}
	for _, fld := range form.Fields() {
		if msg, ok := fld.Error(); ok {
			if report.Errors == nil {
				report.Errors = make(map[string]string)
			}
			report.Errors[string(fld.Name)] = msg
		}
	}
	return report, nil
}

func writeColorReport(w io.Writer, report ValidationReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, colorizeJSON(data))
	return err
}

func writeReport(w, ew io.Writer, report ValidationReport) error {
	if err := iojson.WriteWith(w, ew, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
