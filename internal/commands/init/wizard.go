// Package initcmd scaffolds a portfolio content file and a config pointing at it.
package initcmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/styles"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath  string
	ContentPath string
	Yes         bool // skip prompts, use defaults
	Force       bool // overwrite existing files

	// Preset answers; empty values keep the sample's.
	Name    string
	Tagline string
	Email   string

	Out io.Writer
}

// Answers are the values collected by the prompts.
type Answers struct {
	Name     string
	Tagline  string
	Email    string
	Sections []string
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts   WizardOptions
	prompt func(*Answers, []content.Section) error
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Wizard{opts: opts, prompt: promptUser}
}

// Run executes the wizard.
func (w *Wizard) Run(_ context.Context) error {
	if Exists(w.opts.ContentPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("content exists at %s; use --force to overwrite", w.opts.ContentPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Content file already exists").
			Description(w.opts.ContentPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			w.printf("Init cancelled")
			return nil
		}
	}

	sample, err := content.Default()
	if err != nil {
		return err
	}

	answers := Answers{
		Name:    firstNonEmpty(w.opts.Name, sample.Name),
		Tagline: firstNonEmpty(w.opts.Tagline, sample.Tagline),
		Email:   firstNonEmpty(w.opts.Email, sample.Email),
	}
	for _, s := range sample.Sections {
		answers.Sections = append(answers.Sections, s.ID)
	}

	if !w.opts.Yes {
		if err := w.prompt(&answers, sample.Sections); err != nil {
			return err
		}
	}

	p := Apply(sample, answers)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("generated content is invalid: %w", err)
	}

	data, err := content.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := w.write(w.opts.ContentPath, data); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	w.success("Created content: %s", w.opts.ContentPath)

	if !Exists(w.opts.ConfigPath) {
		cfg, err := yaml.Marshal(map[string]string{"content": w.opts.ContentPath})
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := w.write(w.opts.ConfigPath, cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		w.success("Created config: %s", w.opts.ConfigPath)
	}

	w.printf("")
	w.printf("Next: edit %s, then run 'folio'", w.opts.ContentPath)
	return nil
}

// Apply returns a copy of sample with the answers filled in and only the chosen
// sections kept, in sample order.
func Apply(sample *content.Portfolio, a Answers) *content.Portfolio {
	keep := make(map[string]bool, len(a.Sections))
	for _, id := range a.Sections {
		keep[id] = true
	}

	p := *sample
	p.Name = strings.TrimSpace(a.Name)
	p.Tagline = strings.TrimSpace(a.Tagline)
	p.Email = strings.TrimSpace(a.Email)
	p.Sections = nil
	for _, s := range sample.Sections {
		if keep[s.ID] {
			p.Sections = append(p.Sections, s)
		}
	}
	return &p
}

func (w *Wizard) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	backupPath, err := Backup(path)
	if err != nil {
		return err
	}
	if backupPath != "" {
		w.success("Backed up %s to %s", path, backupPath)
	}
	return os.WriteFile(path, data, 0o644)
}

func (w *Wizard) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.opts.Out, format+"\n", args...)
}

func (w *Wizard) success(format string, args ...any) {
	w.printf(styles.TextSuccessStyle.Render("✓")+" "+format, args...)
}

func promptUser(a *Answers, sections []content.Section) error {
	options := make([]huh.Option[string], 0, len(sections))
	for _, s := range sections {
		options = append(options, huh.NewOption(s.Title, s.ID).Selected(true))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&a.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Tagline").
				Description("Shown under your name on the home section").
				Value(&a.Tagline),
			huh.NewInput().
				Title("Contact email").
				Value(&a.Email),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Sections").
				Description("Sample sections to start from").
				Options(options...).
				Value(&a.Sections),
		),
	)
	return form.Run()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
