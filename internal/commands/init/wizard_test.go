package initcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amelara/folio/internal/core/config"
	"github.com/amelara/folio/internal/core/content"
)

func testOptions(t *testing.T) WizardOptions {
	t.Helper()
	dir := t.TempDir()
	return WizardOptions{
		ConfigPath:  filepath.Join(dir, "config.yaml"),
		ContentPath: filepath.Join(dir, "content", "portfolio.yaml"),
		Yes:         true,
		Name:        "Grace Hopper",
		Out:         &bytes.Buffer{},
	}
}

func TestWizard_Run_writesContentAndConfig(t *testing.T) {
	opts := testOptions(t)

	require.NoError(t, NewWizard(opts).Run(context.Background()))

	p, err := content.Load(opts.ContentPath)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", p.Name)
	require.NoError(t, p.Validate())

	cfg, err := config.Load(opts.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, opts.ContentPath, cfg.Content)
}

func TestWizard_Run_refusesOverwriteWithoutForce(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(opts.ContentPath), 0o755))
	require.NoError(t, os.WriteFile(opts.ContentPath, []byte("name: old\n"), 0o644))

	err := NewWizard(opts).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestWizard_Run_forceBacksUp(t *testing.T) {
	opts := testOptions(t)
	opts.Force = true
	require.NoError(t, os.MkdirAll(filepath.Dir(opts.ContentPath), 0o755))
	require.NoError(t, os.WriteFile(opts.ContentPath, []byte("name: old\n"), 0o644))

	require.NoError(t, NewWizard(opts).Run(context.Background()))

	backup, err := os.ReadFile(opts.ContentPath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "name: old\n", string(backup))
}

func TestWizard_Run_usesPromptAnswers(t *testing.T) {
	opts := testOptions(t)
	opts.Yes = false

	w := NewWizard(opts)
	w.prompt = func(a *Answers, _ []content.Section) error {
		a.Tagline = "Compilers"
		a.Sections = []string{"home", "contact"}
		return nil
	}
	require.NoError(t, w.Run(context.Background()))

	p, err := content.Load(opts.ContentPath)
	require.NoError(t, err)
	assert.Equal(t, "Compilers", p.Tagline)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "home", p.Sections[0].ID)
	assert.Equal(t, "contact", p.Sections[1].ID)
}

func TestApply_invalidWhenNoSections(t *testing.T) {
	sample, err := content.Default()
	require.NoError(t, err)

	p := Apply(sample, Answers{Name: "x"})
	assert.Empty(t, p.Sections)
	assert.Error(t, p.Validate())
	assert.NotEmpty(t, sample.Sections, "sample is not modified")
}

func TestBackup_missingFile(t *testing.T) {
	path, err := Backup(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, path)
}
