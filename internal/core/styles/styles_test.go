package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amelara/folio/internal/core/notify"
)

func TestSeverityIcon_EverySeverityHasDistinctIcon(t *testing.T) {
	seen := map[string]notify.Severity{}
	for s := notify.Severity(0); s < notify.SeverityCount; s++ {
		icon := SeverityIcon(s)
		assert.NotEmpty(t, icon, s.String())
		if prev, dup := seen[icon]; dup {
			t.Errorf("%s and %s share icon %q", prev, s, icon)
		}
		seen[icon] = s
	}
}

func TestSeverityIcon_InvalidFallsBackToInfo(t *testing.T) {
	assert.Equal(t, IconNotifyInfo, SeverityIcon(notify.Severity(99)))
	assert.Equal(t, ColorInfo, SeverityColor(notify.Severity(-3)))
}

func TestSetTheme_RebuildsSeverityColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("paper")
	assert.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p.Error, SeverityColor(notify.SeverityError))
	assert.Equal(t, p.Success, SeverityColor(notify.SeveritySuccess))
	assert.Equal(t, p.Info, SeverityColor(notify.SeverityInfo))
}

func TestThemes_EveryRoleIsSet(t *testing.T) {
	for _, name := range ThemeNames() {
		p, _ := GetPalette(name)
		roles := map[string]any{
			"brand": p.Brand, "link": p.Link, "text": p.Text, "muted": p.Muted,
			"page": p.Page, "card": p.Card, "bar": p.Bar, "info": p.Info,
			"success": p.Success, "warning": p.Warning, "error": p.Error,
		}
		for role, c := range roles {
			assert.NotNil(t, c, "%s: %s", name, role)
		}
	}
}

func TestThemeNames_IncludesDefault(t *testing.T) {
	assert.Contains(t, ThemeNames(), DefaultTheme)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	cfg := GlamourStyle()
	assert.Equal(t, colorHexPtr(ColorBrand), cfg.H2.Color)
	assert.Equal(t, colorHexPtr(ColorLink), cfg.Link.Color)
	assert.Nil(t, cfg.H1.BackgroundColor)

	light, _ := GetPalette("paper")
	SetTheme(light)
	cfg = GlamourStyle()
	assert.Equal(t, colorHexPtr(light.Text), cfg.Document.Color)
}
