package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette assigns colours to the roles a portfolio page uses.
type Palette struct {
	Light bool

	Brand color.Color // name in the header, active nav link, section titles
	Link  color.Color // card titles, markdown links
	Text  color.Color
	Muted color.Color
	Page  color.Color // page background, text on filled buttons
	Card  color.Color // card borders, scrolled header, idle buttons
	Bar   color.Color // far end of the skill bar gradient

	// toast borders
	Info    color.Color
	Success color.Color
	Warning color.Color
	Error   color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "folio"

var themes = map[string]Palette{
	"folio": {
		Brand:   lipgloss.Color("#2563eb"),
		Link:    lipgloss.Color("#38bdf8"),
		Text:    lipgloss.Color("#e2e8f0"),
		Muted:   lipgloss.Color("#64748b"),
		Page:    lipgloss.Color("#0f172a"),
		Card:    lipgloss.Color("#1e293b"),
		Bar:     lipgloss.Color("#7c3aed"),
		Info:    lipgloss.Color("#3b82f6"),
		Success: lipgloss.Color("#10b981"),
		Warning: lipgloss.Color("#f59e0b"),
		Error:   lipgloss.Color("#ef4444"),
	},
	"paper": {
		Light:   true,
		Brand:   lipgloss.Color("#1d4ed8"),
		Link:    lipgloss.Color("#0369a1"),
		Text:    lipgloss.Color("#1e293b"),
		Muted:   lipgloss.Color("#94a3b8"),
		Page:    lipgloss.Color("#f8fafc"),
		Card:    lipgloss.Color("#e2e8f0"),
		Bar:     lipgloss.Color("#6d28d9"),
		Info:    lipgloss.Color("#2563eb"),
		Success: lipgloss.Color("#047857"),
		Warning: lipgloss.Color("#b45309"),
		Error:   lipgloss.Color("#b91c1c"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns the markdown style for section bodies under the active theme.
// Headings are dropped to plain brand-coloured text since every section already has
// its own title bar.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if CurrentPalette.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	text := colorHexPtr(ColorText)
	brand := colorHexPtr(ColorBrand)
	link := colorHexPtr(ColorLink)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = text
	cfg.Paragraph.Color = text
	cfg.Item.Color = text
	cfg.Table.Color = text

	for _, h := range []*glamouransi.StyleBlock{&cfg.Heading, &cfg.H1, &cfg.H2, &cfg.H3, &cfg.H4, &cfg.H5, &cfg.H6} {
		h.Color = brand
		h.BackgroundColor = nil
	}

	cfg.Link.Color = link
	cfg.LinkText.Color = link
	cfg.Emph.Color = link
	cfg.Code.Color = link
	cfg.CodeBlock.Color = muted
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin

	return cfg
}
