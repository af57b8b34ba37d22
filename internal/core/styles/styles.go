// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/notify"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Colours of the active palette, one per role.
var (
	ColorBrand   color.Color
	ColorLink    color.Color
	ColorText    color.Color
	ColorMuted   color.Color
	ColorPage    color.Color
	ColorCard    color.Color
	ColorBar     color.Color
	ColorInfo    color.Color
	ColorSuccess color.Color
	ColorWarning color.Color
	ColorError   color.Color
)

// Style exports.
var (
	// CLI styles.
	DividerStyle lipgloss.Style

	// Text.
	TextForegroundStyle  lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextPrimaryStyle     lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style
	TextSuccessStyle     lipgloss.Style
	TextErrorStyle       lipgloss.Style

	// Header / navigation.
	HeaderStyle         lipgloss.Style
	HeaderScrolledStyle lipgloss.Style
	BrandStyle          lipgloss.Style
	NavLinkStyle        lipgloss.Style
	NavLinkActiveStyle  lipgloss.Style
	MenuStyle           lipgloss.Style
	MenuItemStyle       lipgloss.Style
	MenuItemActiveStyle lipgloss.Style
	MenuItemCursorStyle lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	FilterPromptStyle   lipgloss.Style

	// Help dialog.
	TextForegroundBoldStyle lipgloss.Style
	HelpDialogSectionStyle  lipgloss.Style
	HelpDialogModalStyle    lipgloss.Style

	// Page content.
	SectionTitleStyle lipgloss.Style
	CardStyle         lipgloss.Style
	CardHiddenStyle   lipgloss.Style
	CardTitleStyle    lipgloss.Style
	SkillLabelStyle   lipgloss.Style
	StatValueStyle    lipgloss.Style
	StatLabelStyle    lipgloss.Style
	StatBoxStyle      lipgloss.Style

	// Contact form.
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormFieldErrorStyle   lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
	ButtonStyle           lipgloss.Style
	ButtonFocusedStyle    lipgloss.Style
	ButtonBusyStyle       lipgloss.Style
)

// toastStyles and severityIcons are indexed by notify.Severity; their array length
// makes a missing severity a compile error.
var (
	toastStyles   [notify.SeverityCount]lipgloss.Style
	severityIcons = [notify.SeverityCount]*string{
		notify.SeverityInfo:    &IconNotifyInfo,
		notify.SeveritySuccess: &IconNotifySuccess,
		notify.SeverityWarning: &IconNotifyWarning,
		notify.SeverityError:   &IconNotifyError,
	}
)

// ToastStyle returns the toast box style for a severity.
func ToastStyle(s notify.Severity) lipgloss.Style {
	if !s.Valid() {
		s = notify.SeverityInfo
	}
	return toastStyles[s]
}

// SeverityIcon returns the icon for a severity.
func SeverityIcon(s notify.Severity) string {
	if !s.Valid() {
		s = notify.SeverityInfo
	}
	return *severityIcons[s]
}

// SeverityColor returns the palette color for a severity.
func SeverityColor(s notify.Severity) color.Color {
	colors := [notify.SeverityCount]color.Color{
		notify.SeverityInfo:    ColorInfo,
		notify.SeveritySuccess: ColorSuccess,
		notify.SeverityWarning: ColorWarning,
		notify.SeverityError:   ColorError,
	}
	if !s.Valid() {
		s = notify.SeverityInfo
	}
	return colors[s]
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorBrand = p.Brand
	ColorLink = p.Link
	ColorText = p.Text
	ColorMuted = p.Muted
	ColorPage = p.Page
	ColorCard = p.Card
	ColorBar = p.Bar
	ColorInfo = p.Info
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorText)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorBrand)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	HeaderStyle = lipgloss.NewStyle().
		Padding(0, 1)
	HeaderScrolledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorCard)
	BrandStyle = lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true)
	NavLinkStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	NavLinkActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true).
		Underline(true)
	MenuStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBrand).
		Padding(0, 1)
	MenuItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)
	MenuItemActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true)
	MenuItemCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPage).
		Background(ColorBrand)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	TextForegroundBoldStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorLink).
		Bold(true)
	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBrand).
		Padding(1, 2)
	FilterPromptStyle = lipgloss.NewStyle().
		Foreground(ColorLink).
		Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorCard)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorCard).
		Padding(0, 1)
	CardHiddenStyle = lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Foreground(ColorCard).
		Faint(true).
		Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorLink).
		Bold(true)
	SkillLabelStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Width(16)
	StatValueStyle = lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true)
	StatLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatBoxStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Align(lipgloss.Center)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorBrand).
		PaddingLeft(1)
	FormFieldErrorStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorError).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorCard).
		Foreground(ColorText)
	ButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorBrand).
		Foreground(ColorPage).
		Bold(true)
	ButtonBusyStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorCard).
		Foreground(ColorMuted).
		Italic(true)

	for s := notify.Severity(0); s < notify.SeverityCount; s++ {
		toastStyles[s] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SeverityColor(s)).
			Foreground(ColorText).
			Padding(0, 1)
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
