package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/notify"
	"github.com/amelara/folio/internal/core/styles"
)

const toastWidth = 48

// ToastView renders the notification slot and composites it as an overlay.
type ToastView struct {
	center *NotificationCenter
	boxes  [notify.SeverityCount]lipgloss.Style
}

// NewToastView resolves the per-severity styles once for the active theme.
func NewToastView(center *NotificationCenter) *ToastView {
	v := &ToastView{center: center}
	for s := range notify.SeverityCount {
		v.boxes[s] = styles.ToastStyle(s).Width(toastWidth)
	}
	return v
}

// View renders the current notification, or "" when the slot is empty.
func (v *ToastView) View() string {
	n, ok := v.center.Current()
	if !ok {
		return ""
	}

	sev := n.Severity
	if !sev.Valid() {
		sev = notify.SeverityInfo
	}

	icon := lipgloss.NewStyle().Foreground(styles.SeverityColor(sev)).Render(styles.SeverityIcon(sev))
	closeHint := styles.TextMutedStyle.Render(styles.IconClose + " x")
	body := icon + " " + n.Message

	box := v.boxes[sev]
	if v.center.Leaving() {
		box = box.Faint(true)
	}

	inner := toastWidth - box.GetHorizontalFrameSize()
	gap := max(inner-lipgloss.Width(body)-lipgloss.Width(closeHint), 1)
	if lipgloss.Width(body)+gap+lipgloss.Width(closeHint) > inner {
		// Message wraps; put the close hint on its own line.
		return box.Render(lipgloss.JoinVertical(lipgloss.Right, body, closeHint))
	}
	return box.Render(body + lipgloss.NewStyle().Width(gap).Render("") + closeHint)
}

// Overlay composites the notification over background in the top-right corner,
// below the top rows.
func (v *ToastView) Overlay(background string, width, top int) string {
	toast := v.View()
	if toast == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toast)

	x := max(width-lipgloss.Width(toast)-1, 0)
	toastLayer.X(x).Y(max(top, 0)).Z(2)

	return lipgloss.NewCompositor(bgLayer, toastLayer).Render()
}
