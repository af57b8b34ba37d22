package visibility

// Span is the vertical extent of an element in page lines.
type Span struct {
	Top    int
	Height int
}

// Bottom returns the first line after the span.
func (s Span) Bottom() int { return s.Top + s.Height }

// Viewport is the visible window of the page in lines.
type Viewport struct {
	Top    int
	Height int
}

// Fraction returns how much of span is inside view, in [0, 1]. bottomMargin shrinks
// the view from the bottom, so elements only count once they have moved that many
// lines past the bottom edge. A zero-height span counts as fully visible when its
// line is inside the view.
func Fraction(span Span, view Viewport, bottomMargin int) float64 {
	viewTop := view.Top
	viewBottom := view.Top + max(view.Height-bottomMargin, 0)
	if viewBottom <= viewTop {
		return 0
	}

	if span.Height <= 0 {
		if span.Top >= viewTop && span.Top < viewBottom {
			return 1
		}
		return 0
	}

	overlap := min(span.Bottom(), viewBottom) - max(span.Top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(span.Height)
}
