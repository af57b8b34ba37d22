package tui

import (
	"fmt"
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/styles"
	"github.com/amelara/folio/internal/core/visibility"
	"github.com/amelara/folio/internal/tui/components/form"
)

const (
	minCardWidth = 34
	pageMargin   = 2
)

// sectionSpan is the rendered extent of one section.
type sectionSpan struct {
	id    string
	title string
	span  visibility.Span
}

// pageLayout is a rendered page plus the line geometry of every element on it.
type pageLayout struct {
	content  string
	lines    int
	sections []sectionSpan
	elements map[elementID]visibility.Span
	matches  int
}

func (l pageLayout) locate(id elementID) (visibility.Span, bool) {
	s, ok := l.elements[id]
	return s, ok
}

// activeSection returns the index of the last section starting at or above
// top+offset, or 0.
func (l pageLayout) activeSection(top, offset int) int {
	active := 0
	for i, s := range l.sections {
		if s.span.Top <= top+offset {
			active = i
		}
	}
	return active
}

// sectionIndex returns the index of the section with the given id.
func (l pageLayout) sectionIndex(id string) (int, bool) {
	for i, s := range l.sections {
		if s.id == id {
			return i, true
		}
	}
	return 0, false
}

// pageInput is everything the page depends on.
type pageInput struct {
	portfolio *content.Portfolio
	width     int
	animator  *Animator
	form      *form.ContactForm
	query     string
}

// pageRenderer lays out the portfolio. Rendered markdown is cached per section and
// dropped when the width changes.
type pageRenderer struct {
	width    int
	markdown map[string]string
	log      zerolog.Logger
}

func newPageRenderer(log zerolog.Logger) *pageRenderer {
	return &pageRenderer{markdown: make(map[string]string), log: log}
}

// pageBuilder accumulates blocks and tracks the current line.
type pageBuilder struct {
	blocks []string
	line   int
}

func (b *pageBuilder) add(block string) visibility.Span {
	span := visibility.Span{Top: b.line, Height: lipgloss.Height(block)}
	b.blocks = append(b.blocks, block)
	b.line += span.Height
	return span
}

func (b *pageBuilder) blank() { b.add("") }

func (r *pageRenderer) render(in pageInput) pageLayout {
	width := max(in.width-pageMargin*2, minCardWidth)
	if width != r.width {
		r.width = width
		clear(r.markdown)
	}

	layout := pageLayout{elements: make(map[elementID]visibility.Span)}
	var b pageBuilder
	query := strings.ToLower(strings.TrimSpace(in.query))

	for i, s := range in.portfolio.Sections {
		start := b.line
		b.add(styles.SectionTitleStyle.Width(width).Render(strconv.Itoa(i+1) + ". " + s.Title))

		if strings.TrimSpace(s.Body) != "" {
			b.add(r.renderMarkdown(s.ID, s.Body, width))
		}

		switch s.Kind {
		case content.KindCards:
			layout.matches += r.renderCards(&b, layout.elements, s, width, in.animator, query)
		case content.KindSkills:
			r.renderSkills(&b, layout.elements, s, in.animator)
		case content.KindStats:
			r.renderStats(&b, layout.elements, s, width, in.animator)
		case content.KindContact:
			if in.form != nil {
				b.blank()
				b.add(in.form.View())
			}
		}

		b.blank()
		layout.sections = append(layout.sections, sectionSpan{
			id:    s.ID,
			title: s.Title,
			span:  visibility.Span{Top: start, Height: b.line - start},
		})
	}

	margin := lipgloss.NewStyle().PaddingLeft(pageMargin)
	layout.content = margin.Render(strings.Join(b.blocks, "\n"))
	layout.lines = b.line
	return layout
}

func (r *pageRenderer) renderMarkdown(id, body string, width int) string {
	if out, ok := r.markdown[id]; ok {
		return out
	}

	out := body
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.log.Debug().Err(err).Str("section", id).Msg("failed to create markdown renderer, showing raw content")
	} else if rendered, err := renderer.Render(body); err != nil {
		r.log.Debug().Err(err).Str("section", id).Msg("failed to render markdown, showing raw content")
	} else {
		out = strings.Trim(rendered, "\n")
	}

	r.markdown[id] = out
	return out
}

func (r *pageRenderer) renderCards(b *pageBuilder, elems map[elementID]visibility.Span, s content.Section, width int, anim *Animator, query string) int {
	cols := max(width/minCardWidth, 1)
	cardWidth := width/cols - 1

	type rendered struct {
		path string
		view string
	}
	var visible []rendered
	for i, c := range s.Cards {
		if query != "" && !strings.Contains(c.Searchable(), query) {
			continue
		}
		path := s.CardPath(i)
		visible = append(visible, rendered{path: path, view: renderCard(c, cardWidth, anim == nil || anim.Revealed(path))})
	}

	for start := 0; start < len(visible); start += cols {
		row := visible[start:min(start+cols, len(visible))]
		views := make([]string, 0, len(row)*2)
		for i, c := range row {
			if i > 0 {
				views = append(views, " ")
			}
			views = append(views, c.view)
		}

		top := b.line
		b.add(lipgloss.JoinHorizontal(lipgloss.Top, views...))
		for _, c := range row {
			elems[cardID(c.path)] = visibility.Span{Top: top, Height: lipgloss.Height(c.view)}
		}
	}
	return len(visible)
}

func renderCard(c content.Card, width int, shown bool) string {
	inner := max(width-4, 1)
	parts := []string{styles.CardTitleStyle.Render(c.Title)}
	if c.Subtitle != "" {
		parts = append(parts, styles.TextMutedStyle.Render(c.Subtitle))
	}
	if c.Body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(inner).Render(c.Body))
	}
	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tags[i] = "#" + t
		}
		parts = append(parts, styles.TextPrimaryStyle.Render(strings.Join(tags, " ")))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if !shown {
		// Hidden cards keep their box size so revealing never shifts the layout.
		return styles.CardHiddenStyle.Width(width).Render(styles.TextMutedStyle.Render(ansi.Strip(body)))
	}
	return styles.CardStyle.Width(width).Render(body)
}

func (r *pageRenderer) renderSkills(b *pageBuilder, elems map[elementID]visibility.Span, s content.Section, anim *Animator) {
	b.blank()
	for i, sk := range s.Skills {
		id := barID(s.ID, i)
		bar := ""
		if anim != nil {
			bar = anim.BarView(id.path)
		}
		elems[id] = b.add(styles.SkillLabelStyle.Render(sk.Name) + bar)
	}
}

func (r *pageRenderer) renderStats(b *pageBuilder, elems map[elementID]visibility.Span, s content.Section, width int, anim *Animator) {
	b.blank()
	boxWidth := max(width/max(len(s.Stats), 1), 12)
	cols := max(width/boxWidth, 1)

	for start := 0; start < len(s.Stats); start += cols {
		end := min(start+cols, len(s.Stats))
		views := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			st := s.Stats[i]
			value := 0
			if anim != nil {
				value = anim.CounterValue(counterID(s.ID, i).path)
			}
			views = append(views, styles.StatBoxStyle.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
				styles.StatValueStyle.Render(fmt.Sprintf("%d%s", value, st.Suffix)),
				styles.StatLabelStyle.Render(st.Label),
			)))
		}

		top := b.line
		row := lipgloss.JoinHorizontal(lipgloss.Top, views...)
		b.add(row)
		for i := start; i < end; i++ {
			elems[counterID(s.ID, i)] = visibility.Span{Top: top, Height: lipgloss.Height(row)}
		}
	}
}
