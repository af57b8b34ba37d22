package tui

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amelara/folio/internal/core/contact"
	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/tui/components/form"
	"github.com/amelara/folio/pkg/tuitest"
)

func renderTestPage(t *testing.T, query string) (pageLayout, *Animator) {
	t.Helper()
	p := testPortfolio()
	a := newTestAnimator()
	a.Register(p, onlyProjects)

	r := newPageRenderer(zerolog.Nop())
	layout := r.render(pageInput{
		portfolio: p,
		width:     100,
		animator:  a,
		form:      form.NewContactForm(contact.DefaultForm(), []string{"Hello"}),
		query:     query,
	})
	return layout, a
}

func TestPageRenderer_render_sectionsInOrder(t *testing.T) {
	layout, _ := renderTestPage(t, "")

	require.Len(t, layout.sections, 5)
	prevEnd := 0
	for _, s := range layout.sections {
		assert.Equal(t, prevEnd, s.span.Top, "section %s starts where the previous ended", s.id)
		assert.Positive(t, s.span.Height)
		prevEnd = s.span.Top + s.span.Height
	}
	assert.Equal(t, prevEnd, layout.lines)

	out := tuitest.StripANSI(layout.content)
	assert.Contains(t, out, "1. About")
	assert.Contains(t, out, "5. Contact")
	assert.Contains(t, out, form.SubmitLabel)
}

func TestPageRenderer_render_locatesEveryElement(t *testing.T) {
	layout, _ := renderTestPage(t, "")

	ids := []elementID{
		counterID("about", 0), counterID("about", 1),
		barID("skills", 0), barID("skills", 1),
		cardID("projects/folio"), cardID("projects/relay"),
		cardID("faq/0"),
	}
	for _, id := range ids {
		span, ok := layout.locate(id)
		require.True(t, ok, "element %v", id)
		assert.Positive(t, span.Height)
	}

	skills := layout.sections[1].span
	bar, _ := layout.locate(barID("skills", 0))
	assert.GreaterOrEqual(t, bar.Top, skills.Top)
	assert.Less(t, bar.Top, skills.Top+skills.Height)
}

func TestPageRenderer_render_hiddenCardsKeepSize(t *testing.T) {
	p := testPortfolio()
	r := newPageRenderer(zerolog.Nop())

	hidden := newTestAnimator()
	hidden.Register(p, onlyProjects)
	shown := newTestAnimator()
	shown.Register(p, nil)

	before := r.render(pageInput{portfolio: p, width: 100, animator: hidden})
	after := r.render(pageInput{portfolio: p, width: 100, animator: shown})

	assert.Equal(t, before.lines, after.lines)
	assert.Equal(t, before.sections, after.sections)
}

func TestPageRenderer_render_countersStartAtZero(t *testing.T) {
	layout, _ := renderTestPage(t, "")
	out := tuitest.StripANSI(layout.content)

	assert.Contains(t, out, "0+")
	assert.NotContains(t, out, "3+")
}

func TestPageRenderer_render_queryFiltersCards(t *testing.T) {
	tests := []struct {
		query   string
		matches int
		present []elementID
		absent  []elementID
	}{
		{"", 3, []elementID{cardID("projects/folio"), cardID("faq/0")}, nil},
		{"broker", 1, []elementID{cardID("projects/relay")}, []elementID{cardID("projects/folio"), cardID("faq/0")}},
		{"  GO ", 1, []elementID{cardID("projects/folio")}, []elementID{cardID("projects/relay")}},
		{"nothing-matches", 0, nil, []elementID{cardID("projects/folio")}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			layout, _ := renderTestPage(t, tt.query)
			assert.Equal(t, tt.matches, layout.matches)
			for _, id := range tt.present {
				_, ok := layout.locate(id)
				assert.True(t, ok, "%v", id)
			}
			for _, id := range tt.absent {
				_, ok := layout.locate(id)
				assert.False(t, ok, "%v", id)
			}
		})
	}
}

func TestPageLayout_activeSection(t *testing.T) {
	layout, _ := renderTestPage(t, "")

	assert.Equal(t, 0, layout.activeSection(0, spyOffset))
	third := layout.sections[2].span.Top
	assert.Equal(t, 2, layout.activeSection(third, spyOffset))
	assert.Equal(t, 2, layout.activeSection(third-spyOffset, spyOffset))
	assert.Equal(t, 4, layout.activeSection(layout.lines, spyOffset))

	i, ok := layout.sectionIndex("contact")
	assert.True(t, ok)
	assert.Equal(t, 4, i)
	_, ok = layout.sectionIndex("missing")
	assert.False(t, ok)
}

func TestPageRenderer_renderMarkdown_cachesPerWidth(t *testing.T) {
	r := newPageRenderer(zerolog.Nop())
	p := &content.Portfolio{Name: "x", Sections: []content.Section{
		{ID: "home", Title: "Home", Kind: content.KindMarkdown, Body: "Hello **world**"},
	}}

	first := r.render(pageInput{portfolio: p, width: 80})
	assert.Contains(t, tuitest.StripANSI(first.content), "world")
	assert.Contains(t, r.markdown, "home")

	r.render(pageInput{portfolio: p, width: 60})
	assert.Equal(t, 60-pageMargin*2, r.width)
	assert.Len(t, r.markdown, 1)
}
