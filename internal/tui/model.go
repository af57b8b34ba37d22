package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/amelara/folio/internal/core/config"
	"github.com/amelara/folio/internal/core/contact"
	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/logging"
	"github.com/amelara/folio/internal/core/styles"
	"github.com/amelara/folio/internal/core/visibility"
	"github.com/amelara/folio/internal/tui/components"
	"github.com/amelara/folio/internal/tui/components/form"
)

// UIState represents the current input mode of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateMenu
	stateSearch
	stateForm
	stateHelp
)

const (
	headerHeight = 2
	footerHeight = 1

	// scrolledAfter is the offset past which the header switches to its scrolled style.
	scrolledAfter = 2
	// spyOffset is how far below the top edge a section may start and still be active.
	spyOffset = 3

	skillLabelWidth = 16
	maxBarWidth     = 50
)

// Options configures the TUI.
type Options struct {
	// Sender delivers contact submissions. Defaults to a simulated sender using the
	// configured delay.
	Sender contact.Sender
	// Logger receives TUI logs. Defaults to a disabled logger.
	Logger *zerolog.Logger
	// StartedAt is when the process started; time to first frame is logged from it.
	StartedAt time.Time
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg       *config.Config
	portfolio *content.Portfolio
	keys      keyMap
	help      help.Model
	state     UIState

	width  int
	height int
	ready  bool

	viewport viewport.Model
	renderer *pageRenderer
	layout   pageLayout

	animator      *Animator
	notifications *NotificationCenter
	toastView     *ToastView
	contactForm   *form.ContactForm
	submission    *submissionController
	menu          *components.NavMenu
	helpDialog    *components.HelpDialog

	searchInput textinput.Model
	query       string

	activeSection int
	scrolled      bool

	startedAt        time.Time
	firstFrameLogged bool
	quitting         bool

	ctx    context.Context
	cancel context.CancelFunc
	log    zerolog.Logger
}

// New creates the model for portfolio p.
func New(cfg *config.Config, p *content.Portfolio, opts Options) Model {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}

	sender := opts.Sender
	if sender == nil {
		sender = contact.SimulatedSender{
			Delay:  cfg.Timings.SubmitDelay,
			Logger: logging.Sub(log, "sender"),
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	animator := NewAnimator(
		visibility.Options{Threshold: cfg.Reveal.Threshold, BottomMargin: cfg.Reveal.BottomMargin},
		visibility.Options{Threshold: cfg.Skills.Threshold, BottomMargin: cfg.Skills.BottomMargin},
		visibility.Options{Threshold: cfg.Counters.Threshold, BottomMargin: cfg.Counters.BottomMargin},
		AnimationTimings{
			BarDelay:        cfg.Timings.BarDelay,
			CounterDuration: cfg.Timings.CounterDuration,
			CounterTick:     cfg.Timings.CounterTick,
		},
		logging.Sub(log, "animation"),
	)
	animator.Register(p, cfg.IsRevealTarget)

	notifications := NewNotificationCenter(cfg.Timings.NotificationTTL, cfg.Timings.NotificationExit,
		logging.Sub(log, "notifications"))

	contactForm := form.NewContactForm(contact.DefaultForm(), cfg.Contact.Subjects)

	links := make([]components.NavLink, 0, len(p.Sections))
	for _, s := range p.Sections {
		links = append(links, components.NavLink{ID: s.ID, Title: s.Title})
	}

	keys := defaultKeyMap()

	search := textinput.New()
	search.Prompt = styles.IconSearch + " "
	search.Placeholder = "filter cards"
	searchStyles := textinput.DefaultStyles(true)
	searchStyles.Focused.Prompt = styles.FilterPromptStyle
	searchStyles.Cursor.Color = styles.ColorBrand
	search.SetStyles(searchStyles)

	h := help.New()
	h.Styles.ShortKey = styles.TextPrimaryStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle
	h.ShortSeparator = " • "

	vp := viewport.New()
	vp.MouseWheelEnabled = true

	m := Model{
		cfg:           cfg,
		portfolio:     p,
		keys:          keys,
		help:          h,
		viewport:      vp,
		renderer:      newPageRenderer(logging.Sub(log, "page")),
		animator:      animator,
		notifications: notifications,
		toastView:     NewToastView(notifications),
		contactForm:   contactForm,
		submission: newSubmissionController(ctx, contactForm, sender,
			logging.Sub(log, "submission")),
		menu:        components.NewNavMenu(links),
		helpDialog:  components.NewHelpDialog("Keyboard shortcuts", keys.helpSections()),
		searchInput: search,
		startedAt:   opts.StartedAt,
		ctx:         ctx,
		cancel:      cancel,
		log:         log,
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.RequestBackgroundColor}
	if n := m.portfolio.Notice; n != nil {
		cmds = append(cmds, ShowNotification(n.Message, n.Severity))
	}
	return tea.Batch(cmds...)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// State returns the current input mode.
func (m Model) State() UIState { return m.state }

// Notifications returns the notification center.
func (m Model) Notifications() *NotificationCenter { return m.notifications }

// ContactForm returns the contact form widget.
func (m Model) ContactForm() *form.ContactForm { return m.contactForm }

// Animator returns the animation scheduler.
func (m Model) Animator() *Animator { return m.animator }

// Submitting reports whether a contact submission is in flight.
func (m Model) Submitting() bool { return m.submission.State() == contact.StateSubmitting }

// YOffset returns the scroll position of the page.
func (m Model) YOffset() int { return m.viewport.YOffset() }

// ActiveSection returns the id of the section highlighted in the header.
func (m Model) ActiveSection() string {
	if m.activeSection < len(m.layout.sections) {
		return m.layout.sections[m.activeSection].id
	}
	return ""
}

// Scrolled reports whether the header is in its scrolled style.
func (m Model) Scrolled() bool { return m.scrolled }

// Query returns the active card filter.
func (m Model) Query() string { return m.query }

// refresh renders the page, measures visibility and re-renders when an effect fired.
func (m *Model) refresh() tea.Cmd {
	if !m.ready {
		return nil
	}

	m.render()
	fired, cmd := m.animator.Measure(m.visibleWindow(), m.layout.locate)
	if fired > 0 {
		m.render()
	}
	m.updateScrollState()
	return cmd
}

func (m *Model) render() {
	m.layout = m.renderer.render(pageInput{
		portfolio: m.portfolio,
		width:     m.width,
		animator:  m.animator,
		form:      m.contactForm,
		query:     m.query,
	})
	m.viewport.SetContent(m.layout.content)
}

func (m Model) visibleWindow() visibility.Viewport {
	return visibility.Viewport{Top: m.viewport.YOffset(), Height: m.viewport.Height()}
}

func (m *Model) updateScrollState() {
	top := m.viewport.YOffset()

	scrolled := top > scrolledAfter
	if scrolled != m.scrolled {
		m.log.Debug().Bool("scrolled", scrolled).Msg("header style changed")
	}
	m.scrolled = scrolled

	active := m.layout.activeSection(top, spyOffset)
	if active != m.activeSection && active < len(m.layout.sections) {
		m.log.Debug().Str("section", m.layout.sections[active].id).Msg("active section changed")
	}
	m.activeSection = active
}
