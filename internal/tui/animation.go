package tui

import (
	"math"
	"strconv"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/amelara/folio/internal/core/content"
	"github.com/amelara/folio/internal/core/styles"
	"github.com/amelara/folio/internal/core/visibility"
)

const (
	defaultBarDelay        = 100 * time.Millisecond
	defaultCounterDuration = 2 * time.Second
	defaultCounterTick     = 16 * time.Millisecond
	defaultBarWidth        = 40
)

// elementKind distinguishes the animated element families.
type elementKind int

const (
	kindCard elementKind = iota
	kindBar
	kindCounter
)

// elementID addresses one animated element on the page.
type elementID struct {
	kind elementKind
	path string
}

func cardID(path string) elementID { return elementID{kind: kindCard, path: path} }

func barID(section string, i int) elementID {
	return elementID{kind: kindBar, path: section + "/" + strconv.Itoa(i)}
}

func counterID(section string, i int) elementID {
	return elementID{kind: kindCounter, path: section + "/" + strconv.Itoa(i)}
}

// barFillMsg restores a primed bar to its target after the bar delay.
type barFillMsg struct{ path string }

// counterTickMsg advances one running counter.
type counterTickMsg struct{ path string }

type barState struct {
	target float64
	model  progress.Model
	primed bool
}

type counterState struct {
	target  int
	current float64
	step    float64
	running bool
	done    bool
}

// AnimationTimings configures the animation clock.
type AnimationTimings struct {
	BarDelay        time.Duration
	CounterDuration time.Duration
	CounterTick     time.Duration
}

// Animator drives the one-shot page effects: card reveal, skill bar fill and stat
// counters. Each family has its own visibility trigger; an element's effect runs at
// most once.
type Animator struct {
	reveal   *visibility.Trigger[elementID]
	bars     *visibility.Trigger[elementID]
	counters *visibility.Trigger[elementID]

	barOpts visibility.Options

	revealed      map[string]bool
	barStates     map[string]*barState
	barOrder      []string
	counterStates map[string]*counterState

	timings  AnimationTimings
	barWidth int
	pending  []tea.Cmd
	log      zerolog.Logger
}

// NewAnimator creates an animator with the given trigger options per family.
func NewAnimator(reveal, bars, counters visibility.Options, timings AnimationTimings, log zerolog.Logger) *Animator {
	if timings.BarDelay <= 0 {
		timings.BarDelay = defaultBarDelay
	}
	if timings.CounterDuration <= 0 {
		timings.CounterDuration = defaultCounterDuration
	}
	if timings.CounterTick <= 0 {
		timings.CounterTick = defaultCounterTick
	}

	a := &Animator{
		barOpts:       bars,
		revealed:      make(map[string]bool),
		barStates:     make(map[string]*barState),
		counterStates: make(map[string]*counterState),
		timings:       timings,
		barWidth:      defaultBarWidth,
		log:           log,
	}
	a.reveal = visibility.New(reveal, a.onReveal)
	a.bars = visibility.New(bars, a.onFill)
	a.counters = visibility.New(counters, a.onCount)
	return a
}

// Register observes every animated element of p. Cards whose path does not satisfy
// isRevealTarget are shown immediately.
func (a *Animator) Register(p *content.Portfolio, isRevealTarget func(path string) bool) {
	for _, s := range p.Sections {
		switch s.Kind {
		case content.KindCards:
			for i := range s.Cards {
				path := s.CardPath(i)
				if isRevealTarget != nil && isRevealTarget(path) {
					a.reveal.Observe(cardID(path))
				} else {
					a.revealed[path] = true
				}
			}
		case content.KindSkills:
			for i, sk := range s.Skills {
				id := barID(s.ID, i)
				a.barStates[id.path] = &barState{
					target: float64(sk.Level) / 100,
					model:  a.newBar(),
				}
				a.barOrder = append(a.barOrder, id.path)
				a.bars.Observe(id)
			}
		case content.KindStats:
			for i, st := range s.Stats {
				id := counterID(s.ID, i)
				a.counterStates[id.path] = &counterState{target: st.Count}
				a.counters.Observe(id)
			}
		}
	}
}

func (a *Animator) newBar() progress.Model {
	return progress.New(
		progress.WithWidth(a.barWidth),
		progress.WithColors(styles.ColorLink, styles.ColorBar),
	)
}

// Measure delivers visibility entries for every observed element to its trigger. It
// returns how many elements fired and the commands their effects started.
func (a *Animator) Measure(view visibility.Viewport, locate func(elementID) (visibility.Span, bool)) (int, tea.Cmd) {
	n := a.reveal.Measure(view, locate)
	n += a.bars.Measure(view, locate)
	n += a.counters.Measure(view, locate)

	if len(a.pending) == 0 {
		return n, nil
	}
	cmd := tea.Batch(a.pending...)
	a.pending = nil
	return n, cmd
}

// RestartBars replaces the bar trigger with a fresh one observing every bar that has
// not been animated yet.
func (a *Animator) RestartBars() int {
	a.bars = visibility.New(a.barOpts, a.onFill)
	n := 0
	for _, path := range a.barOrder {
		if a.barStates[path].primed {
			continue
		}
		a.bars.Observe(elementID{kind: kindBar, path: path})
		n++
	}
	return n
}

func (a *Animator) onReveal(id elementID) {
	a.revealed[id.path] = true
	a.log.Debug().Str("card", id.path).Msg("card revealed")
}

func (a *Animator) onFill(id elementID) {
	bar, ok := a.barStates[id.path]
	if !ok {
		return
	}
	bar.primed = true
	a.pending = append(a.pending, bar.model.SetPercent(0))

	path := id.path
	a.pending = append(a.pending, tea.Tick(a.timings.BarDelay, func(time.Time) tea.Msg {
		return barFillMsg{path: path}
	}))
	a.log.Debug().Str("bar", id.path).Float64("target", bar.target).Msg("skill bar animating")
}

func (a *Animator) onCount(id elementID) {
	c, ok := a.counterStates[id.path]
	if !ok || c.running || c.done {
		return
	}
	steps := float64(a.timings.CounterDuration) / float64(a.timings.CounterTick)
	c.step = float64(c.target) / steps
	c.current = 0
	c.running = true
	a.pending = append(a.pending, a.counterTick(id.path))
	a.log.Debug().Str("counter", id.path).Int("target", c.target).Msg("counter animating")
}

func (a *Animator) counterTick(path string) tea.Cmd {
	return tea.Tick(a.timings.CounterTick, func(time.Time) tea.Msg {
		return counterTickMsg{path: path}
	})
}

// Fill restores the bar at path to its target percentage, starting the spring
// animation.
func (a *Animator) Fill(path string) tea.Cmd {
	bar, ok := a.barStates[path]
	if !ok || !bar.primed {
		return nil
	}
	return bar.model.SetPercent(bar.target)
}

// Step advances the counter at path by one tick. The counter never passes its
// target: the tick that reaches it pins the value and stops.
func (a *Animator) Step(path string) tea.Cmd {
	c, ok := a.counterStates[path]
	if !ok || !c.running {
		return nil
	}

	c.current += c.step
	if c.current >= float64(c.target) {
		c.current = float64(c.target)
		c.running = false
		c.done = true
		return nil
	}
	return a.counterTick(path)
}

// UpdateBars forwards a progress frame to every bar; each bar ignores frames that
// are not its own.
func (a *Animator) UpdateBars(msg progress.FrameMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, path := range a.barOrder {
		bar := a.barStates[path]
		var cmd tea.Cmd
		bar.model, cmd = bar.model.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// SetBarWidth resizes every bar.
func (a *Animator) SetBarWidth(w int) {
	a.barWidth = max(w, 10)
	for _, bar := range a.barStates {
		bar.model.SetWidth(a.barWidth)
	}
}

// Revealed reports whether the card at path is shown.
func (a *Animator) Revealed(path string) bool { return a.revealed[path] }

// BarView renders the bar at path. Bars that have not fired yet are drawn at their
// target; once fired the animated model is drawn.
func (a *Animator) BarView(path string) string {
	bar, ok := a.barStates[path]
	if !ok {
		return ""
	}
	if !bar.primed {
		return bar.model.ViewAs(bar.target)
	}
	return bar.model.View()
}

// BarPrimed reports whether the bar at path has fired.
func (a *Animator) BarPrimed(path string) bool {
	bar, ok := a.barStates[path]
	return ok && bar.primed
}

// CounterValue returns the displayed value of the counter at path.
func (a *Animator) CounterValue(path string) int {
	c, ok := a.counterStates[path]
	if !ok {
		return 0
	}
	return int(math.Floor(c.current))
}

// CounterDone reports whether the counter at path has reached its target.
func (a *Animator) CounterDone(path string) bool {
	c, ok := a.counterStates[path]
	return ok && c.done
}

// Pending returns the number of elements still waiting to fire, per family.
func (a *Animator) Pending() (cards, bars, counters int) {
	return a.reveal.Len(), a.bars.Len(), a.counters.Len()
}
