// Package visibility implements one-shot viewport triggers: observe a target until it
// first becomes visible enough, fire once, and stop observing it for good.
package visibility

import "slices"

// Entry reports the visible fraction of one target.
type Entry[T comparable] struct {
	Target   T
	Fraction float64
}

// Options configures a Trigger.
type Options struct {
	// Threshold is the visible fraction at which a target fires, in [0, 1].
	Threshold float64
	// BottomMargin shrinks the viewport bottom by this many lines when measuring.
	BottomMargin int
}

// Trigger is a group of observed targets sharing a threshold and an effect. Each
// target fires at most once over its lifetime; after firing it is deregistered and
// later entries for it are ignored. Triggers are independent of each other and are
// not safe for concurrent use; they are driven from the UI update loop.
type Trigger[T comparable] struct {
	opts     Options
	onFire   func(T)
	order    []T
	observed map[T]struct{}
	fired    int
}

// New creates a trigger that calls onFire for every target crossing the threshold.
func New[T comparable](opts Options, onFire func(T)) *Trigger[T] {
	opts.Threshold = min(max(opts.Threshold, 0), 1)
	opts.BottomMargin = max(opts.BottomMargin, 0)
	return &Trigger[T]{
		opts:     opts,
		onFire:   onFire,
		observed: make(map[T]struct{}),
	}
}

// Options returns the effective options.
func (t *Trigger[T]) Options() Options { return t.opts }

// Observe registers interest in target. Observing an already observed target is a
// no-op.
func (t *Trigger[T]) Observe(target T) {
	if _, ok := t.observed[target]; ok {
		return
	}
	t.observed[target] = struct{}{}
	t.order = append(t.order, target)
}

// Unobserve stops watching target without firing.
func (t *Trigger[T]) Unobserve(target T) {
	if _, ok := t.observed[target]; !ok {
		return
	}
	delete(t.observed, target)
	if i := slices.Index(t.order, target); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
}

// Observing reports whether target is still waiting to fire.
func (t *Trigger[T]) Observing(target T) bool {
	_, ok := t.observed[target]
	return ok
}

// Len returns the number of targets still observed.
func (t *Trigger[T]) Len() int { return len(t.order) }

// Fired returns how many targets have fired so far.
func (t *Trigger[T]) Fired() int { return t.fired }

// Targets returns the observed targets in registration order.
func (t *Trigger[T]) Targets() []T { return slices.Clone(t.order) }

func (t *Trigger[T]) crossed(fraction float64) bool {
	return fraction > 0 && fraction >= t.opts.Threshold
}

// Deliver processes entries in the order given. A target fires when its fraction is
// non-zero and at or above the threshold; it is deregistered before its callback runs
// so the callback may safely observe new targets. It returns the number fired.
func (t *Trigger[T]) Deliver(entries ...Entry[T]) int {
	n := 0
	for _, e := range entries {
		if !t.Observing(e.Target) || !t.crossed(e.Fraction) {
			continue
		}
		t.Unobserve(e.Target)
		t.fired++
		n++
		if t.onFire != nil {
			t.onFire(e.Target)
		}
	}
	return n
}

// Measure computes an entry for every observed target that locate can place and
// delivers them in registration order. Targets locate cannot place are skipped and
// stay observed.
func (t *Trigger[T]) Measure(view Viewport, locate func(T) (Span, bool)) int {
	if len(t.order) == 0 {
		return 0
	}

	entries := make([]Entry[T], 0, len(t.order))
	for _, target := range t.order {
		span, ok := locate(target)
		if !ok {
			continue
		}
		entries = append(entries, Entry[T]{
			Target:   target,
			Fraction: Fraction(span, view, t.opts.BottomMargin),
		})
	}
	return t.Deliver(entries...)
}
