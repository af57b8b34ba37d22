package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/amelara/folio/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		c.validateTimings(),
		criterio.Run("reveal.threshold", c.Reveal.Threshold, isFraction),
		criterio.Run("skills.threshold", c.Skills.Threshold, isFraction),
		criterio.Run("counters.threshold", c.Counters.Threshold, isFraction),
		c.validateMargins(),
		c.validateRevealTargets(),
		c.validateSubjects(),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func isFraction(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("must be between 0 and 1, got %v", v)
	}
	return nil
}

func positive(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}

func (c *Config) validateTimings() error {
	t := c.Timings
	err := criterio.ValidateStruct(
		criterio.Run("timings.notification_ttl", t.NotificationTTL, positive),
		criterio.Run("timings.notification_exit", t.NotificationExit, positive),
		criterio.Run("timings.submit_delay", t.SubmitDelay, positive),
		criterio.Run("timings.bar_delay", t.BarDelay, positive),
		criterio.Run("timings.counter_duration", t.CounterDuration, positive),
		criterio.Run("timings.counter_tick", t.CounterTick, positive),
	)
	if err != nil {
		return err
	}

	if t.CounterTick > t.CounterDuration {
		return criterio.NewFieldErrors("timings.counter_tick",
			fmt.Errorf("must not exceed counter_duration (%s)", t.CounterDuration))
	}
	return nil
}

func (c *Config) validateMargins() error {
	var errs criterio.FieldErrorsBuilder
	margins := []struct {
		field string
		value int
	}{
		{"reveal.bottom_margin", c.Reveal.BottomMargin},
		{"skills.bottom_margin", c.Skills.BottomMargin},
		{"counters.bottom_margin", c.Counters.BottomMargin},
	}
	for _, m := range margins {
		if m.value < 0 {
			errs = errs.Append(m.field, fmt.Errorf("must not be negative, got %d", m.value))
		}
	}
	return errs.ToError()
}

// validateRevealTargets checks every reveal selector is a valid glob.
func (c *Config) validateRevealTargets() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Reveal.Targets {
		if pattern == "" {
			errs = errs.Append(fmt.Sprintf("reveal.targets[%d]", i), fmt.Errorf("pattern is empty"))
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("reveal.targets[%d]", i), fmt.Errorf("invalid glob %q", pattern))
		}
	}
	return errs.ToError()
}

func (c *Config) validateSubjects() error {
	var errs criterio.FieldErrorsBuilder
	for i, s := range c.Contact.Subjects {
		if s == "" {
			errs = errs.Append(fmt.Sprintf("contact.subjects[%d]", i), fmt.Errorf("subject is empty"))
			continue
		}
		if slices.Index(c.Contact.Subjects, s) != i {
			errs = errs.Append(fmt.Sprintf("contact.subjects[%d]", i), fmt.Errorf("duplicate subject %q", s))
		}
	}
	return errs.ToError()
}

// IsRevealTarget reports whether the element path matches any reveal selector.
func (c *Config) IsRevealTarget(path string) bool {
	for _, pattern := range c.Reveal.Targets {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
