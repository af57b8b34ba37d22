// Package config handles configuration loading and validation for folio.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amelara/folio/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Content  string        `yaml:"content"` // path to a content file; empty uses the built-in sample
	Theme    string        `yaml:"theme"`
	Timings  Timings       `yaml:"timings"`
	Reveal   RevealConfig  `yaml:"reveal"`
	Skills   TriggerConfig `yaml:"skills"`
	Counters TriggerConfig `yaml:"counters"`
	Contact  ContactConfig `yaml:"contact"`
}

// Timings holds every scheduled delay used by the page.
type Timings struct {
	NotificationTTL  time.Duration `yaml:"notification_ttl"`  // how long a toast stays before retiring
	NotificationExit time.Duration `yaml:"notification_exit"` // leaving phase before removal
	SubmitDelay      time.Duration `yaml:"submit_delay"`      // simulated send duration
	BarDelay         time.Duration `yaml:"bar_delay"`         // pause before a progress bar refills
	CounterDuration  time.Duration `yaml:"counter_duration"`  // total count-up time
	CounterTick      time.Duration `yaml:"counter_tick"`      // count-up frame interval
}

// TriggerConfig configures one visibility trigger group.
type TriggerConfig struct {
	Threshold    float64 `yaml:"threshold"`
	BottomMargin int     `yaml:"bottom_margin"`
}

// RevealConfig configures the fade-in reveal of cards.
type RevealConfig struct {
	TriggerConfig `yaml:",inline"`
	// Targets are glob patterns matched against element paths such as "projects/folio".
	Targets []string `yaml:"targets"`
}

// ContactConfig holds contact form texts.
type ContactConfig struct {
	Subjects []string `yaml:"subjects"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Timings: Timings{
			NotificationTTL:  5 * time.Second,
			NotificationExit: 300 * time.Millisecond,
			SubmitDelay:      2 * time.Second,
			BarDelay:         100 * time.Millisecond,
			CounterDuration:  2 * time.Second,
			CounterTick:      16 * time.Millisecond,
		},
		Reveal: RevealConfig{
			TriggerConfig: TriggerConfig{Threshold: 0.1, BottomMargin: 2},
			Targets: []string{
				"highlights/*",
				"interests/*",
				"projects/*",
				"academic/*",
				"faq/*",
			},
		},
		Skills:   TriggerConfig{Threshold: 0.5},
		Counters: TriggerConfig{Threshold: 0.7},
		Contact: ContactConfig{
			Subjects: []string{"Job opportunity", "Project collaboration", "Academic question", "Other"},
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or doesn't
// exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if c.Theme == "" {
		c.Theme = d.Theme
	}

	durations := []struct{ got, def *time.Duration }{
		{&c.Timings.NotificationTTL, &d.Timings.NotificationTTL},
		{&c.Timings.NotificationExit, &d.Timings.NotificationExit},
		{&c.Timings.SubmitDelay, &d.Timings.SubmitDelay},
		{&c.Timings.BarDelay, &d.Timings.BarDelay},
		{&c.Timings.CounterDuration, &d.Timings.CounterDuration},
		{&c.Timings.CounterTick, &d.Timings.CounterTick},
	}
	for _, dur := range durations {
		if *dur.got == 0 {
			*dur.got = *dur.def
		}
	}

	// A zero threshold is indistinguishable from unset in YAML; treat it as unset.
	if c.Reveal.Threshold == 0 {
		c.Reveal.Threshold = d.Reveal.Threshold
	}
	if c.Skills.Threshold == 0 {
		c.Skills.Threshold = d.Skills.Threshold
	}
	if c.Counters.Threshold == 0 {
		c.Counters.Threshold = d.Counters.Threshold
	}
	if len(c.Contact.Subjects) == 0 {
		c.Contact.Subjects = d.Contact.Subjects
	}
}
