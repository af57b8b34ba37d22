package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/amelara/folio/internal/core/notify"
)

const (
	defaultNotificationTTL  = 5 * time.Second
	defaultNotificationExit = 300 * time.Millisecond
)

// notificationExpireMsg starts the leaving phase of the notification with the given id.
type notificationExpireMsg struct{ id string }

// notificationRemoveMsg removes the notification with the given id at the end of its
// leaving phase.
type notificationRemoveMsg struct{ id string }

// NotificationCenter owns the single notification slot. Showing a notification
// retires the previous one immediately. Scheduled retirement carries the id of the
// notification it was scheduled for and is a no-op once that notification is gone,
// so at most one notification is ever visible.
type NotificationCenter struct {
	current *notify.Notification
	leaving bool
	ttl     time.Duration
	exit    time.Duration
	log     zerolog.Logger
}

// NewNotificationCenter creates an empty center. Zero durations take the defaults.
func NewNotificationCenter(ttl, exit time.Duration, log zerolog.Logger) *NotificationCenter {
	if ttl <= 0 {
		ttl = defaultNotificationTTL
	}
	if exit <= 0 {
		exit = defaultNotificationExit
	}
	return &NotificationCenter{ttl: ttl, exit: exit, log: log}
}

// Notify replaces the current notification with n and returns the command that
// retires n after the TTL.
func (c *NotificationCenter) Notify(n notify.Notification) tea.Cmd {
	if c.current != nil {
		c.log.Debug().
			Str("id", c.current.ID).
			Str("replaced_by", n.ID).
			Msg("notification replaced")
	}

	c.current = &n
	c.leaving = false

	c.log.Debug().
		Str("id", n.ID).
		Stringer("severity", n.Severity).
		Str("message", n.Message).
		Msg("notification shown")

	id := n.ID
	return tea.Tick(c.ttl, func(time.Time) tea.Msg {
		return notificationExpireMsg{id: id}
	})
}

// Expire starts the leaving phase if id is still current.
func (c *NotificationCenter) Expire(id string) tea.Cmd {
	if !c.holds(id) || c.leaving {
		return nil
	}

	c.leaving = true
	return tea.Tick(c.exit, func(time.Time) tea.Msg {
		return notificationRemoveMsg{id: id}
	})
}

// Remove empties the slot if id is still current. It reports whether anything was
// removed.
func (c *NotificationCenter) Remove(id string) bool {
	if !c.holds(id) {
		return false
	}
	c.clear()
	return true
}

// Dismiss removes the current notification immediately, skipping the leaving phase.
func (c *NotificationCenter) Dismiss() bool {
	if c.current == nil {
		return false
	}
	c.log.Debug().Str("id", c.current.ID).Msg("notification dismissed")
	c.clear()
	return true
}

// Current returns the visible notification, if any.
func (c *NotificationCenter) Current() (notify.Notification, bool) {
	if c.current == nil {
		return notify.Notification{}, false
	}
	return *c.current, true
}

// Leaving reports whether the current notification is in its leaving phase.
func (c *NotificationCenter) Leaving() bool { return c.current != nil && c.leaving }

// HasNotification reports whether a notification is visible.
func (c *NotificationCenter) HasNotification() bool { return c.current != nil }

func (c *NotificationCenter) holds(id string) bool {
	return c.current != nil && c.current.ID == id
}

func (c *NotificationCenter) clear() {
	c.current = nil
	c.leaving = false
}
