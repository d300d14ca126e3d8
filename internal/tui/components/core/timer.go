package core

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

var lastID int64

// NextID returns a process-unique ID for timers and components.
func NextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TimerFiredMsg is sent when a scheduled timer elapses.
type TimerFiredMsg struct {
	Time  time.Time
	ID    int // Distinguishes multiple timers
	Seq   int // Schedule generation; stale generations are ignored
	Value string
}

// Ticker schedules fn to run after d. tea.Tick is the default.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Timer is a one-shot, restartable timer for TUI components.
//
// A Bubble Tea tick cannot be stopped once it has been handed to the
// runtime, so cancellation works by generation: every Schedule or Cancel
// bumps the sequence, and Accept rejects any fired message carrying an
// older sequence. At most one schedule is live at a time.
type Timer struct {
	id       int
	seq      int
	pending  bool
	delay    time.Duration
	deadline time.Time
	ticker   Ticker
	now      func() time.Time
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithTicker replaces the scheduling primitive.
func WithTicker(t Ticker) TimerOption {
	return func(tm *Timer) {
		if t != nil {
			tm.ticker = t
		}
	}
}

// WithClock replaces the clock used for deadlines.
func WithClock(now func() time.Time) TimerOption {
	return func(tm *Timer) {
		if now != nil {
			tm.now = now
		}
	}
}

// NewTimer creates an idle timer.
func NewTimer(id int, opts ...TimerOption) *Timer {
	t := &Timer{
		id:     id,
		ticker: tea.Tick,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the timer's ID.
func (t *Timer) ID() int {
	return t.id
}

// Schedule cancels any pending schedule and starts a new one that fires
// after d carrying value. The delay is handed to the ticker unchanged.
func (t *Timer) Schedule(d time.Duration, value string) tea.Cmd {
	t.Cancel()
	t.pending = true
	t.delay = d
	t.deadline = t.now().Add(d)

	id, seq := t.id, t.seq
	return t.ticker(d, func(tm time.Time) tea.Msg {
		return TimerFiredMsg{
			Time:  tm,
			ID:    id,
			Seq:   seq,
			Value: value,
		}
	})
}

// Cancel invalidates the pending schedule, if any.
func (t *Timer) Cancel() {
	t.seq++
	t.pending = false
	t.deadline = time.Time{}
}

// Pending reports whether a schedule is live.
func (t *Timer) Pending() bool {
	return t.pending
}

// Delay returns the delay of the most recent schedule.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Remaining returns the time left on the live schedule.
func (t *Timer) Remaining() time.Duration {
	if !t.pending {
		return 0
	}
	if d := t.deadline.Sub(t.now()); d > 0 {
		return d
	}
	return 0
}

// Accept reports whether msg is the firing of the live schedule. On
// success the timer returns to idle, so a schedule is accepted at most once.
func (t *Timer) Accept(msg tea.Msg) (TimerFiredMsg, bool) {
	fired, ok := msg.(TimerFiredMsg)
	if !ok || fired.ID != t.id || fired.Seq != t.seq || !t.pending {
		return TimerFiredMsg{}, false
	}
	t.pending = false
	t.deadline = time.Time{}
	return fired, true
}

// FormatSeconds formats duration as "1.2s".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
