package delayinput

import (
	"time"
	"unicode/utf8"

	"github.com/billie-coop/delaytext/internal/logging"
	"github.com/billie-coop/delaytext/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// State is the lifecycle state of a Controller.
type State int

const (
	Idle State = iota
	Pending
	Disposed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// SettledMsg is emitted after the delayed callback has run, so parent
// models can react to settled values through Update as well.
type SettledMsg struct {
	ID    int
	Value string
}

// Controller applies the debounce policy to raw change events. It must
// only be used from the Bubble Tea event loop.
type Controller struct {
	id    int
	timer *core.Timer
	state State
	value string

	delay           time.Duration
	minLength       int
	delayedCallback func(string)
	onChangeText    func(string)

	// minLength in effect when the live schedule was created.
	pendingMinLength int

	log *logging.Logger
}

// NewController creates an idle controller.
func NewController(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newController(o)
}

func newController(o options) *Controller {
	id := core.NextID()
	return &Controller{
		id:              id,
		timer:           core.NewTimer(id, o.timerOpts...),
		value:           o.defaultValue,
		delay:           o.delay,
		minLength:       o.minLength,
		delayedCallback: o.delayedCallback,
		onChangeText:    o.onChangeText,
		log:             logging.L().With("component", "delayinput", "id", id),
	}
}

// ID returns the controller's ID, shared by its timer and SettledMsg.
func (c *Controller) ID() int {
	return c.id
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Value returns the latest raw value.
func (c *Controller) Value() string {
	return c.value
}

// Delay returns the delay used for the next schedule.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// MinLength returns the minimum length used for the next schedule.
func (c *Controller) MinLength() int {
	return c.minLength
}

// SetDelay changes the delay. A live schedule keeps the delay it started with.
func (c *Controller) SetDelay(d time.Duration) {
	c.delay = d
}

// SetMinLength changes the minimum length. A live schedule keeps the
// value captured when it was created.
func (c *Controller) SetMinLength(n int) {
	c.minLength = n
}

// Remaining returns the time left before a pending value settles.
func (c *Controller) Remaining() time.Duration {
	return c.timer.Remaining()
}

// HandleChange records a raw value from the host widget, runs the
// passthrough callback, and restarts the quiet period. The returned
// command must be handed to the Bubble Tea runtime.
func (c *Controller) HandleChange(value string) tea.Cmd {
	c.value = value
	c.onChangeText(value)

	if c.state == Disposed {
		return nil
	}

	if c.timer.Pending() {
		c.log.Debugw("superseding pending change", "remaining", c.timer.Remaining())
	}
	c.pendingMinLength = c.minLength
	c.state = Pending
	c.log.Debugw("scheduling change", "delay", c.delay, "length", utf8.RuneCountInString(value))
	return c.timer.Schedule(c.delay, value)
}

// Update settles the pending value when its timer fires. Messages for
// other timers, superseded schedules, or a disposed controller are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	if c.state == Disposed {
		return nil
	}
	fired, ok := c.timer.Accept(msg)
	if !ok {
		return nil
	}
	return c.settle(fired.Value, c.pendingMinLength)
}

// Flush settles the pending value immediately. It does nothing when no
// change is pending.
func (c *Controller) Flush() tea.Cmd {
	if c.state != Pending {
		return nil
	}
	c.timer.Cancel()
	c.log.Debugw("flushing pending change")
	return c.settle(c.value, c.pendingMinLength)
}

// Dispose cancels any pending change. The controller never notifies
// again afterwards. Calling Dispose more than once is safe.
func (c *Controller) Dispose() {
	if c.state == Disposed {
		return
	}
	if c.timer.Pending() {
		c.log.Debugw("dropping pending change on dispose")
	}
	c.timer.Cancel()
	c.state = Disposed
}

func (c *Controller) settle(value string, minLength int) tea.Cmd {
	c.state = Idle
	outcome := Outcome(value, minLength)
	c.log.Debugw("change settled", "length", utf8.RuneCountInString(value), "delivered", outcome != "")
	c.delayedCallback(outcome)

	id := c.id
	return func() tea.Msg {
		return SettledMsg{ID: id, Value: outcome}
	}
}

// Outcome returns value when it has at least minLength runes, and ""
// otherwise.
func Outcome(value string, minLength int) string {
	if utf8.RuneCountInString(value) >= minLength {
		return value
	}
	return ""
}
