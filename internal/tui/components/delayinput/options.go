package delayinput

import (
	"time"

	"github.com/billie-coop/delaytext/internal/tui/components/core"
)

const (
	// DefaultDelay is the quiet period before the delayed callback runs.
	DefaultDelay = 500 * time.Millisecond
	// DefaultMinLength is the shortest value delivered as-is.
	DefaultMinLength = 3
)

type options struct {
	delay           time.Duration
	minLength       int
	delayedCallback func(string)
	onChangeText    func(string)
	timerOpts       []core.TimerOption

	// Passed to the TextInput.
	placeholder  string
	prompt       string
	defaultValue string
	charLimit    int
	width        int
	keyMap       *KeyMap
	inputRef     **TextInput
}

func defaultOptions() options {
	return options{
		delay:           DefaultDelay,
		minLength:       DefaultMinLength,
		delayedCallback: func(string) {},
		onChangeText:    func(string) {},
		prompt:          "> ",
	}
}

// Option configures a Controller or Model.
type Option func(*options)

// WithDelay sets the quiet period. The value is passed to the scheduler
// unchanged, so zero or negative delays settle on the next tick.
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithMinLength sets the shortest value, in runes, that is delivered
// as-is. Shorter values are delivered as "".
func WithMinLength(n int) Option {
	return func(o *options) { o.minLength = n }
}

// WithDelayedCallback sets the consumer of settled values.
func WithDelayedCallback(fn func(string)) Option {
	return func(o *options) {
		if fn != nil {
			o.delayedCallback = fn
		}
	}
}

// WithOnChangeText sets the undelayed passthrough consumer.
func WithOnChangeText(fn func(string)) Option {
	return func(o *options) {
		if fn != nil {
			o.onChangeText = fn
		}
	}
}

// WithTimerOptions configures the underlying timer.
func WithTimerOptions(opts ...core.TimerOption) Option {
	return func(o *options) { o.timerOpts = append(o.timerOpts, opts...) }
}

func WithPlaceholder(s string) Option {
	return func(o *options) { o.placeholder = s }
}

func WithPrompt(s string) Option {
	return func(o *options) { o.prompt = s }
}

// WithDefaultValue sets the initial text. It does not count as a change.
func WithDefaultValue(s string) Option {
	return func(o *options) { o.defaultValue = s }
}

// WithCharLimit caps the value length in runes. Zero means no limit.
func WithCharLimit(n int) Option {
	return func(o *options) { o.charLimit = n }
}

func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

func WithKeyMap(km KeyMap) Option {
	return func(o *options) { o.keyMap = &km }
}

// WithInputRef stores the underlying TextInput in ref so the caller can
// manipulate it directly.
func WithInputRef(ref **TextInput) Option {
	return func(o *options) { o.inputRef = ref }
}
