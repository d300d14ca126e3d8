package delayinput

import (
	"testing"
	"time"

	"github.com/billie-coop/delaytext/internal/tui/components/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, opts ...Option) (*Controller, *fakeTicker, *recorder, *recorder) {
	t.Helper()
	ft := &fakeTicker{}
	delayed, passthrough := &recorder{}, &recorder{}
	base := []Option{
		ft.option(),
		WithDelayedCallback(delayed.record),
		WithOnChangeText(passthrough.record),
	}
	return NewController(append(base, opts...)...), ft, delayed, passthrough
}

func TestController_Defaults(t *testing.T) {
	c := NewController()
	assert.Equal(t, DefaultDelay, c.Delay())
	assert.Equal(t, DefaultMinLength, c.MinLength())
	assert.Equal(t, Idle, c.State())

	// Default callbacks are no-ops.
	cmd := c.HandleChange("abc")
	require.NotNil(t, cmd)
	c.Dispose()
}

func TestController_SettlesLongValue(t *testing.T) {
	c, ft, delayed, _ := newTestController(t)

	cmd := c.HandleChange("abc")
	assert.Equal(t, Pending, c.State())
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, ft.delays)
	assert.Empty(t, delayed.calls, "nothing is delivered before the quiet period")

	settled := c.Update(cmd())
	assert.Equal(t, []string{"abc"}, delayed.calls)
	assert.Equal(t, Idle, c.State())

	require.NotNil(t, settled)
	assert.Equal(t, SettledMsg{ID: c.ID(), Value: "abc"}, settled())
}

func TestController_SettlesShortValueAsEmpty(t *testing.T) {
	c, _, delayed, _ := newTestController(t)

	cmd := c.HandleChange("ab")
	c.Update(cmd())

	assert.Equal(t, []string{""}, delayed.calls)
	assert.Equal(t, "ab", c.Value(), "latest raw value is kept")
}

func TestController_BurstCollapses(t *testing.T) {
	c, ft, delayed, passthrough := newTestController(t)

	first := c.HandleChange("a")
	second := c.HandleChange("ab")
	third := c.HandleChange("abc")

	assert.Equal(t, []string{"a", "ab", "abc"}, passthrough.calls)
	assert.Len(t, ft.delays, 3)

	// Stale ticks still arrive from the runtime; they must be dropped.
	assert.Nil(t, c.Update(first()))
	assert.Nil(t, c.Update(second()))
	assert.Empty(t, delayed.calls)
	assert.Equal(t, Pending, c.State())

	assert.NotNil(t, c.Update(third()))
	assert.Equal(t, []string{"abc"}, delayed.calls)

	// A duplicate delivery of the winning tick does nothing.
	assert.Nil(t, c.Update(third()))
	assert.Equal(t, []string{"abc"}, delayed.calls)
}

func TestController_PassthroughIsSynchronous(t *testing.T) {
	c, _, delayed, passthrough := newTestController(t)

	c.HandleChange("x")
	assert.Equal(t, []string{"x"}, passthrough.calls)
	c.HandleChange("xy")
	assert.Equal(t, []string{"x", "xy"}, passthrough.calls)
	assert.Empty(t, delayed.calls)
}

func TestController_DisposeCancelsPending(t *testing.T) {
	c, _, delayed, passthrough := newTestController(t)

	cmd := c.HandleChange("abcdef")
	c.Dispose()
	assert.Equal(t, Disposed, c.State())

	assert.Nil(t, c.Update(cmd()))
	assert.Empty(t, delayed.calls)

	// Disposed is terminal: changes are recorded but never scheduled.
	assert.Nil(t, c.HandleChange("abcdefg"))
	assert.Equal(t, "abcdefg", c.Value())
	assert.Equal(t, []string{"abcdef", "abcdefg"}, passthrough.calls)
	assert.Nil(t, c.Flush())
	assert.Empty(t, delayed.calls)

	c.Dispose()
	assert.Equal(t, Disposed, c.State())
}

func TestController_DisposeWhenIdle(t *testing.T) {
	c, _, delayed, _ := newTestController(t)

	c.Update(c.HandleChange("abc")())
	c.Dispose()

	assert.Equal(t, Disposed, c.State())
	assert.Equal(t, []string{"abc"}, delayed.calls)
}

func TestController_ConfigCapturedAtScheduleTime(t *testing.T) {
	c, ft, delayed, _ := newTestController(t)

	cmd := c.HandleChange("ab")
	c.SetMinLength(2)
	c.SetDelay(time.Second)

	c.Update(cmd())
	assert.Equal(t, []string{""}, delayed.calls, "pending change keeps minLength 3")

	cmd = c.HandleChange("ab")
	c.Update(cmd())
	assert.Equal(t, []string{"", "ab"}, delayed.calls)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, ft.delays)
}

func TestController_NegativeDelayPassedToScheduler(t *testing.T) {
	c, ft, delayed, _ := newTestController(t, WithDelay(-10*time.Millisecond))

	c.Update(c.HandleChange("abc")())

	assert.Equal(t, []time.Duration{-10 * time.Millisecond}, ft.delays)
	assert.Equal(t, []string{"abc"}, delayed.calls)
}

func TestController_Flush(t *testing.T) {
	c, _, delayed, _ := newTestController(t)

	assert.Nil(t, c.Flush(), "flush is a no-op when idle")

	cmd := c.HandleChange("abcd")
	settled := c.Flush()
	require.NotNil(t, settled)
	assert.Equal(t, []string{"abcd"}, delayed.calls)
	assert.Equal(t, Idle, c.State())

	// The first tick was superseded by the flush.
	assert.Nil(t, c.Update(cmd()))
	assert.Equal(t, []string{"abcd"}, delayed.calls)
}

func TestController_IgnoresOtherTimers(t *testing.T) {
	c, _, delayed, _ := newTestController(t)
	other, _, _, _ := newTestController(t)

	c.HandleChange("abc")
	foreign := other.HandleChange("xyz")

	assert.Nil(t, c.Update(foreign()))
	assert.Nil(t, c.Update(core.TimerFiredMsg{ID: c.ID(), Seq: -1, Value: "zzz"}))
	assert.Empty(t, delayed.calls)
}

func TestController_TypingScenario(t *testing.T) {
	c, ft, delayed, _ := newTestController(t, WithMinLength(3), WithDelay(500*time.Millisecond))

	var cmds []func()
	for _, v := range []string{"a", "ab", "abc"} {
		cmd := c.HandleChange(v)
		cmds = append(cmds, func() { c.Update(cmd()) })
	}
	for _, fire := range cmds {
		fire()
	}

	assert.Equal(t, []string{"abc"}, delayed.calls)
	for _, d := range ft.delays {
		assert.Equal(t, 500*time.Millisecond, d)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		value     string
		minLength int
		want      string
	}{
		{"abc", 3, "abc"},
		{"ab", 3, ""},
		{"", 0, ""},
		{"a", 0, "a"},
		{"a", -1, "a"},
		{"héé", 3, "héé"}, // counted in runes, not bytes
		{"日本", 3, ""},
	}
	for _, tt := range tests {
		if got := Outcome(tt.value, tt.minLength); got != tt.want {
			t.Errorf("Outcome(%q, %d) = %q, want %q", tt.value, tt.minLength, got, tt.want)
		}
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "disposed", Disposed.String())
	assert.Equal(t, "unknown", State(42).String())
}
