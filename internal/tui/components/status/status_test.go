package status

import (
	"testing"
	"time"

	"github.com/billie-coop/delaytext/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func immediate(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

func TestComponent_MessageClears(t *testing.T) {
	c := New(core.WithTicker(immediate))

	cmd := c.ShowSuccess("settled")
	require.NotNil(t, cmd)
	assert.Equal(t, "settled", c.Message())

	c.Update(cmd())
	assert.Empty(t, c.Message())
}

func TestComponent_NewerMessageSurvivesOldClear(t *testing.T) {
	c := New(core.WithTicker(immediate))

	old := c.ShowInfo("first")
	c.ShowWarning("second")

	c.Update(old())
	assert.Equal(t, "second", c.Message())
}

func TestComponent_View(t *testing.T) {
	c := New()
	assert.Empty(t, c.View(), "no width, no view")

	c.SetSize(60, 1)
	c.SetLeftContent("delay 500ms")
	c.ShowSuccess("12 matches")

	view := c.View()
	assert.Contains(t, view, "delay 500ms")
	assert.Contains(t, view, "12 matches")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 2, "he"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
