package status

import (
	"strings"
	"time"

	"github.com/billie-coop/delaytext/internal/tui/components/core"
	"github.com/billie-coop/delaytext/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Success
)

// DefaultClearAfter is how long a status message stays visible.
const DefaultClearAfter = 4 * time.Second

// Component is a one-line status bar: fixed left content plus a
// temporary message on the right.
type Component struct {
	core.SizeableBase

	message     string
	messageType MessageType
	leftContent string

	clearAfter time.Duration
	clear      *core.Timer
}

var _ core.Component = (*Component)(nil)

// New creates a new status bar component
func New(opts ...core.TimerOption) *Component {
	return &Component{
		clearAfter: DefaultClearAfter,
		clear:      core.NewTimer(core.NextID(), opts...),
	}
}

// SetMessage shows a message and schedules it to clear. A newer message
// replaces the old one and restarts the clear timer.
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	c.message = content
	c.messageType = msgType
	return c.clear.Schedule(c.clearAfter, content)
}

func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the visible message, if any.
func (c *Component) Message() string {
	return c.message
}

// SetLeftContent sets the left side content
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// Init implements the Component interface
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update clears the message when its timer fires.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := c.clear.Accept(msg); ok {
		c.message = ""
	}
	return c, nil
}

// View implements the Component interface
func (c *Component) View() string {
	if c.Width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	statusStyle := lipgloss.NewStyle().
		Width(c.Width).
		Height(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	left := c.leftContent
	right := c.formatMessage()
	available := c.Width - 2

	if lipgloss.Width(left)+lipgloss.Width(right) > available {
		right = truncate(right, 40)
		left = truncate(left, available-lipgloss.Width(right)-1)
	}

	content := left
	if right != "" {
		gap := available - lipgloss.Width(left) - lipgloss.Width(right)
		content += strings.Repeat(" ", max(gap, 1)) + right
	}
	return statusStyle.Render(content)
}

func (c *Component) formatMessage() string {
	if c.message == "" {
		return ""
	}
	switch c.messageType {
	case Success:
		return styles.CheckIcon + " " + c.message
	case Warning:
		return "! " + c.message
	default:
		return c.message
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
