// Package delayinput provides a text input that delays notifying its
// consumer until typing pauses.
//
// Every change is forwarded immediately to the OnChangeText callback. The
// delayed callback runs once per quiet period with the latest value, or
// with "" when that value is shorter than the minimum length:
//
//	input := delayinput.New(
//		delayinput.WithDelay(300*time.Millisecond),
//		delayinput.WithMinLength(2),
//		delayinput.WithDelayedCallback(func(q string) { search(q) }),
//	)
//
// The model must receive every message the program gets, since the
// quiet period is driven by tea.Tick. Call Dispose when the input is torn
// down so a pending value is never delivered afterwards.
package delayinput

import (
	"github.com/billie-coop/delaytext/internal/tui/components/core"
	"github.com/billie-coop/delaytext/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Model is a TextInput wired to a debounce Controller.
type Model struct {
	input    *TextInput
	ctrl     *Controller
	keyMap   KeyMap
	spinner  spinner.Model
	spinning bool
	width    int
}

var (
	_ core.Component  = (*Model)(nil)
	_ core.Sizeable   = (*Model)(nil)
	_ core.Focusable  = (*Model)(nil)
	_ core.Disposable = (*Model)(nil)
)

// New creates a debounced input. The input starts unfocused.
func New(opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	input := NewTextInput()
	input.SetPrompt(o.prompt)
	input.SetPlaceholder(o.placeholder)
	input.SetCharLimit(o.charLimit)
	input.SetValue(o.defaultValue)
	if o.inputRef != nil {
		*o.inputRef = input
	}
	// The widget may have truncated or sanitized the default.
	o.defaultValue = input.Value()

	keyMap := DefaultKeyMap()
	if o.keyMap != nil {
		keyMap = *o.keyMap
	}

	m := &Model{
		input:  input,
		ctrl:   newController(o),
		keyMap: keyMap,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(styles.CurrentTheme().S().Pending),
		),
	}
	if o.width > 0 {
		m.SetSize(o.width, 1)
	}
	return m
}

// Init initializes the component
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update routes messages to the controller and the input. A change in
// the input's value is reported to the controller as a raw change.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if msg.ID != m.spinner.ID() {
			return m, nil
		}
		if m.ctrl.State() != Pending {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case core.TimerFiredMsg:
		return m, m.ctrl.Update(msg)

	case tea.KeyPressMsg:
		if m.input.Focused() && key.Matches(msg, m.keyMap.Submit) {
			return m, m.ctrl.Flush()
		}
	}

	prev := m.input.Value()
	cmd := m.input.Update(msg)
	if value := m.input.Value(); value != prev {
		cmd = tea.Batch(cmd, m.handleChange(value))
	}
	return m, cmd
}

// Clear empties the input and settles the empty value at once.
func (m *Model) Clear() tea.Cmd {
	if m.input.Value() == "" && m.ctrl.State() != Pending {
		return nil
	}
	m.input.Reset()
	return tea.Batch(m.handleChange(""), m.ctrl.Flush())
}

func (m *Model) handleChange(value string) tea.Cmd {
	cmd := m.ctrl.HandleChange(value)
	if m.ctrl.State() == Pending && !m.spinning {
		m.spinning = true
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

// View renders the input with a spinner while a change is pending
func (m *Model) View() string {
	s := styles.CurrentTheme().S()
	style := s.Input
	if m.input.Focused() {
		style = s.InputFocused
	}
	if m.width > 0 {
		style = style.Width(m.width)
	}

	indicator := " "
	if m.ctrl.State() == Pending {
		indicator = m.spinner.View()
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), " ", indicator))
}

// SetSize sets the outer width; the text area gets what remains after
// the border, padding, prompt and spinner.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = max(width, 0)
	if m.width == 0 {
		m.input.SetWidth(0)
		return nil
	}
	frame := styles.CurrentTheme().S().Input.GetHorizontalFrameSize()
	inner := m.width - frame - lipgloss.Width(m.input.Prompt()) - 3
	m.input.SetWidth(max(inner, 1))
	return nil
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() tea.Cmd {
	return m.input.Blur()
}

func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Dispose cancels any pending change. The delayed callback will not run
// again for this model.
func (m *Model) Dispose() {
	m.ctrl.Dispose()
}

// Input returns the underlying text input for direct manipulation.
// Values set through it are not reported as changes.
func (m *Model) Input() *TextInput {
	return m.input
}

// Controller returns the debounce controller.
func (m *Model) Controller() *Controller {
	return m.ctrl
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Pending reports whether a change is waiting for the quiet period.
func (m *Model) Pending() bool {
	return m.ctrl.State() == Pending
}
