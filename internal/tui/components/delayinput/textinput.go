package delayinput

import (
	"github.com/billie-coop/delaytext/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// TextInput is a single-line text field backed by the bubbles textinput.
// It owns rendering and keyboard handling; it knows nothing about
// debouncing.
type TextInput struct {
	model textinput.Model
}

// NewTextInput creates an empty, unfocused input styled from the current
// theme.
func NewTextInput() *TextInput {
	ti := textinput.New()
	ti.VirtualCursor = true
	ti.Styles = inputStyles(styles.CurrentTheme())

	// The cursor mode is only applied on Update. Run one unfocused
	// update so Focus does not start a blink loop.
	ti, _ = ti.Update(nil)
	return &TextInput{model: ti}
}

func inputStyles(t *styles.Theme) textinput.Styles {
	s := t.S()
	is := textinput.DefaultStyles(t.IsDark)
	is.Focused.Prompt = s.Prompt
	is.Focused.Placeholder = s.Placeholder
	is.Focused.Suggestion = s.Muted
	is.Focused.Text = s.Text
	is.Blurred.Prompt = s.Prompt
	is.Blurred.Placeholder = s.Placeholder
	is.Blurred.Suggestion = s.Muted
	is.Blurred.Text = s.Muted
	is.Cursor.Color = t.Primary
	is.Cursor.Blink = false
	return is
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetValue replaces the value and moves the cursor to the end. It is a
// programmatic update, not a user change.
func (t *TextInput) SetValue(s string) {
	t.model.SetValue(s)
	t.model.CursorEnd()
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.model.Reset()
}

// Position returns the cursor position in runes.
func (t *TextInput) Position() int {
	return t.model.Position()
}

// SetCursor moves the cursor, clamped to the value.
func (t *TextInput) SetCursor(pos int) {
	t.model.SetCursor(pos)
}

func (t *TextInput) SetPlaceholder(s string) {
	t.model.Placeholder = s
}

func (t *TextInput) Prompt() string {
	return t.model.Prompt
}

func (t *TextInput) SetPrompt(s string) {
	t.model.Prompt = s
}

// SetCharLimit caps the value length. Zero means no limit.
func (t *TextInput) SetCharLimit(n int) {
	t.model.CharLimit = max(n, 0)
	if v := []rune(t.model.Value()); n > 0 && len(v) > n {
		t.model.SetValue(string(v[:n]))
	}
}

// Width returns the visible width of the text area.
func (t *TextInput) Width() int {
	return t.model.Width()
}

// SetWidth sets the visible width of the text area, excluding the prompt.
// Zero means unbounded.
func (t *TextInput) SetWidth(w int) {
	t.model.SetWidth(max(w, 0))
}

func (t *TextInput) Focus() tea.Cmd {
	return t.model.Focus()
}

func (t *TextInput) Blur() tea.Cmd {
	t.model.Blur()
	return nil
}

func (t *TextInput) Focused() bool {
	return t.model.Focused()
}

// Update handles input events. Unfocused inputs ignore all messages.
func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

// View renders the input
func (t *TextInput) View() string {
	return t.model.View()
}
