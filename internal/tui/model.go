package tui

import (
	"fmt"
	"strings"

	"github.com/billie-coop/delaytext/internal/app"
	"github.com/billie-coop/delaytext/internal/logging"
	"github.com/billie-coop/delaytext/internal/tui/components/core"
	"github.com/billie-coop/delaytext/internal/tui/components/delayinput"
	"github.com/billie-coop/delaytext/internal/tui/components/status"
	"github.com/billie-coop/delaytext/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const helpMarkdown = `## Keys

- Type to filter; results update once typing **pauses**.
- Queries shorter than the minimum length show every word.
- ` + "`enter`" + ` settles immediately, ` + "`ctrl+l`" + ` clears, ` + "`ctrl+g`" + ` hides this help, ` + "`esc`" + ` quits.
`

// Model is the root TUI model: a debounced filter over the word index.
type Model struct {
	width  int
	height int

	app       *app.App
	input     *delayinput.Model
	statusBar *status.Component
	keyMap    KeyMap

	query      string
	matches    []string
	keystrokes int
	settles    int

	showHelp  bool
	helpWidth int
	helpView  string
}

type settings struct {
	inputOpts []delayinput.Option
	timerOpts []core.TimerOption
}

// Option configures the root model.
type Option func(*settings)

// WithInputOptions applies extra options to the input after the
// configured ones.
func WithInputOptions(opts ...delayinput.Option) Option {
	return func(s *settings) { s.inputOpts = append(s.inputOpts, opts...) }
}

// WithTimerOptions configures every timer the model owns.
func WithTimerOptions(opts ...core.TimerOption) Option {
	return func(s *settings) { s.timerOpts = append(s.timerOpts, opts...) }
}

// New creates the root model from the loaded app.
func New(a *app.App, opts ...Option) *Model {
	var set settings
	for _, opt := range opts {
		opt(&set)
	}

	cfg := a.Config.Get()
	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	m := &Model{
		app:       a,
		statusBar: status.New(set.timerOpts...),
		keyMap:    DefaultKeyMap(),
		matches:   a.Words.Filter(""),
		showHelp:  true,
	}

	base := []delayinput.Option{
		delayinput.WithDelay(cfg.Delay()),
		delayinput.WithMinLength(cfg.MinLength),
		delayinput.WithPlaceholder(cfg.Placeholder),
		delayinput.WithCharLimit(cfg.CharLimit),
		delayinput.WithDelayedCallback(m.applyQuery),
		delayinput.WithOnChangeText(m.countKeystroke),
		delayinput.WithTimerOptions(set.timerOpts...),
	}
	m.input = delayinput.New(append(base, set.inputOpts...)...)
	m.input.Focus()
	m.updateLeftStatus()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

// applyQuery is the input's delayed callback.
func (m *Model) applyQuery(query string) {
	m.query = query
	m.matches = m.app.Words.Filter(query)
	m.settles++
	logging.L().Debugw("query applied", "query", query, "matches", len(m.matches))
}

// countKeystroke is the input's passthrough callback.
func (m *Model) countKeystroke(string) {
	m.keystrokes++
}

func (m *Model) updateLeftStatus() {
	icon := styles.CheckIcon
	if m.input.Pending() {
		icon = styles.PendingIcon
	}
	ctrl := m.input.Controller()
	m.statusBar.SetLeftContent(fmt.Sprintf("%s delay %s · min %d · %d changes · %d settled",
		icon, core.FormatSeconds(ctrl.Delay()), ctrl.MinLength(), m.keystrokes, m.settles))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resize())

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			m.Dispose()
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.ToggleHelp):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keyMap.Clear):
			// Clearing is a change like any other, settled at once.
			cmd := m.input.Clear()
			m.updateLeftStatus()
			return m, cmd
		}

	case delayinput.SettledMsg:
		if msg.ID == m.input.Controller().ID() {
			cmds = append(cmds, m.statusBar.ShowSuccess(m.settledSummary()))
		}
	}

	_, cmd := m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.updateLeftStatus()
	_, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) settledSummary() string {
	if m.query == "" {
		return fmt.Sprintf("%d words", len(m.matches))
	}
	return fmt.Sprintf("%d matches for %q", len(m.matches), m.query)
}

func (m *Model) resize() tea.Cmd {
	return tea.Batch(
		m.input.SetSize(m.width, 3),
		m.statusBar.SetSize(m.width, 1),
	)
}

// Dispose releases the input's pending work.
func (m *Model) Dispose() {
	m.input.Dispose()
}

// Query returns the last settled query.
func (m *Model) Query() string {
	return m.query
}

// Matches returns the words matching the last settled query.
func (m *Model) Matches() []string {
	return m.matches
}

// View renders the UI
func (m *Model) View() tea.View {
	s := styles.CurrentTheme().S()

	header := s.Title.Render(styles.SearchIcon + " delaytext")
	input := m.input.View()
	statusBar := m.statusBar.View()

	var help string
	if m.showHelp {
		help = m.renderHelp()
	}

	used := lipgloss.Height(header) + lipgloss.Height(input) + lipgloss.Height(statusBar)
	if help != "" {
		used += lipgloss.Height(help)
	}
	results := m.renderResults(m.height - used)

	parts := []string{header, input, results}
	if help != "" {
		parts = append(parts, help)
	}
	parts = append(parts, statusBar)
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderResults(height int) string {
	s := styles.CurrentTheme().S()
	if len(m.matches) == 0 {
		return s.Muted.Render(styles.EmptyIcon + " no matches")
	}
	if m.height == 0 {
		height = len(m.matches)
	}
	height = max(height, 1)

	lines := make([]string, 0, min(height, len(m.matches)))
	for i, w := range m.matches {
		if i == height-1 && len(m.matches) > height {
			lines = append(lines, s.Muted.Render(fmt.Sprintf("… %d more", len(m.matches)-i)))
			break
		}
		text := s.Text
		if i == 0 && m.query != "" {
			text = s.Selected
		}
		lines = append(lines, highlight(w, m.query, text, s.Match))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	width := max(m.width, 40)
	if m.helpView == "" || m.helpWidth != width {
		m.helpWidth = width
		m.helpView = styles.RenderMarkdown(helpMarkdown, width)
	}
	return m.helpView
}

// highlight renders the first case-insensitive occurrence of query in
// word. Words or queries whose lowercase form changes byte length are
// rendered plain.
func highlight(word, query string, text, match lipgloss.Style) string {
	if query == "" {
		return text.Render(word)
	}
	lowerWord, lowerQuery := strings.ToLower(word), strings.ToLower(query)
	if len(lowerWord) != len(word) || len(lowerQuery) != len(query) {
		return text.Render(word)
	}
	i := strings.Index(lowerWord, lowerQuery)
	if i < 0 {
		return text.Render(word)
	}
	end := i + len(lowerQuery)
	if end > len(word) {
		return text.Render(word)
	}
	return text.Render(word[:i]) + match.Render(word[i:end]) + text.Render(word[end:])
}
