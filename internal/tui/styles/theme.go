package styles

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/glamour/v2/ansi"
	"github.com/charmbracelet/lipgloss/v2"
)

// Theme holds the semantic colors used across components.
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	BgBase   color.Color
	BgSubtle color.Color

	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Warning color.Color
	Info    color.Color

	styles *Styles
}

type Styles struct {
	Base  lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text input
	Prompt       lipgloss.Style
	Placeholder  lipgloss.Style
	Cursor       lipgloss.Style
	Pending      lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Result list
	Match    lipgloss.Style
	Selected lipgloss.Style

	Markdown ansi.StyleConfig
}

func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().
		Foreground(t.FgBase)

	return &Styles{
		Base: base,

		Title: base.
			Foreground(t.Accent).
			Bold(true),

		Text:  base,
		Muted: base.Foreground(t.FgMuted),
		Bold:  base.Bold(true),

		Success: base.Foreground(t.Success),
		Warning: base.Foreground(t.Warning),
		Info:    base.Foreground(t.Info),

		Prompt:      base.Foreground(t.Accent).Bold(true),
		Placeholder: base.Foreground(t.FgSubtle),
		Cursor: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(t.FgInverted),
		Pending: base.Foreground(t.Secondary),

		Input: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Match:    base.Foreground(t.Primary).Bold(true),
		Selected: base.Background(t.BgSubtle),

		Markdown: t.buildMarkdownStyles(),
	}
}

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

func (t *Theme) buildMarkdownStyles() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(colorToHex(t.FgMuted)),
			},
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "## ",
				Color:  stringPtr(colorToHex(t.Accent)),
				Bold:   boolPtr(true),
			},
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:           stringPtr(colorToHex(t.Primary)),
				BackgroundColor: stringPtr(colorToHex(t.BgBase)),
			},
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Paragraph: ansi.StyleBlock{
			Margin: uintPtr(0),
		},
	}
}

// Manager handles theme switching and registration
type Manager struct {
	themes  map[string]*Theme
	current *Theme
}

var defaultManager *Manager

func SetDefaultManager(m *Manager) {
	defaultManager = m
}

func CurrentTheme() *Theme {
	if defaultManager == nil {
		defaultManager = NewManager(DefaultThemeName)
	}
	return defaultManager.Current()
}

func NewManager(defaultTheme string) *Manager {
	m := &Manager{
		themes: make(map[string]*Theme),
	}

	m.Register(NewEmberTheme())
	m.Register(NewSlateTheme())

	m.current = m.themes[defaultTheme]
	if m.current == nil {
		m.current = m.themes[DefaultThemeName]
	}

	return m
}

func (m *Manager) Register(theme *Theme) {
	m.themes[theme.Name] = theme
}

func (m *Manager) Current() *Theme {
	return m.current
}

func (m *Manager) SetTheme(name string) error {
	if theme, ok := m.themes[name]; ok {
		m.current = theme
		return nil
	}
	return fmt.Errorf("theme %s not found", name)
}

// List returns the registered theme names in sorted order.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHex converts hex string to color
func ParseHex(hex string) color.Color {
	var r, g, b uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
