package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Themes(t *testing.T) {
	m := NewManager("missing")
	assert.Equal(t, DefaultThemeName, m.Current().Name, "unknown default falls back")
	assert.Equal(t, []string{"ember", "slate"}, m.List())

	require.NoError(t, m.SetTheme("slate"))
	assert.Equal(t, "slate", m.Current().Name)

	err := m.SetTheme("neon")
	require.Error(t, err)
	assert.Equal(t, "slate", m.Current().Name)
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#c0392b", "#000000", "#ffffff"} {
		assert.Equal(t, hex, colorToHex(ParseHex(hex)))
	}
}

func TestStylesAreCached(t *testing.T) {
	theme := NewEmberTheme()
	assert.Same(t, theme.S(), theme.S())
}

func TestRenderMarkdown(t *testing.T) {
	SetDefaultManager(NewManager(DefaultThemeName))
	out := RenderMarkdown("press **enter** to settle", 40)
	assert.True(t, strings.Contains(out, "enter"), "rendered output: %q", out)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestMarkdownCodeUsesBaseBackground(t *testing.T) {
	theme := NewSlateTheme()
	code := theme.S().Markdown.Code
	require.NotNil(t, code.BackgroundColor)
	assert.Equal(t, colorToHex(theme.BgBase), *code.BackgroundColor)
}
