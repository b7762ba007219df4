package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Primary, theme.Secondary, theme.Foreground, theme.Muted,
		theme.Price, theme.Success, theme.Warning, theme.Error, theme.Border,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Price, theme.Success, theme.Warning, theme.Error} {
		assert.False(t, seen[c], "duplicate accent: %s", c)
		seen[c] = true
	}
}

func TestNewStyles(t *testing.T) {
	t.Run("with theme", func(t *testing.T) {
		theme := DefaultTheme()
		s := NewStyles(theme)

		require.NotNil(t, s)
		assert.Same(t, theme, s.Theme())
		assert.True(t, s.Title.GetBold())
		assert.Equal(t, lipgloss.TerminalColor(theme.Price), s.Price.GetForeground())
	})

	t.Run("nil theme uses default", func(t *testing.T) {
		s := NewStyles(nil)

		require.NotNil(t, s.Theme())
		assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
	})
}

func TestDefaultStyles_RenderText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Normal.Render("Creekside"), "Creekside")
	assert.Contains(t, s.InputField.Render("query"), "query")
}
