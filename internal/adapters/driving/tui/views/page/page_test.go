package page

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/messages"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return strings.Join(lines, "\n")
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.Nil(t, v.Init())
	assert.Equal(t, 0, v.LineCount())
	assert.Contains(t, v.View(), "Nothing to show")
}

func TestView_SetContent(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 40)

	v.SetContent("Area Guide", "# Whistler\n\n## Neighborhoods\nCreekside is quiet.\n", messages.ViewMenu)

	assert.Equal(t, "Area Guide", v.Title())
	assert.Equal(t, 4, v.LineCount())

	view := v.View()
	assert.Contains(t, view, "Area Guide")
	assert.Contains(t, view, "Neighborhoods")
	assert.NotContains(t, view, "## Neighborhoods")
	assert.Contains(t, view, "Creekside is quiet.")
}

func TestView_WrapsLongLines(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(24, 40)

	v.SetContent("Guide", strings.Repeat("powder ", 10), messages.ViewMenu)

	assert.Greater(t, v.LineCount(), 1)

	v.SetDimensions(200, 40)
	assert.Equal(t, 1, v.LineCount())
}

func TestView_Scroll(t *testing.T) {
	v := NewView(nil)
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 16})
	v.SetContent("Platforms", numberedLines(30), messages.ViewMenu)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want int
	}{
		{"up at top", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 2},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, 12},
		{"page down clamps", tea.KeyMsg{Type: tea.KeyPgDown}, 20},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, 10},
		{"home", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, 0},
		{"end", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, 20},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.Update(tt.key)
			assert.Equal(t, tt.want, v.ScrollOffset())
		})
	}

	assert.Contains(t, v.View(), "[Line 20-29 of 30]")
}

func TestView_EscNavigatesBack(t *testing.T) {
	v := NewView(nil)
	v.SetContent("Guide", "text", messages.ViewSearch)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestView_SetContentResetsScroll(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 10)
	v.SetContent("A", numberedLines(20), messages.ViewMenu)
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, v.ScrollOffset())

	v.SetContent("B", "short", messages.ViewMenu)

	assert.Equal(t, 0, v.ScrollOffset())
}
