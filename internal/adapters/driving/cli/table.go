package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newTable creates a table for w. Terminals get a rounded, colored
// table; anything else gets plain ASCII so output stays greppable.
// With labelColumn, the first column is rendered like a header.
func newTable(w io.Writer, labelColumn bool, headers ...string) *table.Table {
	t := table.New().Headers(headers...)

	if !isTerminal(w) {
		plain := lipgloss.NewStyle().Padding(0, 1)
		return t.Border(lipgloss.ASCIIBorder()).StyleFunc(func(_, _ int) lipgloss.Style {
			return plain
		})
	}

	return t.Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case labelColumn && col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		})
}
