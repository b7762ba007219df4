package presenter

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// Comparison renders a comparison as a markdown table with one column
// per property, headed by property ids.
func Comparison(c *domain.Comparison) string {
	var b strings.Builder

	b.WriteString("## Property Comparison")
	if c.Range != nil {
		fmt.Fprintf(&b, " (%s, %s)", c.Range, plural(c.Nights(), "night"))
	}
	b.WriteString("\n\n")

	ids := make([]string, len(c.Properties))
	seps := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		ids[i] = p.ID
		seps[i] = "--------"
	}
	fmt.Fprintf(&b, "| Feature | %s |\n", strings.Join(ids, " | "))
	fmt.Fprintf(&b, "|---------|%s|", strings.Join(seps, "|"))

	for _, row := range c.Rows {
		fmt.Fprintf(&b, "\n| %s | %s |", row.Label, strings.Join(escapeCells(row.Values), " | "))
	}
	return b.String()
}

func escapeCells(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ReplaceAll(v, "|", `\|`)
	}
	return out
}
