// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
	"github.com/custodia-labs/whistler-mcp/internal/money"
)

// linesPerResult is the height of one rendered property.
const linesPerResult = 2

// ResultList displays matching properties in a navigable list.
type ResultList struct {
	properties []domain.Property
	nights     int
	selected   int
	styles     *styles.Styles
	width      int
	height     int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of results around the selection.
func (r *ResultList) View() string {
	if len(r.properties) == 0 {
		return r.styles.Muted.Render("No properties")
	}

	header := fmt.Sprintf("Properties (%d)", len(r.properties))
	if r.nights > 0 {
		header += fmt.Sprintf(" for %d nights", r.nights)
	}
	lines := []string{r.styles.Subtitle.Render(header), ""}

	visible := max((r.height-4)/linesPerResult, 1)
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.properties))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderProperty(i, &r.properties[i]))
	}

	return strings.Join(lines, "\n")
}

// renderProperty formats one property as a title line and a facts line.
func (r *ResultList) renderProperty(index int, p *domain.Property) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	price := money.Amount(p.PricePerNight) + "/night"
	if r.nights > 0 {
		price = money.Amount(services.ListedStayTotal(p, r.nights)) + " total"
	}

	nameWidth := max(r.width-len(price)-8, 10)
	name := p.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	var title string
	if index == r.selected {
		title = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, nameWidth, name, price))
	} else {
		title = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, nameWidth, name)) +
			r.styles.Price.Render(price)
	}

	facts := fmt.Sprintf("    %s · %s · %d BR · %d guests · %s★",
		p.Type, p.NeighborhoodLabel(), p.Bedrooms, p.MaxGuests, services.FormatRating(p.Rating))
	if tags := p.Tags(); len(tags) > 0 {
		facts += " · " + strings.Join(tags, ", ")
	}

	return title + "\n" + r.styles.Muted.Render(facts)
}

// SetResults replaces the listed properties and resets the selection.
// nights > 0 switches prices to stay totals.
func (r *ResultList) SetResults(props []domain.Property, nights int) {
	r.properties = props
	r.nights = nights
	r.selected = 0
}

// Properties returns the listed properties.
func (r *ResultList) Properties() []domain.Property {
	return r.properties
}

// Selected returns the index of the selected property.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.properties) {
		r.selected = index
	}
}

// SelectedProperty returns the selected property, or nil if none.
func (r *ResultList) SelectedProperty() *domain.Property {
	if r.selected < 0 || r.selected >= len(r.properties) {
		return nil
	}
	return &r.properties[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.properties)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of listed properties.
func (r *ResultList) Count() int {
	return len(r.properties)
}
