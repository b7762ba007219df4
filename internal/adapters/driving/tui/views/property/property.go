// Package property provides the property details view for the TUI.
package property

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
	"github.com/custodia-labs/whistler-mcp/internal/money"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

// View is the property details view.
type View struct {
	styles *styles.Styles

	id           string
	details      *domain.PropertyDetails
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new property details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetDetails sets the property to display.
func (v *View) SetDetails(details *domain.PropertyDetails) {
	v.details = details
	v.scrollOffset = 0
	v.err = nil
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the property view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DetailsLoaded:
		v.id = msg.ID
		if msg.Err != nil {
			v.details = nil
			v.SetError(msg.Err)
		} else {
			v.SetDetails(msg.Details)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// visibleLines returns the number of content lines that fit.
func (v *View) visibleLines() int {
	// title, separator, help and padding
	return max(v.height-6, 1)
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.details == nil {
		return nil
	}
	p := &v.details.Property

	rating := services.FormatRating(p.Rating)
	if p.ReviewCount > 0 {
		rating = fmt.Sprintf("%s (%d reviews)", rating, p.ReviewCount)
	}

	lines := []string{
		v.formatField("ID", p.ID),
		v.formatField("Type", p.Type.String()),
		v.formatField("Area", p.NeighborhoodLabel()),
		v.formatField("Bedrooms", fmt.Sprintf("%d", p.Bedrooms)),
		v.formatField("Bathrooms", fmt.Sprintf("%d", p.Bathrooms)),
		v.formatField("Guests", fmt.Sprintf("up to %d", p.MaxGuests)),
		v.formatField("Price", money.CAD(p.PricePerNight)+" / night"),
		v.formatField("Cleaning", money.CAD(p.CleaningFee)),
		v.formatField("Min stay", fmt.Sprintf("%d nights", p.MinimumStay)),
		v.formatField("Rating", rating),
	}
	if p.Host.Name != "" {
		host := p.Host.Name
		if p.Host.Superhost {
			host += " (Superhost)"
		}
		lines = append(lines, v.formatField("Host", host))
	}
	if tags := p.Tags(); len(tags) > 0 {
		lines = append(lines, v.formatField("Features", strings.Join(tags, ", ")))
	}
	if p.Coordinates != (domain.Coordinates{}) {
		lines = append(lines, v.formatField("Geohash", presenter.Geohash(p.Coordinates)))
	}

	if p.Description != "" {
		lines = append(lines, "", "About:", "  "+p.Description)
	}

	if len(p.Amenities) > 0 {
		lines = append(lines, "", "Amenities:")
		for _, a := range p.Amenities {
			lines = append(lines, "  "+a)
		}
	}

	if n := v.details.Neighborhood; n != nil {
		lines = append(lines, "", "Neighborhood:",
			"  "+n.Name,
			"  Nearest lift: "+orNone(n.NearestLift),
			"  To village: "+orNone(n.DistanceToVillage),
		)
		for _, h := range n.Highlights {
			lines = append(lines, "  · "+h)
		}
	}

	return lines
}

func orNone(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-10s %s", label+":", value)
}

// View renders the property details view.
func (v *View) View() string {
	var b strings.Builder

	title := "Property Details"
	if v.details != nil {
		title = v.details.Property.Name
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 1), 60)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(presenter.ErrorMessage(v.err, v.id)))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.details == nil {
		b.WriteString(v.styles.Muted.Render("No property selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(lines))
	for _, line := range lines[v.scrollOffset:end] {
		b.WriteString(v.renderLine(line))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1, end, len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderLine styles section headings, fields and section items.
func (v *View) renderLine(line string) string {
	switch {
	case strings.HasPrefix(line, "  "):
		return v.styles.Normal.Render(line)
	case strings.HasSuffix(line, ":"):
		return v.styles.Subtitle.Render(line)
	}
	if label, value, ok := strings.Cut(line, ":"); ok {
		return v.styles.Subtitle.Render(label+":") + v.styles.Normal.Render(value)
	}
	return v.styles.Normal.Render(line)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Details returns the displayed property.
func (v *View) Details() *domain.PropertyDetails {
	return v.details
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// ScrollOffset returns the first visible content line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
