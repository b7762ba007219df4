// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query  string
	Result *domain.SearchResult
	Err    error
}

// PropertySelected is sent when a search result is opened.
type PropertySelected struct {
	ID string
}

// DetailsLoaded carries a property and its neighborhood.
type DetailsLoaded struct {
	ID      string
	Details *domain.PropertyDetails
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewProperty shows one property in detail.
	ViewProperty
	// ViewGuide shows the area guide.
	ViewGuide
	// ViewPlatforms shows the booking platform overview.
	ViewPlatforms
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewProperty:
		return "property"
	case ViewGuide:
		return "guide"
	case ViewPlatforms:
		return "platforms"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
