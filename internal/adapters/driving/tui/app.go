package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/views/page"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/views/property"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles

	menuView     *menu.View
	searchView   *search.View
	propertyView *property.View

	// pageView shows the area guide and the platform overview.
	pageView *page.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		searchView:   search.NewView(s, nil, ports.Search),
		propertyView: property.NewView(s),
		pageView:     page.NewView(s),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("whistler - Vacation Rentals")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forwardKey(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.PropertySelected:
		a.currentView = messages.ViewProperty
		a.propertyView.SetDetails(nil)
		return a, a.loadDetails(msg.ID)

	case messages.DetailsLoaded:
		a.err = msg.Err
		a.propertyView, cmd = a.propertyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewProperty:
			a.propertyView, cmd = a.propertyView.Update(msg)
		case messages.ViewMenu, messages.ViewGuide, messages.ViewPlatforms, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages, such as cursor blinks, to the search input.
	if a.currentView == messages.ViewSearch {
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return a, cmd
}

// forwardKey sends a key press to the active view.
func (a *App) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewProperty:
		a.propertyView, cmd = a.propertyView.Update(msg)
	case messages.ViewGuide, messages.ViewPlatforms:
		a.pageView, cmd = a.pageView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return a, cmd
}

// switchView activates a view, preparing its content.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	previous := a.currentView
	a.currentView = view

	switch view {
	case messages.ViewSearch:
		// Returning from a property keeps the results.
		if previous == messages.ViewProperty {
			return nil
		}
		return a.searchView.Reset()
	case messages.ViewGuide:
		a.pageView.SetContent("Area Guide",
			presenter.AreaGuide(a.ports.Catalog.ListNeighborhoods(a.ctx)), messages.ViewMenu)
	case messages.ViewPlatforms:
		a.pageView.SetContent("Booking Platforms",
			presenter.PlatformsGuide(a.ports.Catalog.ListPlatforms(a.ctx)), messages.ViewMenu)
	case messages.ViewMenu, messages.ViewProperty, messages.ViewHelp:
		// No preparation needed
	}
	return nil
}

// loadDetails returns a command that loads one property.
func (a *App) loadDetails(id string) tea.Cmd {
	ctx := a.ctx
	svc := a.ports.Property
	return func() tea.Msg {
		details, err := svc.Details(ctx, id)
		return messages.DetailsLoaded{ID: id, Details: details, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewProperty:
		return a.propertyView.View()
	case messages.ViewGuide, messages.ViewPlatforms:
		return a.pageView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Enter a query, e.g. "creekside 2br <400 ski pets +hot-tub"
  in:DATE     Check-in (YYYY-MM-DD), used with out:DATE
  sort:KEY    price_asc, price_desc, rating or bedrooms
  enter       Submit search (empty lists every property)

Results:
  j/k, ↑/↓    Navigate results
  enter       Property details
  s           Cycle sort order
  n           New search

[esc] back to menu`
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sizes the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.propertyView.SetDimensions(width, height)
	a.pageView.SetDimensions(width, height)
}
