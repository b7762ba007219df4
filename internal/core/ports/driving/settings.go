package driving

import "github.com/custodia-labs/whistler-mcp/internal/core/domain"

// SettingsService manages server configuration.
type SettingsService interface {
	// Get resolves the current settings, falling back to defaults for
	// unset or malformed values.
	Get() (*domain.Settings, error)

	// Set parses and stores one setting given as text, e.g.
	// Set("server.port", "9000").
	Set(key, value string) error

	// Keys returns every supported setting key.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
