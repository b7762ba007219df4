package domain

import (
	"errors"
	"fmt"
)

// CatalogSource selects where the rental catalog is loaded from.
type CatalogSource string

// Available catalog sources.
const (
	// CatalogSourceBuiltin uses the catalog compiled into the binary.
	CatalogSourceBuiltin CatalogSource = "builtin"

	// CatalogSourceTOML loads a TOML catalog file.
	CatalogSourceTOML CatalogSource = "toml"

	// CatalogSourceSQLite loads a SQLite catalog database.
	CatalogSourceSQLite CatalogSource = "sqlite"
)

// IsValid returns true if the catalog source is recognised.
func (s CatalogSource) IsValid() bool {
	switch s {
	case CatalogSourceBuiltin, CatalogSourceTOML, CatalogSourceSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s CatalogSource) String() string {
	return string(s)
}

// NeedsPath reports whether the source reads a file.
func (s CatalogSource) NeedsPath() bool {
	return s == CatalogSourceTOML || s == CatalogSourceSQLite
}

// ServerSettings configures the HTTP transport.
type ServerSettings struct {
	Port        int
	CORSOrigins []string

	// RateLimit is the sustained requests per second allowed over HTTP.
	// Zero disables rate limiting.
	RateLimit float64
	RateBurst int
}

// CatalogSettings configures catalog loading.
type CatalogSettings struct {
	Source CatalogSource
	Path   string
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string
	Format string
}

// Settings is the resolved server configuration.
type Settings struct {
	Server  ServerSettings
	Catalog CatalogSettings
	Log     LogSettings
}

// DefaultSettings returns the configuration used when nothing is set.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Port:        8080,
			CORSOrigins: []string{"*"},
			RateLimit:   10,
			RateBurst:   20,
		},
		Catalog: CatalogSettings{
			Source: CatalogSourceBuiltin,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports every inconsistency in the settings.
func (s *Settings) Validate() error {
	var errs []error
	if s.Server.Port < 1 || s.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d outside 1-65535", s.Server.Port))
	}
	if s.Server.RateLimit < 0 {
		errs = append(errs, errors.New("server.rate_limit must not be negative"))
	}
	if s.Server.RateLimit > 0 && s.Server.RateBurst < 1 {
		errs = append(errs, errors.New("server.rate_burst must be at least 1 when rate limiting"))
	}
	if !s.Catalog.Source.IsValid() {
		errs = append(errs, fmt.Errorf("catalog.source %q (use builtin, toml or sqlite)", s.Catalog.Source))
	}
	if s.Catalog.Source.NeedsPath() && s.Catalog.Path == "" {
		errs = append(errs, fmt.Errorf("catalog.path is required for catalog.source %q", s.Catalog.Source))
	}
	if s.Log.Format != "text" && s.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format %q (use text or json)", s.Log.Format))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
