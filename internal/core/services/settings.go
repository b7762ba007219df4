package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyServerPort        = "server.port"
	KeyServerCORSOrigins = "server.cors_origins"
	KeyServerRateLimit   = "server.rate_limit"
	KeyServerRateBurst   = "server.rate_burst"
	KeyCatalogSource     = "catalog.source"
	KeyCatalogPath       = "catalog.path"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

var settingKeys = []string{
	KeyCatalogPath,
	KeyCatalogSource,
	KeyLogFormat,
	KeyLogLevel,
	KeyServerCORSOrigins,
	KeyServerPort,
	KeyServerRateBurst,
	KeyServerRateLimit,
}

// SettingsService manages server settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Server: domain.ServerSettings{
			Port:        s.getInt(KeyServerPort, defaults.Server.Port),
			CORSOrigins: s.getStringSlice(KeyServerCORSOrigins, defaults.Server.CORSOrigins),
			RateLimit:   s.getFloat(KeyServerRateLimit, defaults.Server.RateLimit),
			RateBurst:   s.getInt(KeyServerRateBurst, defaults.Server.RateBurst),
		},
		Catalog: domain.CatalogSettings{
			Source: s.getCatalogSource(defaults.Catalog.Source),
			Path:   s.configStore.GetString(KeyCatalogPath), // No default - only file sources need it
		},
		Log: domain.LogSettings{
			Level:  s.getString(KeyLogLevel, defaults.Log.Level),
			Format: s.getString(KeyLogFormat, defaults.Log.Format),
		},
	}

	return settings, nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case KeyServerPort, KeyServerRateBurst:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case KeyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		parsed = f
	case KeyServerCORSOrigins:
		var origins []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		parsed = origins
	case KeyCatalogSource:
		if !domain.CatalogSource(value).IsValid() {
			return fmt.Errorf("%w: catalog.source %q (use builtin, toml or sqlite)", domain.ErrInvalidInput, value)
		}
		parsed = value
	case KeyLogLevel:
		if _, err := logger.ParseLevel(value); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		parsed = strings.ToLower(value)
	case KeyLogFormat:
		if value != "text" && value != "json" {
			return fmt.Errorf("%w: log.format %q (use text or json)", domain.ErrInvalidInput, value)
		}
		parsed = value
	case KeyCatalogPath:
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every supported setting key, sorted.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getString retrieves a string value with fallback to default.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt retrieves a positive int value with fallback to default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

// getFloat retrieves a number with fallback to default. An explicit zero is kept.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return defaultVal
}

// getStringSlice retrieves a list with fallback to default.
func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if val := s.configStore.GetStringSlice(key); len(val) > 0 {
		return val
	}
	return append([]string(nil), defaultVal...)
}

// getCatalogSource retrieves the catalog source with fallback to default.
func (s *SettingsService) getCatalogSource(defaultVal domain.CatalogSource) domain.CatalogSource {
	raw := s.configStore.GetString(KeyCatalogSource)
	source := domain.CatalogSource(strings.ToLower(raw))
	if source.IsValid() {
		return source
	}
	if raw != "" {
		logger.Warn("ignoring unknown catalog.source %q, using %s", raw, defaultVal)
	}
	return defaultVal
}
