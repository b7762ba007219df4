// Package cli provides the command-line interface for the Whistler rental
// catalog: the MCP server plus direct query commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/reload"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/sqlite"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/tomlfile"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/config/env"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// version is set at build time.
var version = "dev"

// dotenvFile is read from the working directory when present.
const dotenvFile = ".env"

// Services used by the commands. They are wired by bootstrap before any
// command runs.
var (
	searchService       driving.SearchService
	availabilityService driving.AvailabilityService
	compareService      driving.CompareService
	propertyService     driving.PropertyService
	catalogService      driving.CatalogService
	settingsService     driving.SettingsService

	// activeCatalog is the loaded catalog, exported by "catalog export".
	activeCatalog driven.Catalog

	// activeSettings are the resolved settings of this run.
	activeSettings *domain.Settings
)

// Global flags.
var (
	verboseFlag bool
	configFlag  string
	catalogFlag string
)

// bootstrap wires configuration, logging, the catalog and services.
// Tests replace it.
var bootstrap = defaultBootstrap

var rootCmd = &cobra.Command{
	Use:   "whistler",
	Short: "Whistler vacation rental search",
	Long: `Search, price and compare Whistler vacation rentals.

Run "whistler serve" to expose the catalog to AI assistants over the
Model Context Protocol, or query it directly with search, availability,
compare and details.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return bootstrap(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.whistler/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "catalog file (.toml or .db), overrides catalog settings")
}

// Execute runs the root command.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.ExecuteContext(ctx)
}

func defaultBootstrap(cmd *cobra.Command) error {
	store, err := openConfigStore(configFlag)
	if err != nil {
		return err
	}

	settingsService = services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	if catalogFlag != "" {
		settings.Catalog = catalogSettingsFor(catalogFlag)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings in %s: %w", store.Path(), err)
	}

	if err := configureLogging(settings.Log); err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context(), settings.Catalog)
	if err != nil {
		return err
	}

	wireServices(catalog)
	activeSettings = settings
	return nil
}

// openConfigStore layers WHISTLER_* variables and .env over the TOML file.
func openConfigStore(path string) (driven.ConfigStore, error) {
	base, err := file.NewConfigStore(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	store, err := env.New(base, os.Environ(), dotenvFile)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if overrides := store.Overrides(); len(overrides) > 0 {
		logger.Debug("Environment overrides: %s", strings.Join(overrides, ", "))
	}
	return store, nil
}

// catalogSettingsFor infers the catalog source from a file extension.
func catalogSettingsFor(path string) domain.CatalogSettings {
	source := domain.CatalogSourceSQLite
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		source = domain.CatalogSourceTOML
	}
	return domain.CatalogSettings{Source: source, Path: path}
}

func configureLogging(s domain.LogSettings) error {
	level, err := logger.ParseLevel(s.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	logger.SetFormat(logger.Format(s.Format))
	return nil
}

// catalogLoader returns the file loader for source, or nil for the
// built-in catalog.
func catalogLoader(source domain.CatalogSource) reload.LoadFunc {
	switch source {
	case domain.CatalogSourceTOML:
		return func(_ context.Context, path string) (*memory.Catalog, error) {
			return tomlfile.Load(path)
		}
	case domain.CatalogSourceSQLite:
		return sqlite.LoadCatalog
	default:
		return nil
	}
}

// loadCatalog reads the catalog selected by settings.
func loadCatalog(ctx context.Context, s domain.CatalogSettings) (driven.Catalog, error) {
	logger.Debug("Catalog source: %s %s", s.Source, s.Path)

	load := catalogLoader(s.Source)
	if load == nil {
		return memory.Builtin(), nil
	}
	c, err := load(ctx, s.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

// wireServices builds every service over catalog.
func wireServices(catalog driven.Catalog) {
	activeCatalog = catalog
	searchService = services.NewSearchService(catalog)
	availabilityService = services.NewAvailabilityService(catalog)
	compareService = services.NewCompareService(catalog)
	propertyService = services.NewPropertyService(catalog)
	catalogService = services.NewCatalogService(catalog)
}
