package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/sqlite"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/tomlfile"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

var (
	exportFormat string
	exportOutput string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and export the rental catalog",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog to a file",
	Long: `Write the active catalog to a TOML file or a SQLite database.

The result can be edited and loaded back with --catalog or the
catalog.source and catalog.path settings. TOML goes to stdout when no
--output is given; SQLite always needs --output.`,
	Example: `  whistler catalog export --format toml --output rentals.toml
  whistler catalog export --format sqlite --output rentals.db`,
	Args: cobra.NoArgs,
	RunE: runCatalogExport,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count catalog entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if activeCatalog == nil {
			return errors.New("catalog not loaded")
		}
		cmd.Printf("Properties:    %d\n", len(activeCatalog.Properties()))
		cmd.Printf("Neighborhoods: %d\n", len(activeCatalog.Neighborhoods()))
		cmd.Printf("Platforms:     %d\n", len(activeCatalog.Platforms()))
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "toml", "output format: toml or sqlite")
	catalogExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	_ = catalogExportCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"toml", "sqlite"}, cobra.ShellCompDirectiveNoFileComp))

	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogExport(cmd *cobra.Command, _ []string) error {
	if activeCatalog == nil {
		return errors.New("catalog not loaded")
	}

	switch domain.CatalogSource(strings.ToLower(exportFormat)) {
	case domain.CatalogSourceTOML:
		data, err := tomlfile.Encode(activeCatalog)
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		if exportOutput == "" {
			cmd.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o600); err != nil {
			return fmt.Errorf("writing catalog: %w", err)
		}
	case domain.CatalogSourceSQLite:
		if exportOutput == "" {
			return errors.New("--output is required for sqlite exports")
		}
		store, err := sqlite.Open(exportOutput, true)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		if err := store.Import(cmd.Context(), activeCatalog); err != nil {
			return fmt.Errorf("writing catalog: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (use toml or sqlite)", exportFormat)
	}

	cmd.Printf("Catalog exported to %s\n", exportOutput)
	return nil
}
