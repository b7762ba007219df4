package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui"
)

// errNotTerminal is returned when browse runs without an interactive stdout.
var errNotTerminal = errors.New("browse needs an interactive terminal; use search or details instead")

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in an interactive terminal UI",
	Long: `Browse properties, the area guide and booking platforms interactively.

Type a query such as "creekside 2br <400 ski pets +hot-tub" and press
Enter. Add in:YYYY-MM-DD and out:YYYY-MM-DD to price whole stays.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Open
  s        - Cycle sort order
  n        - New search
  Esc      - Back
  ctrl+c   - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	app, err := tui.NewApp(&tui.Ports{
		Search:   searchService,
		Property: propertyService,
		Catalog:  catalogService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
