package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

var (
	compareCheckIn  string
	compareCheckOut string
)

var compareCmd = &cobra.Command{
	Use:   "compare <property-id>...",
	Short: "Compare properties side by side",
	Long: fmt.Sprintf(`Compare %d to %d properties side by side.

With both --check-in and --check-out, the table adds the stay total at the
listed nightly rate and whether each property is free for those dates.`,
		domain.MinCompare, domain.MaxCompare),
	Example: `  whistler compare whistler-village-condo creekside-chalet
  whistler compare a b c --check-in 2026-02-01 --check-out 2026-02-05`,
	Args: cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completePropertyIDs(cmd, toComplete)
	},
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareCheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if compareService == nil {
		return errors.New("compare service not configured")
	}

	c, err := compareService.Compare(cmd.Context(), args, compareCheckIn, compareCheckOut)
	if err != nil {
		return userError(err, "")
	}

	headers := make([]string, 0, len(c.Properties)+1)
	headers = append(headers, "Feature")
	for _, p := range c.Properties {
		headers = append(headers, p.ID)
	}

	t := newTable(cmd.OutOrStdout(), true, headers...)
	for _, row := range c.Rows {
		t.Row(append([]string{row.Label}, row.Values...)...)
	}

	if c.Range != nil {
		cmd.Printf("Stay: %s (%d nights)\n", c.Range, c.Nights())
	}
	cmd.Println(t.String())
	return nil
}
