package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

var availabilityJSON bool

var availabilityCmd = &cobra.Command{
	Use:   "availability <property-id> <check-in> <check-out>",
	Short: "Check availability and price a stay",
	Long: `Check whether a property is free for a stay and price it.

The nightly rate is adjusted for the season of the check-in month and the
whole stay is priced at that rate, plus the cleaning fee. The check-out
day itself is not part of the stay.`,
	Example: `  whistler availability whistler-village-condo 2026-01-10 2026-01-13`,
	Args:    cobra.ExactArgs(3),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completePropertyIDs(cmd, toComplete)
	},
	RunE: runAvailability,
}

func init() {
	availabilityCmd.Flags().BoolVar(&availabilityJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(availabilityCmd)
}

func runAvailability(cmd *cobra.Command, args []string) error {
	if availabilityService == nil {
		return errors.New("availability service not configured")
	}

	id := args[0]
	result, err := availabilityService.Check(cmd.Context(), id, args[1], args[2])
	if err != nil {
		return userError(err, id)
	}

	if availabilityJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(presenter.Availability(result))
	return nil
}

// completePropertyIDs offers property ids for shell completion.
func completePropertyIDs(cmd *cobra.Command, toComplete string) ([]string, cobra.ShellCompDirective) {
	if catalogService == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids := catalogService.CompleteID(cmd.Context(), driving.KindProperty, toComplete)
	return ids, cobra.ShellCompDirectiveNoFileComp
}
