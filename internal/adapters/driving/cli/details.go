package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

var detailsJSON bool

var detailsCmd = &cobra.Command{
	Use:   "details <property-id>",
	Short: "Show everything about one property",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completePropertyIDs(cmd, toComplete)
	},
	RunE: runDetails,
}

func init() {
	detailsCmd.Flags().BoolVar(&detailsJSON, "json", false, "output the property as JSON")
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	if propertyService == nil {
		return errors.New("property service not configured")
	}

	id := args[0]
	d, err := propertyService.Details(cmd.Context(), id)
	if err != nil {
		return userError(err, id)
	}

	if detailsJSON {
		data, err := json.MarshalIndent(d.Property, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal property: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(presenter.Details(d))
	return nil
}
