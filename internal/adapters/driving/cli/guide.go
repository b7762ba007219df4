package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

var guideCmd = &cobra.Command{
	Use:   "guide [neighborhood-id]",
	Short: "Show the Whistler area guide",
	Long: `Show the Whistler area guide, or one neighborhood in detail.

Without an argument the guide covers every neighborhood, the seasons and
booking tips.`,
	Example: `  whistler guide
  whistler guide creekside`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 || catalogService == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return catalogService.CompleteID(cmd.Context(), driving.KindNeighborhood, toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runGuide,
}

var platformsCmd = &cobra.Command{
	Use:   "platforms [platform-id]",
	Short: "List booking platforms",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 || catalogService == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return catalogService.CompleteID(cmd.Context(), driving.KindPlatform, toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runPlatforms,
}

func init() {
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(platformsCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	ctx := cmd.Context()

	if len(args) == 0 {
		cmd.Println(presenter.AreaGuide(catalogService.ListNeighborhoods(ctx)))
		return nil
	}

	n, err := catalogService.GetNeighborhood(ctx, args[0])
	if errors.Is(err, domain.ErrNotFound) {
		var ids []string
		for _, h := range catalogService.ListNeighborhoods(ctx) {
			ids = append(ids, h.ID)
		}
		return errors.New(presenter.NeighborhoodNotFound(args[0], ids))
	}
	if err != nil {
		return err
	}

	cmd.Println(presenter.NeighborhoodDetail(n))
	return nil
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	ctx := cmd.Context()

	if len(args) == 0 {
		t := newTable(cmd.OutOrStdout(), false, "ID", "Name", "Properties", "Best For")
		for _, p := range catalogService.ListPlatforms(ctx) {
			t.Row(p.ID, p.Name, p.PropertyCount, p.BestFor)
		}
		cmd.Println(t.String())
		return nil
	}

	p, err := catalogService.GetPlatform(ctx, args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("platform not found: %s", args[0])
	}
	if err != nil {
		return err
	}

	t := newTable(cmd.OutOrStdout(), true, "Field", "Value")
	t.Row("Name", p.Name)
	t.Row("URL", p.URL)
	t.Row("Properties", p.PropertyCount)
	t.Row("Best For", p.BestFor)
	t.Row("Whistler Focus", p.WhistlerFocus)
	t.Row("Fees", p.FeeNotes)
	t.Row("Strengths", strings.Join(p.KeyStrengths, "; "))
	cmd.Println(p.Description)
	cmd.Println(t.String())
	return nil
}
