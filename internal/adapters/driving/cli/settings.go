package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage server settings",
	Long: `View and change the server configuration.

Settings are stored in ~/.whistler/config.toml unless --config is given.
WHISTLER_* environment variables (for example WHISTLER_SERVER_PORT) and a
.env file in the working directory take precedence over stored values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change one setting and save it to the config file.

Keys:
  server.port          HTTP port (1-65535)
  server.cors_origins  comma-separated allowed origins
  server.rate_limit    requests per second over HTTP, 0 disables
  server.rate_burst    burst size of the rate limiter
  catalog.source       builtin, toml or sqlite
  catalog.path         catalog file for toml and sqlite sources
  log.level            debug, info, warn or error
  log.format           text or json`,
	Example: `  whistler settings set server.port 9000
  whistler settings set catalog.source toml
  whistler settings set catalog.path ~/rentals.toml`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Port: %d\n", settings.Server.Port)
	cmd.Printf("  CORS Origins: %s\n", strings.Join(settings.Server.CORSOrigins, ", "))
	if settings.Server.RateLimit > 0 {
		cmd.Printf("  Rate Limit: %g req/s (burst %d)\n", settings.Server.RateLimit, settings.Server.RateBurst)
	} else {
		cmd.Println("  Rate Limit: disabled")
	}
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Source: %s\n", settings.Catalog.Source)
	if settings.Catalog.Source.NeedsPath() {
		path := settings.Catalog.Path
		if path == "" {
			path = "(not set)"
		}
		cmd.Printf("  Path: %s\n", path)
	}
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Printf("  Format: %s\n", settings.Log.Format)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func completeSettingKeys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || settingsService == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var keys []string
	for _, k := range settingsService.Keys() {
		if strings.HasPrefix(k, toComplete) {
			keys = append(keys, k)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
