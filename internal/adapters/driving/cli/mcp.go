package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/reload"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/mcp"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// errWatchNeedsFile is returned by --watch with the built-in catalog.
var errWatchNeedsFile = errors.New("--watch needs a toml or sqlite catalog (set catalog.source or --catalog)")

const serveLong = `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http or --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP (streamable transport at /mcp, health at /healthz)

Examples:
  # Stdio mode (default, for Claude Desktop)
  whistler serve

  # HTTP mode on the configured port (server.port, default 8080)
  whistler serve --http

  # HTTP mode on an explicit port
  whistler serve --port 9000

  # Reload a catalog file whenever it changes
  whistler serve --catalog ./rentals.toml --watch

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "whistler": {
        "command": "/path/to/whistler",
        "args": ["serve"]
      }
    }
  }`

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long:  serveLong,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long:  serveLong,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{serveCmd, mcpServeCmd} {
		c.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio unless --http)")
		c.Flags().Bool("http", false, "serve over HTTP on the configured port")
		c.Flags().Bool("watch", false, "reload the catalog file when it changes")
	}
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}
	if activeSettings == nil {
		return errors.New("settings not loaded")
	}
	if watch {
		if err := startWatcher(cmd.Context(), activeSettings.Catalog.Source, activeSettings.Catalog.Path); err != nil {
			return err
		}
	}

	ports := &mcp.Ports{
		Search:       searchService,
		Availability: availabilityService,
		Compare:      compareService,
		Property:     propertyService,
		Catalog:      catalogService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 || useHTTP {
		settings := activeSettings.Server
		if port > 0 {
			settings.Port = port
		}
		cmd.Printf("MCP server listening on http://localhost:%d%s\n", settings.Port, mcp.PathMCP)
		return server.RunHTTP(cmd.Context(), settings)
	}

	return server.Run(cmd.Context())
}

// startWatcher rewires the services over a reloading catalog and watches
// the file until ctx is cancelled.
func startWatcher(ctx context.Context, source domain.CatalogSource, path string) error {
	load := catalogLoader(source)
	if load == nil {
		return errWatchNeedsFile
	}

	catalog, err := reload.New(ctx, path, load)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	wireServices(catalog)

	go func() {
		if err := catalog.Watch(ctx); err != nil {
			logger.Warn("Catalog watcher stopped: %v", err)
		}
	}()
	logger.Info("Watching %s for catalog changes", catalog.Path())
	return nil
}
