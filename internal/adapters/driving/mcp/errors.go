// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// Whistler rental catalog. It lets AI assistants search, price and compare
// properties and read the area guides.
package mcp

import "errors"

// Port errors returned by NewServer.
var (
	ErrMissingSearchService       = errors.New("mcp: search service is required")
	ErrMissingAvailabilityService = errors.New("mcp: availability service is required")
	ErrMissingCompareService      = errors.New("mcp: compare service is required")
	ErrMissingPropertyService     = errors.New("mcp: property service is required")
	ErrMissingCatalogService      = errors.New("mcp: catalog service is required")
)
