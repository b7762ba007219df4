// Package presenter renders catalog query results as markdown for MCP
// clients and the CLI.
package presenter
