package mcp

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

// Tool names.
const (
	ToolSearch       = "search_properties"
	ToolAvailability = "check_availability"
	ToolCompare      = "compare_properties"
	ToolDetails      = "get_property_details"
)

// SearchInput is the input schema for the search_properties tool.
type SearchInput struct {
	Location     string   `json:"location,omitempty" jsonschema:"neighborhood or area (e.g. whistler-village, upper-village, creekside)"`
	CheckIn      string   `json:"checkIn,omitempty" jsonschema:"check-in date (ISO format YYYY-MM-DD)"`
	CheckOut     string   `json:"checkOut,omitempty" jsonschema:"check-out date (ISO format YYYY-MM-DD)"`
	MinBedrooms  *int     `json:"minBedrooms,omitempty" jsonschema:"minimum number of bedrooms"`
	MaxPrice     *int     `json:"maxPrice,omitempty" jsonschema:"maximum price per night in CAD"`
	SkiInSkiOut  bool     `json:"skiInSkiOut,omitempty" jsonschema:"only ski-in/ski-out properties"`
	PetFriendly  bool     `json:"petFriendly,omitempty" jsonschema:"only pet-friendly properties"`
	Amenities    []string `json:"amenities,omitempty" jsonschema:"required amenities (e.g. hot-tub, fireplace, pool)"`
	PropertyType string   `json:"propertyType,omitempty" jsonschema:"property type: condo, chalet, townhouse, or cabin"`
	SortBy       string   `json:"sortBy,omitempty" jsonschema:"sort results by: price_asc, price_desc, rating, or bedrooms"`
}

// filters converts the tool input to search filters.
func (in SearchInput) filters() domain.SearchFilters {
	return domain.SearchFilters{
		Location:     in.Location,
		CheckIn:      in.CheckIn,
		CheckOut:     in.CheckOut,
		MinBedrooms:  in.MinBedrooms,
		MaxPrice:     in.MaxPrice,
		SkiInSkiOut:  in.SkiInSkiOut,
		PetFriendly:  in.PetFriendly,
		Amenities:    in.Amenities,
		PropertyType: in.PropertyType,
		SortBy:       domain.SortKey(in.SortBy),
	}
}

// AvailabilityInput is the input schema for the check_availability tool.
type AvailabilityInput struct {
	PropertyID string `json:"propertyId" jsonschema:"the property ID (e.g. wv-pan-pacific-205)"`
	CheckIn    string `json:"checkIn" jsonschema:"check-in date (ISO format YYYY-MM-DD)"`
	CheckOut   string `json:"checkOut" jsonschema:"check-out date (ISO format YYYY-MM-DD)"`
}

// CompareInput is the input schema for the compare_properties tool.
type CompareInput struct {
	PropertyIDs []string `json:"propertyIds" jsonschema:"property IDs to compare (2-4 properties)"`
	CheckIn     string   `json:"checkIn,omitempty" jsonschema:"optional check-in date for price comparison (YYYY-MM-DD)"`
	CheckOut    string   `json:"checkOut,omitempty" jsonschema:"optional check-out date for price comparison (YYYY-MM-DD)"`
}

// DetailsInput is the input schema for the get_property_details tool.
type DetailsInput struct {
	PropertyID string `json:"propertyId" jsonschema:"the property ID (e.g. wv-pan-pacific-205)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:  ToolSearch,
		Title: "Search Properties",
		Description: "Search for vacation rental properties in Whistler, BC. " +
			"Filter by location, dates, bedrooms, price, amenities, and more.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolAvailability,
		Title:       "Check Availability",
		Description: "Check if a specific property is available for given dates, and get a price estimate.",
	}, s.handleAvailability)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolCompare,
		Title:       "Compare Properties",
		Description: "Compare multiple properties side by side. Optionally include date-based pricing.",
	}, s.handleCompare)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolDetails,
		Title:       "Get Property Details",
		Description: "Get full details for a specific vacation rental property by its ID.",
	}, s.handleDetails)
}

// handleSearch handles the search_properties tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	log := callLogger(ToolSearch)

	result, err := s.ports.Search.Search(ctx, input.filters())
	if err != nil {
		return failed(log, err, ""), nil, nil
	}

	log.Debug("tool call completed", "matches", len(result.Properties))
	return textResult(presenter.SearchResults(result, input.Location)), nil, nil
}

// handleAvailability handles the check_availability tool invocation.
func (s *Server) handleAvailability(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AvailabilityInput,
) (*mcp.CallToolResult, any, error) {
	log := callLogger(ToolAvailability, "property", input.PropertyID)

	result, err := s.ports.Availability.Check(ctx, input.PropertyID, input.CheckIn, input.CheckOut)
	if err != nil {
		return failed(log, err, input.PropertyID), nil, nil
	}

	log.Debug("tool call completed", "available", result.Available, "total", result.TotalPrice)
	return textResult(presenter.Availability(result)), nil, nil
}

// handleCompare handles the compare_properties tool invocation.
func (s *Server) handleCompare(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompareInput,
) (*mcp.CallToolResult, any, error) {
	log := callLogger(ToolCompare, "properties", len(input.PropertyIDs))

	comparison, err := s.ports.Compare.Compare(ctx, input.PropertyIDs, input.CheckIn, input.CheckOut)
	if err != nil {
		return failed(log, err, ""), nil, nil
	}

	log.Debug("tool call completed", "rows", len(comparison.Rows))
	return textResult(presenter.Comparison(comparison)), nil, nil
}

// handleDetails handles the get_property_details tool invocation.
func (s *Server) handleDetails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DetailsInput,
) (*mcp.CallToolResult, any, error) {
	log := callLogger(ToolDetails, "property", input.PropertyID)

	details, err := s.ports.Property.Details(ctx, input.PropertyID)
	if err != nil {
		return failed(log, err, input.PropertyID), nil, nil
	}

	log.Debug("tool call completed")
	return textResult(presenter.Details(details)), nil, nil
}

// callLogger returns a logger tagged with a fresh call id.
func callLogger(tool string, args ...any) *slog.Logger {
	return logger.L().With(append([]any{"tool", tool, "call_id", uuid.NewString()}, args...)...)
}

// failed logs a query failure and reports it to the client as a tool error.
func failed(log *slog.Logger, err error, propertyID string) *mcp.CallToolResult {
	log.Debug("tool call failed", "error", err)
	result := textResult(presenter.ErrorMessage(err, propertyID))
	result.IsError = true
	return result
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
