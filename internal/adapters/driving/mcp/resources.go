package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

const (
	// uriScheme is the custom URI scheme for catalog resources.
	uriScheme = "whistler://"

	mimeJSON     = "application/json"
	mimeMarkdown = "text/markdown"
	mimeText     = "text/plain"
)

// Resource URIs and templates.
const (
	URIProperties           = uriScheme + "properties"
	URIPropertyTemplate     = uriScheme + "properties/{id}"
	URIAreaGuide            = uriScheme + "area-guide"
	URINeighborhoodTemplate = uriScheme + "neighborhoods/{id}"
	URIPlatforms            = uriScheme + "platforms"
	URIPlatformTemplate     = uriScheme + "platforms/{id}"
)

// propertySummary is the per-property entry of the properties resource.
type propertySummary struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          domain.PropertyType `json:"type"`
	Neighborhood  string              `json:"neighborhood"`
	Bedrooms      int                 `json:"bedrooms"`
	Bathrooms     int                 `json:"bathrooms"`
	MaxGuests     int                 `json:"maxGuests"`
	PricePerNight int                 `json:"pricePerNight"`
	Rating        float64             `json:"rating"`
	SkiInSkiOut   bool                `json:"skiInSkiOut"`
	PetFriendly   bool                `json:"petFriendly"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         URIProperties,
		Name:        "all-properties",
		Title:       "All Whistler Properties",
		Description: "Summary listing of all available vacation rental properties in Whistler",
		MIMEType:    mimeJSON,
	}, s.handlePropertiesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: URIPropertyTemplate,
		Name:        "property-detail",
		Title:       "Property Detail",
		Description: "Full details for a specific Whistler vacation rental property",
		MIMEType:    mimeJSON,
	}, s.handlePropertyResource)

	s.server.AddResource(&mcp.Resource{
		URI:         URIAreaGuide,
		Name:        "area-guide",
		Title:       "Whistler Area Guide",
		Description: "A guide to Whistler, BC: neighborhoods, skiing, dining, and tips",
		MIMEType:    mimeMarkdown,
	}, s.handleAreaGuideResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: URINeighborhoodTemplate,
		Name:        "neighborhood-detail",
		Title:       "Neighborhood Detail",
		Description: "Detailed info about a specific Whistler neighborhood",
		MIMEType:    mimeMarkdown,
	}, s.handleNeighborhoodResource)

	s.server.AddResource(&mcp.Resource{
		URI:         URIPlatforms,
		Name:        "platforms",
		Title:       "Whistler Booking Platforms",
		Description: "Guide to Whistler vacation rental booking platforms beyond Airbnb and VRBO",
		MIMEType:    mimeMarkdown,
	}, s.handlePlatformsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: URIPlatformTemplate,
		Name:        "platform-detail",
		Title:       "Platform Detail",
		Description: "Detailed info about a specific Whistler booking platform",
		MIMEType:    mimeJSON,
	}, s.handlePlatformResource)
}

// handlePropertiesResource returns a JSON summary of every property.
func (s *Server) handlePropertiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	props := s.ports.Catalog.ListProperties(ctx)

	summaries := make([]propertySummary, len(props))
	for i := range props {
		p := &props[i]
		summaries[i] = propertySummary{
			ID:            p.ID,
			Name:          p.Name,
			Type:          p.Type,
			Neighborhood:  p.Neighborhood,
			Bedrooms:      p.Bedrooms,
			Bathrooms:     p.Bathrooms,
			MaxGuests:     p.MaxGuests,
			PricePerNight: p.PricePerNight,
			Rating:        p.Rating,
			SkiInSkiOut:   p.SkiInSkiOut,
			PetFriendly:   p.PetFriendly,
		}
	}

	return jsonContents(req.Params.URI, summaries, "properties")
}

// handlePropertyResource returns one property as JSON.
// Unknown ids yield an error payload rather than a protocol error.
func (s *Server) handlePropertyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, URIPropertyTemplate)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, err := s.ports.Catalog.GetProperty(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return jsonContents(req.Params.URI, map[string]string{
			"error": "Property not found: " + id,
		}, "property")
	}
	if err != nil {
		return nil, fmt.Errorf("getting property: %w", err)
	}

	return jsonContents(req.Params.URI, p, "property")
}

// handleAreaGuideResource returns the markdown area guide.
func (s *Server) handleAreaGuideResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	guide := presenter.AreaGuide(s.ports.Catalog.ListNeighborhoods(ctx))
	return textContents(req.Params.URI, mimeMarkdown, guide), nil
}

// handleNeighborhoodResource returns one neighborhood as markdown.
func (s *Server) handleNeighborhoodResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, URINeighborhoodTemplate)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	n, err := s.ports.Catalog.GetNeighborhood(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		available := s.ports.Catalog.CompleteID(ctx, driving.KindNeighborhood, "")
		return textContents(req.Params.URI, mimeText, presenter.NeighborhoodNotFound(id, available)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting neighborhood: %w", err)
	}

	return textContents(req.Params.URI, mimeMarkdown, presenter.NeighborhoodDetail(n)), nil
}

// handlePlatformsResource returns the markdown booking platform guide.
func (s *Server) handlePlatformsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	guide := presenter.PlatformsGuide(s.ports.Catalog.ListPlatforms(ctx))
	return textContents(req.Params.URI, mimeMarkdown, guide), nil
}

// handlePlatformResource returns one platform as JSON.
func (s *Server) handlePlatformResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, URIPlatformTemplate)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, err := s.ports.Catalog.GetPlatform(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return jsonContents(req.Params.URI, struct {
			Error     string   `json:"error"`
			Available []string `json:"available"`
		}{
			Error:     "Platform not found: " + id,
			Available: s.ports.Catalog.CompleteID(ctx, driving.KindPlatform, ""),
		}, "platform")
	}
	if err != nil {
		return nil, fmt.Errorf("getting platform: %w", err)
	}

	return jsonContents(req.Params.URI, p, "platform")
}

// extractID extracts the {id} segment from a URI matching template.
// Returns "" if the URI does not match or the id is empty.
func extractID(uri, template string) string {
	prefix := strings.TrimSuffix(template, "{id}")
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

func jsonContents(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}
	return textContents(uri, mimeJSON, string(data)), nil
}

func textContents(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}
