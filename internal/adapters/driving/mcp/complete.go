package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
)

// templateKinds maps resource templates to the id kind they take.
var templateKinds = map[string]string{
	URIPropertyTemplate:     driving.KindProperty,
	URINeighborhoodTemplate: driving.KindNeighborhood,
	URIPlatformTemplate:     driving.KindPlatform,
}

// handleComplete suggests resource template ids and prompt enum values.
func (s *Server) handleComplete(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	values := []string{}

	if ref := req.Params.Ref; ref != nil {
		arg := req.Params.Argument
		switch ref.Type {
		case "ref/resource":
			if kind, ok := templateKinds[ref.URI]; ok && arg.Name == "id" {
				values = s.ports.Catalog.CompleteID(ctx, kind, arg.Value)
			}
		case "ref/prompt":
			if ref.Name == PromptPlanTrip {
				switch arg.Name {
				case "season":
					values = withPrefix(tripSeasons, arg.Value)
				case "budget":
					values = withPrefix(tripBudgets, arg.Value)
				}
			}
		}
	}

	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: values,
			Total:  len(values),
		},
	}, nil
}

func withPrefix(values []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	out := []string{}
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
