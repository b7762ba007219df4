package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Prompt names.
const (
	PromptPlanTrip  = "plan-whistler-trip"
	PromptRecommend = "recommend-property"
)

// Allowed values of the plan-whistler-trip enum arguments.
var (
	tripSeasons = []string{"winter", "spring", "summer", "fall"}
	tripBudgets = []string{"budget", "moderate", "luxury"}
)

// budgetRanges maps a budget level to its nightly range.
var budgetRanges = map[string]string{
	"budget":   "$150-$300 CAD/night",
	"moderate": "$300-$600 CAD/night",
	"luxury":   "$600-$1500 CAD/night",
}

// registerPrompts registers all prompt handlers with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:  PromptPlanTrip,
		Title: "Plan a Whistler Trip",
		Description: "Get a personalized Whistler vacation plan based on your group size, " +
			"season, budget, and interests.",
		Arguments: []*mcp.PromptArgument{
			{Name: "groupSize", Description: "Number of people in your group (e.g. '2', '4', 'family of 5')", Required: true},
			{Name: "season", Description: "What season are you visiting? (winter, spring, summer, or fall)", Required: true},
			{Name: "budget", Description: "Your accommodation budget level (budget, moderate, or luxury)", Required: true},
			{Name: "interests", Description: "What activities interest you? (e.g. 'skiing, dining, spa')", Required: true},
		},
	}, s.handlePlanTripPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        PromptRecommend,
		Title:       "Recommend a Property",
		Description: "Get a personalized property recommendation based on your specific requirements.",
		Arguments: []*mcp.PromptArgument{
			{Name: "requirements", Description: "Describe what you're looking for in natural language " +
				"(e.g. 'A cozy ski-in/ski-out condo for 4 people with a hot tub')", Required: true},
			{Name: "checkIn", Description: "Optional check-in date (YYYY-MM-DD)"},
			{Name: "checkOut", Description: "Optional check-out date (YYYY-MM-DD)"},
		},
	}, s.handleRecommendPrompt)
}

// handlePlanTripPrompt builds the trip planning conversation starter.
func (s *Server) handlePlanTripPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	season := strings.ToLower(args["season"])
	if !contains(tripSeasons, season) {
		return nil, fmt.Errorf("season must be one of %s", strings.Join(tripSeasons, ", "))
	}
	budget := strings.ToLower(args["budget"])
	budgetRange, ok := budgetRanges[budget]
	if !ok {
		return nil, fmt.Errorf("budget must be one of %s", strings.Join(tripBudgets, ", "))
	}

	var b strings.Builder
	b.WriteString("I'm planning a trip to Whistler, BC and need your help finding the perfect vacation rental and building an itinerary.\n\n")
	b.WriteString("## My Trip Details\n")
	fmt.Fprintf(&b, "- **Group Size:** %s\n", args["groupSize"])
	fmt.Fprintf(&b, "- **Season:** %s\n", season)
	fmt.Fprintf(&b, "- **Budget:** %s (%s)\n", budget, budgetRange)
	fmt.Fprintf(&b, "- **Interests:** %s\n\n", args["interests"])
	b.WriteString(`## What I Need
1. **Property Recommendations:** Use the search_properties tool to find 3-5 properties that match my group size, budget, and preferences. Consider whether I need ski-in/ski-out access, pet-friendly options, or specific amenities based on my interests.

2. **Comparison:** Use compare_properties to create a side-by-side comparison of your top picks.

3. **Itinerary Suggestions:** Based on the season and my interests, suggest a day-by-day itinerary including:
   - Activities and excursions
   - Restaurant recommendations
   - Tips specific to the season

4. **Neighborhood Guide:** Which Whistler neighborhood would be best for my group? Use the area guide resources to explain why.

Please be specific with property recommendations and use the available tools to search and compare actual listings.`)

	return promptResult("Whistler trip plan", b.String()), nil
}

// handleRecommendPrompt builds the property recommendation conversation starter.
func (s *Server) handleRecommendPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	dates := "Flexible (no specific dates provided)"
	if args["checkIn"] != "" && args["checkOut"] != "" {
		dates = args["checkIn"] + " to " + args["checkOut"]
	}

	var b strings.Builder
	b.WriteString("I need help finding the perfect Whistler vacation rental. Here's what I'm looking for:\n\n")
	b.WriteString("## Requirements\n")
	fmt.Fprintf(&b, "- **Description:** %s\n", args["requirements"])
	fmt.Fprintf(&b, "- **Dates:** %s\n\n", dates)
	b.WriteString(`## What to Do
1. **Parse my requirements** to identify key filters: number of bedrooms, budget constraints, must-have amenities (ski-in/ski-out, pet-friendly, hot tub, etc.), preferred neighborhood, and property type.

2. **Search** using the search_properties tool with appropriate filters. If the first search is too narrow, try broadening the criteria.

3. **Check availability** for the top results if dates were provided, using the check_availability tool.

4. **Recommend your top pick** with a clear explanation of why it's the best match. Include:
   - Full property details (use get_property_details)
   - Price breakdown for the stay
   - What makes it a great fit for my requirements
   - Any trade-offs or things to be aware of

5. **Offer alternatives:** show 1-2 backup options in case the top pick doesn't work out, and compare them using compare_properties.

Please use the available tools to search, check, and compare actual listings.`)

	return promptResult("Whistler property recommendation", b.String()), nil
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
