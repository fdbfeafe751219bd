package maps_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/common"
)

// registerPlacesTools registers place search and details tools.
func registerPlacesTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Search places tool
	searchPlacesTool := mcp.NewTool("maps_search_places",
		mcp.WithDescription("Search for places using a text query"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The text search query (e.g., 'coffee near Potsdamer Platz')"),
		),
		mcp.WithObject("location",
			mcp.Description("Optional {lat, lng} center to bias results towards"),
		),
		mcp.WithNumber("radius",
			mcp.Description("Search radius in meters around the location (max: 50000)"),
		),
	)

	s.AddTool(searchPlacesTool, common.InstrumentedToolHandlerWithService(
		"maps_search_places", "maps", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchPlaces(ctx, request, sc)
		}))

	// Place details tool
	placeDetailsTool := mcp.NewTool("maps_place_details",
		mcp.WithDescription("Get detailed information about a specific place"),
		mcp.WithString("place_id",
			mcp.Required(),
			mcp.Description("The Google place ID to look up"),
		),
	)

	s.AddTool(placeDetailsTool, common.InstrumentedToolHandlerWithService(
		"maps_place_details", "maps", "details", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handlePlaceDetails(ctx, request, sc)
		}))

	return nil
}

func handleSearchPlaces(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	location, err := getLocationArg(args, "location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var radius uint
	if radiusVal, ok := args["radius"].(float64); ok {
		if radiusVal < 0 {
			return mcp.NewToolResultError("radius must not be negative"), nil
		}
		radius = uint(radiusVal)
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	places, err := client.SearchPlaces(ctx, query, location, radius)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Place search failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"places": places}), nil
}

func handlePlaceDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	placeID, ok := args["place_id"].(string)
	if !ok || placeID == "" {
		return mcp.NewToolResultError("place_id is required"), nil
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	details, err := client.PlaceDetails(ctx, placeID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Place details lookup failed: %v", err)), nil
	}

	return jsonResult(details), nil
}
