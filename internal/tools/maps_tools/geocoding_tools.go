package maps_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/maps"
	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/common"
)

// registerGeocodingTools registers geocoding and elevation tools.
func registerGeocodingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Geocode tool
	geocodeTool := mcp.NewTool("maps_geocode",
		mcp.WithDescription("Convert an address into geographic coordinates"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("The address to geocode"),
		),
	)

	s.AddTool(geocodeTool, common.InstrumentedToolHandlerWithService(
		"maps_geocode", "maps", "geocode", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGeocode(ctx, request, sc)
		}))

	// Reverse geocode tool
	reverseGeocodeTool := mcp.NewTool("maps_reverse_geocode",
		mcp.WithDescription("Convert geographic coordinates into an address"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude coordinate"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude coordinate"),
		),
	)

	s.AddTool(reverseGeocodeTool, common.InstrumentedToolHandlerWithService(
		"maps_reverse_geocode", "maps", "reverse_geocode", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReverseGeocode(ctx, request, sc)
		}))

	// Elevation tool
	elevationTool := mcp.NewTool("maps_elevation",
		mcp.WithDescription("Get elevation data for locations on the earth"),
		mcp.WithArray("locations",
			mcp.Required(),
			mcp.Description("Array of {lat, lng} objects to sample elevation for"),
		),
	)

	s.AddTool(elevationTool, common.InstrumentedToolHandlerWithService(
		"maps_elevation", "maps", "elevation", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleElevation(ctx, request, sc)
		}))

	return nil
}

func handleGeocode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	address, ok := args["address"].(string)
	if !ok || address == "" {
		return mcp.NewToolResultError("address is required"), nil
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	results, err := client.Geocode(ctx, address)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Geocoding failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"results": results}), nil
}

func handleReverseGeocode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	lat, ok := args["latitude"].(float64)
	if !ok {
		return mcp.NewToolResultError("latitude is required"), nil
	}

	lng, ok := args["longitude"].(float64)
	if !ok {
		return mcp.NewToolResultError("longitude is required"), nil
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	results, err := client.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Reverse geocoding failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"results": results}), nil
}

func handleElevation(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	rawLocations, ok := args["locations"].([]interface{})
	if !ok || len(rawLocations) == 0 {
		return mcp.NewToolResultError("locations is required and must be a non-empty array"), nil
	}

	locations := make([]maps.Location, 0, len(rawLocations))
	for i, raw := range rawLocations {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("locations[%d] must be an object with lat and lng", i)), nil
		}

		lat, latOK := obj["lat"].(float64)
		lng, lngOK := obj["lng"].(float64)
		if !latOK || !lngOK {
			return mcp.NewToolResultError(fmt.Sprintf("locations[%d] must contain numeric lat and lng", i)), nil
		}

		locations = append(locations, maps.Location{Lat: lat, Lng: lng})
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	points, err := client.Elevation(ctx, locations)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Elevation lookup failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"results": points}), nil
}
