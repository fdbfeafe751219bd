package maps_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/maps"
	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/batch"
	"github.com/mfeld/fieldbook/internal/tools/common"
)

// registerRoutingTools registers direction and distance matrix tools.
func registerRoutingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Directions tool
	directionsTool := mcp.NewTool("maps_directions",
		mcp.WithDescription("Get directions between two points"),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting point (address, place ID, or 'lat,lng' coordinates)"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Ending point (address, place ID, or 'lat,lng' coordinates)"),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode: driving (default), walking, bicycling, or transit"),
		),
	)

	s.AddTool(directionsTool, common.InstrumentedToolHandlerWithService(
		"maps_directions", "maps", "directions", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDirections(ctx, request, sc)
		}))

	// Distance matrix tool
	distanceMatrixTool := mcp.NewTool("maps_distance_matrix",
		mcp.WithDescription("Calculate travel distances and durations between multiple origins and destinations"),
		mcp.WithString("origins",
			mcp.Required(),
			mcp.Description("Origin (string) or array of origins (addresses or 'lat,lng' coordinates)"),
		),
		mcp.WithString("destinations",
			mcp.Required(),
			mcp.Description("Destination (string) or array of destinations (addresses or 'lat,lng' coordinates)"),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode: driving (default), walking, bicycling, or transit"),
		),
	)

	s.AddTool(distanceMatrixTool, common.InstrumentedToolHandlerWithService(
		"maps_distance_matrix", "maps", "distance_matrix", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDistanceMatrix(ctx, request, sc)
		}))

	return nil
}

func handleDirections(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	origin, ok := args["origin"].(string)
	if !ok || origin == "" {
		return mcp.NewToolResultError("origin is required"), nil
	}

	destination, ok := args["destination"].(string)
	if !ok || destination == "" {
		return mcp.NewToolResultError("destination is required"), nil
	}

	mode, _ := args["mode"].(string)
	if _, err := maps.ParseTravelMode(mode); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	routes, err := client.Directions(ctx, origin, destination, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Directions lookup failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"routes": routes}), nil
}

func handleDistanceMatrix(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	origins, err := batch.ParseStringOrArray(args["origins"], "origins")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	destinations, err := batch.ParseStringOrArray(args["destinations"], "destinations")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode, _ := args["mode"].(string)
	if _, err := maps.ParseTravelMode(mode); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := getMapsClient(sc)
	if errResult != nil {
		return errResult, nil
	}

	matrix, err := client.DistanceMatrix(ctx, origins, destinations, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Distance matrix lookup failed: %v", err)), nil
	}

	return jsonResult(matrix), nil
}
