package maps_tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/maps"
	"github.com/mfeld/fieldbook/internal/server"
)

// RegisterMapsTools registers all Google Maps Platform tools with the MCP
// server. All maps tools are read-only passthroughs, so none are gated on the
// server's read-only mode.
func RegisterMapsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerGeocodingTools(s, sc); err != nil {
		return fmt.Errorf("failed to register geocoding tools: %w", err)
	}

	if err := registerPlacesTools(s, sc); err != nil {
		return fmt.Errorf("failed to register places tools: %w", err)
	}

	if err := registerRoutingTools(s, sc); err != nil {
		return fmt.Errorf("failed to register routing tools: %w", err)
	}

	return nil
}

// jsonResult serializes an API result as an indented JSON tool result.
func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// getMapsClient retrieves the Maps client from the server context.
func getMapsClient(sc *server.ServerContext) (*maps.Client, *mcp.CallToolResult) {
	client, err := sc.MapsClient()
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return client, nil
}

// getLocationArg parses an optional {lat, lng} object argument.
func getLocationArg(args map[string]interface{}, name string) (*maps.Location, error) {
	raw, ok := args[name]
	if !ok {
		return nil, nil
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an object with lat and lng", name)
	}

	lat, latOK := obj["lat"].(float64)
	lng, lngOK := obj["lng"].(float64)
	if !latOK || !lngOK {
		return nil, fmt.Errorf("%s must contain numeric lat and lng", name)
	}

	return &maps.Location{Lat: lat, Lng: lng}, nil
}
