package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/maps"
	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/maps_tools"
)

func newServeMapsCmd(opts *serveOptions) *cobra.Command {
	var mapsAPIKey string

	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Start the maps MCP server",
		Long: `Start the MCP server providing Google Maps Platform tools: geocoding,
place search and details, directions, distance matrices, and elevation.

All maps tools are read-only passthroughs to the Maps web services.

Credentials:
  A Maps Platform API key is required for all tools:
    --maps-api-key flag OR MAPS_API_KEY env var

  The server starts without a key; tool calls fail with a descriptive error
  until one is provided.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to the environment for an unset flag
			if mapsAPIKey == "" {
				mapsAPIKey = os.Getenv(maps.EnvAPIKey)
			}

			return runServe("maps", opts,
				[]server.Option{server.WithMapsAPIKey(mapsAPIKey)},
				func(s *mcpserver.MCPServer, sc *server.ServerContext) error {
					return maps_tools.RegisterMapsTools(s, sc)
				})
		},
	}

	cmd.Flags().StringVar(&mapsAPIKey, "maps-api-key", "", "Google Maps Platform API key. Can also use MAPS_API_KEY env var.")

	return cmd
}
