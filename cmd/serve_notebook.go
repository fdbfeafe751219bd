package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/google"
	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/notebook_tools"
)

func newServeNotebookCmd(opts *serveOptions) *cobra.Command {
	var (
		googleClientID     string
		googleClientSecret string
		googleRefreshToken string
	)

	cmd := &cobra.Command{
		Use:   "notebook",
		Short: "Start the notebook MCP server",
		Long: `Start the MCP server providing Jupyter notebook tools backed by Google
Drive: reading, creating, and listing notebooks, and editing their code cells.

Credentials:
  Google OAuth credentials with Drive scope are required for all tools:
    --google-client-id, --google-client-secret, --google-refresh-token flags
    OR GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REFRESH_TOKEN env vars

  The server starts without credentials; tool calls fail with a descriptive
  error until they are provided.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to environment variables for unset flags
			if googleClientID == "" {
				googleClientID = os.Getenv(google.EnvClientID)
			}
			if googleClientSecret == "" {
				googleClientSecret = os.Getenv(google.EnvClientSecret)
			}
			if googleRefreshToken == "" {
				googleRefreshToken = os.Getenv(google.EnvRefreshToken)
			}

			cfg := google.Config{
				ClientID:     googleClientID,
				ClientSecret: googleClientSecret,
				RefreshToken: googleRefreshToken,
			}

			return runServe("notebook", opts,
				[]server.Option{server.WithGoogleConfig(cfg)},
				func(s *mcpserver.MCPServer, sc *server.ServerContext) error {
					return notebook_tools.RegisterNotebookTools(s, sc)
				})
		},
	}

	cmd.Flags().StringVar(&googleClientID, "google-client-id", "", "Google OAuth client ID. Can also use GOOGLE_CLIENT_ID env var.")
	cmd.Flags().StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret. Can also use GOOGLE_CLIENT_SECRET env var.")
	cmd.Flags().StringVar(&googleRefreshToken, "google-refresh-token", "", "Google OAuth refresh token with Drive scope. Can also use GOOGLE_REFRESH_TOKEN env var.")

	return cmd
}
