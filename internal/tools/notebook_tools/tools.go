package notebook_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/server"
)

// RegisterNotebookTools registers all notebook-related tools with the MCP
// server. Mutating tools (insert, replace, create) are skipped when the
// server context is read-only.
func RegisterNotebookTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerFileTools(s, sc); err != nil {
		return fmt.Errorf("failed to register notebook file tools: %w", err)
	}

	if err := registerCellTools(s, sc); err != nil {
		return fmt.Errorf("failed to register notebook cell tools: %w", err)
	}

	return nil
}
