package notebook_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/drive"
	"github.com/mfeld/fieldbook/internal/notebook"
	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/common"
)

// editConfirmation is the success payload for cell edit tools.
type editConfirmation struct {
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
}

// registerCellTools registers the cell editing tools. These mutate notebook
// content in Drive and are only available when the server allows writes.
func registerCellTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if sc.ReadOnly() {
		return nil
	}

	// Insert code cell tool
	insertCellTool := mcp.NewTool("notebook_insert_code_cell",
		mcp.WithDescription("Insert a new code cell into a notebook stored in Google Drive"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Drive file ID of the notebook to edit"),
		),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Source code for the new cell"),
		),
		mcp.WithNumber("position",
			mcp.Description("0-based index to insert the cell at (default: append after the last cell)"),
		),
	)

	s.AddTool(insertCellTool, common.InstrumentedToolHandlerWithService(
		"notebook_insert_code_cell", "notebook", "insert", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleInsertCodeCell(ctx, request, sc)
		}))

	// Replace code cell tool
	replaceCellTool := mcp.NewTool("notebook_replace_code_cell",
		mcp.WithDescription("Replace the source of an existing code cell in a notebook stored in Google Drive"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Drive file ID of the notebook to edit"),
		),
		mcp.WithNumber("cell_index",
			mcp.Required(),
			mcp.Description("0-based index of the code cell to replace"),
		),
		mcp.WithString("new_code",
			mcp.Required(),
			mcp.Description("Replacement source code for the cell"),
		),
	)

	s.AddTool(replaceCellTool, common.InstrumentedToolHandlerWithService(
		"notebook_replace_code_cell", "notebook", "replace", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReplaceCodeCell(ctx, request, sc)
		}))

	return nil
}

func handleInsertCodeCell(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	// Empty code is valid; it encodes as a single empty source fragment.
	code, ok := args["code"].(string)
	if !ok {
		return mcp.NewToolResultError("code is required"), nil
	}

	// Position defaults to append when omitted.
	position := -1
	if posVal, ok := args["position"]; ok {
		pos, ok := posVal.(float64)
		if !ok || pos != float64(int(pos)) {
			return mcp.NewToolResultError("position must be an integer"), nil
		}
		if pos < 0 {
			return mcp.NewToolResultError("position must not be negative"), nil
		}
		position = int(pos)
	}

	client, err := sc.DriveClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return editNotebook(ctx, client, documentID, func(doc *notebook.Document) error {
		if position < 0 {
			doc.AppendCodeCell(code)
			return nil
		}
		return doc.InsertCodeCell(code, position)
	})
}

func handleReplaceCodeCell(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	indexVal, ok := args["cell_index"].(float64)
	if !ok || indexVal != float64(int(indexVal)) {
		return mcp.NewToolResultError("cell_index is required and must be an integer"), nil
	}
	if indexVal < 0 {
		return mcp.NewToolResultError("cell_index must not be negative"), nil
	}
	cellIndex := int(indexVal)

	newCode, ok := args["new_code"].(string)
	if !ok {
		return mcp.NewToolResultError("new_code is required"), nil
	}

	client, err := sc.DriveClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return editNotebook(ctx, client, documentID, func(doc *notebook.Document) error {
		return doc.ReplaceCodeCell(cellIndex, newCode)
	})
}

// editNotebook runs a cell mutation as a fetch, transform, store sequence.
// The document in Drive is written only after the full in-memory
// transformation succeeds, so a failed edit leaves the stored copy unchanged.
func editNotebook(ctx context.Context, client *drive.Client, documentID string, mutate func(*notebook.Document) error) (*mcp.CallToolResult, error) {
	data, err := client.Download(ctx, documentID)
	if err != nil {
		return editErrorResult(err), nil
	}

	doc, err := notebook.Parse(data)
	if err != nil {
		return editErrorResult(err), nil
	}

	if err := mutate(doc); err != nil {
		return editErrorResult(err), nil
	}

	updated, err := doc.Bytes()
	if err != nil {
		return editErrorResult(err), nil
	}

	info, err := client.Update(ctx, documentID, updated, drive.NotebookMimeType)
	if err != nil {
		return editErrorResult(err), nil
	}

	payload, _ := json.MarshalIndent(editConfirmation{
		DocumentID:   info.ID,
		DocumentName: info.Name,
	}, "", "  ")
	return mcp.NewToolResultText(string(payload)), nil
}

// editErrorResult maps an edit failure onto a tool error message. Document
// and cell errors get specific messages; anything else is relayed as a
// provider failure and never retried.
func editErrorResult(err error) *mcp.CallToolResult {
	var rangeErr *notebook.CellRangeError
	var kindErr *notebook.CellKindError

	switch {
	case drive.IsNotFound(err):
		return mcp.NewToolResultError(fmt.Sprintf("Notebook not found: %v", err))
	case errors.Is(err, notebook.ErrMalformedDocument):
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse notebook: %v", err))
	case errors.As(err, &rangeErr):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid cell index: %v", err))
	case errors.As(err, &kindErr):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid operation: %v", err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Drive operation failed: %v", err))
	}
}
