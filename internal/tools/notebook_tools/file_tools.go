package notebook_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/drive"
	"github.com/mfeld/fieldbook/internal/notebook"
	"github.com/mfeld/fieldbook/internal/server"
	"github.com/mfeld/fieldbook/internal/tools/batch"
	"github.com/mfeld/fieldbook/internal/tools/common"
)

// emptyNotebook is the content written for newly created notebooks: no cells,
// current nbformat version, empty metadata.
const emptyNotebook = `{
  "cells": [],
  "metadata": {},
  "nbformat": 4,
  "nbformat_minor": 5
}`

// registerFileTools registers notebook file management tools.
func registerFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Read notebooks tool (read-only, always available)
	readTool := mcp.NewTool("notebook_read",
		mcp.WithDescription("Read one or more notebooks from Google Drive and render their cells as text"),
		mcp.WithString("documentIds",
			mcp.Required(),
			mcp.Description("Drive file ID (string) or array of file IDs to read"),
		),
	)

	s.AddTool(readTool, common.InstrumentedToolHandlerWithService(
		"notebook_read", "drive", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadNotebooks(ctx, request, sc)
		}))

	// List notebooks tool (read-only, always available)
	listTool := mcp.NewTool("notebook_list",
		mcp.WithDescription("List notebooks in Google Drive with optional filtering"),
		mcp.WithString("query",
			mcp.Description("Additional filter using Google Drive's query language (e.g., \"name contains 'analysis'\")"),
		),
		mcp.WithString("folder",
			mcp.Description("Restrict the listing to a parent folder ID"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of notebooks to return (default: 100, max: 1000)"),
		),
		mcp.WithString("orderBy",
			mcp.Description("Sort order (e.g., 'modifiedTime desc,name')"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token for retrieving the next page of results"),
		),
	)

	s.AddTool(listTool, common.InstrumentedToolHandlerWithService(
		"notebook_list", "drive", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListNotebooks(ctx, request, sc)
		}))

	// Create notebook tool (write operation)
	if !sc.ReadOnly() {
		createTool := mcp.NewTool("notebook_create",
			mcp.WithDescription("Create a new empty notebook in Google Drive"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Name for the new notebook (e.g., 'analysis.ipynb')"),
			),
			mcp.WithString("parentFolder",
				mcp.Description("Parent folder ID where the notebook should be placed"),
			),
		)

		s.AddTool(createTool, common.InstrumentedToolHandlerWithService(
			"notebook_create", "drive", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateNotebook(ctx, request, sc)
			}))
	}

	return nil
}

func handleReadNotebooks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentIDs, err := batch.ParseStringOrArray(args["documentIds"], "documentIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := sc.DriveClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(documentIDs, func(documentID string) (string, error) {
		data, err := client.Download(ctx, documentID)
		if err != nil {
			return "", err
		}

		doc, err := notebook.Parse(data)
		if err != nil {
			return "", err
		}

		return renderNotebook(doc), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleListNotebooks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	client, err := sc.DriveClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	options := &drive.ListOptions{
		MaxResults: 100, // default
	}

	if query, ok := args["query"].(string); ok && query != "" {
		options.Query = query
	}

	if folder, ok := args["folder"].(string); ok && folder != "" {
		options.Folder = folder
	}

	if maxResults, ok := args["maxResults"].(float64); ok && maxResults > 0 {
		options.MaxResults = int(maxResults)
	}

	if orderBy, ok := args["orderBy"].(string); ok && orderBy != "" {
		options.OrderBy = orderBy
	}

	if pageToken, ok := args["pageToken"].(string); ok && pageToken != "" {
		options.PageToken = pageToken
	}

	notebooks, nextPageToken, err := client.ListNotebooks(ctx, options)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list notebooks: %v", err)), nil
	}

	response := map[string]interface{}{
		"notebooks":     notebooks,
		"nextPageToken": nextPageToken,
	}

	result, _ := json.MarshalIndent(response, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleCreateNotebook(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	var parents []string
	if parentFolder, ok := args["parentFolder"].(string); ok && parentFolder != "" {
		parents = []string{parentFolder}
	}

	client, err := sc.DriveClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := client.Create(ctx, name, []byte(emptyNotebook), drive.NotebookMimeType, parents)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create notebook: %v", err)), nil
	}

	result, _ := json.MarshalIndent(info, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Notebook created successfully:\n%s", string(result))), nil
}

// renderNotebook renders a notebook's cells as readable text, one section per
// cell with its index, kind, and source.
func renderNotebook(doc *notebook.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Notebook with %d cell(s)\n", doc.CellCount())
	for i, cell := range doc.Cells() {
		fmt.Fprintf(&b, "\n--- Cell %d (%s) ---\n", i, cell.Type())
		b.WriteString(cell.SourceText())
		b.WriteString("\n")
	}

	return b.String()
}
