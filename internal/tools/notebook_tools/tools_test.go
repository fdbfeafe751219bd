package notebook_tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mfeld/fieldbook/internal/drive"
	"github.com/mfeld/fieldbook/internal/notebook"
	"github.com/mfeld/fieldbook/internal/server"
)

const sampleNotebook = `{
  "cells": [
    {"cell_type": "code", "source": ["a = 1"], "metadata": {}, "outputs": [], "execution_count": 1},
    {"cell_type": "markdown", "source": ["# title"], "metadata": {}}
  ],
  "metadata": {"kernelspec": {"name": "python3"}},
  "nbformat": 4,
  "nbformat_minor": 5
}`

// resultText extracts the text content from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil {
		t.Fatal("expected a result, got nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandleInsertCodeCellValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name: "missing document_id",
			args: map[string]interface{}{
				"code": "print(1)",
			},
			wantMsg: "document_id is required",
		},
		{
			name: "empty document_id",
			args: map[string]interface{}{
				"document_id": "",
				"code":        "print(1)",
			},
			wantMsg: "document_id is required",
		},
		{
			name: "missing code",
			args: map[string]interface{}{
				"document_id": "abc123",
			},
			wantMsg: "code is required",
		},
		{
			name: "negative position",
			args: map[string]interface{}{
				"document_id": "abc123",
				"code":        "print(1)",
				"position":    float64(-1),
			},
			wantMsg: "position must not be negative",
		},
		{
			name: "fractional position",
			args: map[string]interface{}{
				"document_id": "abc123",
				"code":        "print(1)",
				"position":    1.5,
			},
			wantMsg: "position must be an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      "notebook_insert_code_cell",
					Arguments: tt.args,
				},
			}

			result, err := handleInsertCodeCell(ctx, request, sc)

			if err != nil {
				t.Errorf("handleInsertCodeCell() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleInsertCodeCell() returned nil result")
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestHandleReplaceCodeCellValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name: "missing document_id",
			args: map[string]interface{}{
				"cell_index": float64(0),
				"new_code":   "a = 2",
			},
			wantMsg: "document_id is required",
		},
		{
			name: "missing cell_index",
			args: map[string]interface{}{
				"document_id": "abc123",
				"new_code":    "a = 2",
			},
			wantMsg: "cell_index is required and must be an integer",
		},
		{
			name: "negative cell_index",
			args: map[string]interface{}{
				"document_id": "abc123",
				"cell_index":  float64(-2),
				"new_code":    "a = 2",
			},
			wantMsg: "cell_index must not be negative",
		},
		{
			name: "missing new_code",
			args: map[string]interface{}{
				"document_id": "abc123",
				"cell_index":  float64(0),
			},
			wantMsg: "new_code is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      "notebook_replace_code_cell",
					Arguments: tt.args,
				},
			}

			result, err := handleReplaceCodeCell(ctx, request, sc)

			if err != nil {
				t.Errorf("handleReplaceCodeCell() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleReplaceCodeCell() returned nil result")
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

// Without credentials the handlers surface the client error instead of
// attempting any Drive call.
func TestHandleInsertCodeCellMissingCredentials(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "notebook_insert_code_cell",
			Arguments: map[string]interface{}{
				"document_id": "abc123",
				"code":        "print(1)",
			},
		},
	}

	result, err := handleInsertCodeCell(ctx, request, sc)

	if err != nil {
		t.Errorf("handleInsertCodeCell() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleInsertCodeCell() returned nil result")
	}
	if !result.IsError {
		t.Error("expected an error result")
	}
	if got := resultText(t, result); !strings.Contains(got, "drive client unavailable") {
		t.Errorf("message = %q, want it to mention the unavailable client", got)
	}
}

func TestEditErrorResult(t *testing.T) {
	doc, err := notebook.Parse([]byte(sampleNotebook))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, parseErr := notebook.Parse([]byte("not json"))
	rangeErr := doc.InsertCodeCell("x = 1", 10)
	kindErr := doc.ReplaceCodeCell(1, "x = 1")

	tests := []struct {
		name       string
		err        error
		wantPrefix string
	}{
		{
			name:       "not found",
			err:        &drive.NotFoundError{FileID: "abc123"},
			wantPrefix: "Notebook not found:",
		},
		{
			name:       "malformed document",
			err:        parseErr,
			wantPrefix: "Failed to parse notebook:",
		},
		{
			name:       "cell index out of range",
			err:        rangeErr,
			wantPrefix: "Invalid cell index:",
		},
		{
			name:       "not a code cell",
			err:        kindErr,
			wantPrefix: "Invalid operation:",
		},
		{
			name:       "provider failure",
			err:        errors.New("googleapi: Error 503: backend error"),
			wantPrefix: "Drive operation failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("test case error is nil")
			}

			result := editErrorResult(tt.err)

			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("message = %q, want prefix %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestRenderNotebook(t *testing.T) {
	doc, err := notebook.Parse([]byte(sampleNotebook))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	rendered := renderNotebook(doc)

	if !strings.Contains(rendered, "Notebook with 2 cell(s)") {
		t.Errorf("rendered output missing cell count:\n%s", rendered)
	}
	if !strings.Contains(rendered, "--- Cell 0 (code) ---") {
		t.Errorf("rendered output missing code cell header:\n%s", rendered)
	}
	if !strings.Contains(rendered, "--- Cell 1 (markdown) ---") {
		t.Errorf("rendered output missing markdown cell header:\n%s", rendered)
	}
	if !strings.Contains(rendered, "a = 1") {
		t.Errorf("rendered output missing cell source:\n%s", rendered)
	}
}
