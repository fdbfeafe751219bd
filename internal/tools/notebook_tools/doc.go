// Package notebook_tools provides MCP (Model Context Protocol) tools for
// editing Jupyter notebooks stored in Google Drive.
//
// This package exposes notebook functionality to MCP clients (like AI
// assistants) through tools that read, create, and list notebooks and edit
// their code cells. Cell edits fetch the full document from Drive, apply the
// transformation in memory, and write the full document back; the stored copy
// is never partially updated.
//
// Available tools:
//   - notebook_insert_code_cell: Insert a new code cell at a position
//   - notebook_replace_code_cell: Replace the source of an existing code cell
//   - notebook_read: Read notebooks and render their cells as text
//   - notebook_create: Create a new empty notebook in Drive
//   - notebook_list: List and search notebooks with filtering
//
// Mutating tools (insert, replace, create) are registered only when the
// server allows writes.
//
// Example tool usage:
//
//	notebook_insert_code_cell({
//	  document_id: "1a2b3c4d5e6f",
//	  code: "import pandas as pd",
//	  position: 0
//	})
//
//	notebook_replace_code_cell({
//	  document_id: "1a2b3c4d5e6f",
//	  cell_index: 2,
//	  new_code: "df = pd.read_csv('data.csv')"
//	})
package notebook_tools
