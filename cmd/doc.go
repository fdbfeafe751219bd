// Package cmd implements the command-line interface for fieldbook.
//
// This package provides the following commands:
//   - serve notebook: Start the MCP server for Google Drive notebook tools
//   - serve maps: Start the MCP server for Google Maps Platform tools
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
package cmd
