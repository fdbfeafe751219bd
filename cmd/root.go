package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the fieldbook application
var rootCmd = &cobra.Command{
	Use:   "fieldbook",
	Short: "MCP servers for Google Drive notebooks and Google Maps",
	Long: `fieldbook provides Model Context Protocol (MCP) servers that let AI
assistants work with Jupyter notebooks stored in Google Drive and with the
Google Maps Platform.

Available servers:
  - notebook: read, create, list, and edit notebooks in Google Drive
  - maps: geocoding, places, directions, and elevation passthrough tools`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "fieldbook version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
