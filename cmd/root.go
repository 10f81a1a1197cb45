package cmd

import (
	"os"

	"github.com/inovacc/linkr/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Export raw-content URL lists from Git repositories",
	Long: `Linkr exports lists of raw-content URLs for files tracked in a remote
Git repository (GitHub or Gitea-compatible). It applies include/exclude
filters, selects a branch, and renders the result as text, csv, json, or
html.

Repositories, profiles, and domain tokens are stored locally; run
'linkr menu' for the interactive flow or 'linkr export' for scripted use.`,
	Version: application.Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
