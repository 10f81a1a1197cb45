package cmd

import "github.com/spf13/cobra"

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage export profiles",
	Long: `Manage named profiles. A profile bundles the export defaults: hosting
domain, output format and directory, include/exclude patterns, and
whether the working copy is kept after export.`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
