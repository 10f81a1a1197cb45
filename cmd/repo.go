package cmd

import "github.com/spf13/cobra"

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage repository records",
	Long: `Manage the stored repository records. Each record identifies one
remote repository by domain, owner, and name, under a user-chosen id.`,
}

func init() {
	rootCmd.AddCommand(repoCmd)
}
