package cmd

import "github.com/spf13/cobra"

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the domain token table",
	Long: `Manage domain-wide access tokens. A domain token applies to every
repository on that domain unless the repository record carries its own
token. Tokens are sealed before they reach disk.`,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
