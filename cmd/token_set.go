package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var tokenSetCmd = &cobra.Command{
	Use:   "set <domain>",
	Short: "Set the access token for a domain",
	Long: `Set the access token for a hosting domain. The token is prompted with
echo disabled; pipe it on stdin for scripted use.

Examples:
  linkr token set github.com
  echo "$TOKEN" | linkr token set git.example.org`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain := args[0]

		token, err := promptSecret("Access token for " + domain)
		if err != nil {
			return err
		}

		if token == "" {
			return fmt.Errorf("empty token for %s", domain)
		}

		if err := store.GetDB().SetToken(domain, token); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Stored token for %s\n", domain)

		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
}
