package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var tokenListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List domains with stored tokens",
	Long:    `List the domains that carry a stored token. Token values are never shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		domains, err := store.GetDB().ListTokenDomains()
		if err != nil {
			return err
		}

		if len(domains) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No domain tokens stored. Add one with 'linkr token set'.")

			return nil
		}

		for _, d := range domains {
			_, _ = fmt.Fprintln(os.Stdout, d)
		}

		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenListCmd)
}
