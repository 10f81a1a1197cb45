package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var tokenRemoveCmd = &cobra.Command{
	Use:     "remove <domain>",
	Aliases: []string{"rm"},
	Short:   "Remove the access token for a domain",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain := args[0]

		if err := store.GetDB().DeleteToken(domain); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed token for %s\n", domain)

		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenRemoveCmd)
}
