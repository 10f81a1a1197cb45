package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var repoRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a repository record",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		st := store.GetDB()

		exists, err := st.RepoExists(id)
		if err != nil {
			return err
		}

		if !exists {
			return fmt.Errorf("repository not found: %s", id)
		}

		if err := st.DeleteRepo(id); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed repository %s\n", id)

		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoRemoveCmd)
}
