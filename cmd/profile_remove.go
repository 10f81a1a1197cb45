package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var profileRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove an export profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st := store.GetDB()

		exists, err := st.ProfileExists(name)
		if err != nil {
			return err
		}

		if !exists {
			return fmt.Errorf("profile not found: %s", name)
		}

		if err := st.DeleteProfile(name); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed profile %s\n", name)

		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileRemoveCmd)
}
