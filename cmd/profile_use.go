package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the quick-start default",
	Long: `Mark a profile as the one the no-flag 'linkr export' invocation uses.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st := store.GetDB()

		prof, err := st.GetProfile(name)
		if err != nil {
			return err
		}

		if prof == nil {
			return fmt.Errorf("profile not found: %s", name)
		}

		prof.LastUsedAt = time.Now()

		if err := st.SaveProfile(prof); err != nil {
			return err
		}

		state, err := st.GetState()
		if err != nil {
			return err
		}

		state.LastProfile = name

		if err := st.SaveState(state); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Now using profile %s\n", name)

		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileUseCmd)
}
