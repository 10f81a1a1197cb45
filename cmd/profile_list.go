package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var profileListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List export profiles",
	RunE:    runProfileList,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileListCmd.Flags().Bool("json", false, "Output profiles as JSON")
}

func runProfileList(cmd *cobra.Command, args []string) error {
	st := store.GetDB()

	profiles, err := st.ListProfiles()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(profiles)
	}

	if len(profiles) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No profiles stored. Add one with 'linkr profile add'.")

		return nil
	}

	state, err := st.GetState()
	if err != nil {
		return err
	}

	for _, p := range profiles {
		marker := " "
		if p.Name == state.LastProfile {
			marker = "*"
		}

		_, _ = fmt.Fprintf(os.Stdout, "%s %-20s format %s, output %s\n", marker, p.Name, p.Format, p.OutputDir)
	}

	return nil
}
