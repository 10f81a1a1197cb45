package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var profileEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit an export profile",
	Long:  `Edit fields of an existing profile. Only the flags passed are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileEdit,
}

func init() {
	profileCmd.AddCommand(profileEditCmd)
	bindProfileFlags(profileEditCmd)
	profileEditCmd.Flags().Bool("clear-token", false, "Remove the stored token")
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	name := args[0]

	st := store.GetDB()

	prof, err := st.GetProfile(name)
	if err != nil {
		return err
	}

	if prof == nil {
		return fmt.Errorf("profile not found: %s", name)
	}

	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		if !model.ValidFormat(format) {
			return fmt.Errorf("unknown output format: %s", format)
		}

		prof.Format = format
	}

	if cmd.Flags().Changed("domain") {
		prof.Domain, _ = cmd.Flags().GetString("domain")
	}

	if cmd.Flags().Changed("output") {
		prof.OutputDir, _ = cmd.Flags().GetString("output")
	}

	if cmd.Flags().Changed("include") {
		prof.IncludePattern, _ = cmd.Flags().GetString("include")
	}

	if cmd.Flags().Changed("exclude") {
		prof.ExcludePattern, _ = cmd.Flags().GetString("exclude")
	}

	if cmd.Flags().Changed("keep") {
		prof.KeepClone, _ = cmd.Flags().GetBool("keep")
	}

	if clear, _ := cmd.Flags().GetBool("clear-token"); clear {
		prof.Token = ""
	}

	if wantToken, _ := cmd.Flags().GetBool("token"); wantToken {
		token, err := promptSecret("Access token for profile " + name)
		if err != nil {
			return err
		}

		prof.Token = token
	}

	if err := st.SaveProfile(prof); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Updated profile %s\n", name)

	return nil
}
