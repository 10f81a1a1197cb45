package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an export profile",
	Long: `Add a named export profile.

Examples:
  linkr profile add default --output=~/exports
  linkr profile add web --format=html --output=/srv/exports --include='\.js$'`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

func init() {
	profileCmd.AddCommand(profileAddCmd)
	bindProfileFlags(profileAddCmd)
	_ = profileAddCmd.MarkFlagRequired("output")
}

func bindProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("domain", model.DefaultDomain(), "Default hosting domain")
	cmd.Flags().String("format", model.FormatText, "Output format: text, csv, json, html")
	cmd.Flags().String("output", "", "Output directory for artifacts")
	cmd.Flags().String("include", "", "Include pattern (regular expression)")
	cmd.Flags().String("exclude", "", "Exclude pattern (empty applies the built-in default set)")
	cmd.Flags().Bool("keep", false, "Keep working copies after export")
	cmd.Flags().Bool("token", false, "Prompt for a profile-level access token")
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	st := store.GetDB()

	exists, err := st.ProfileExists(name)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("profile %q already exists: use 'linkr profile edit %s'", name, name)
	}

	format, _ := cmd.Flags().GetString("format")
	if !model.ValidFormat(format) {
		return fmt.Errorf("unknown output format: %s", format)
	}

	domain, _ := cmd.Flags().GetString("domain")
	output, _ := cmd.Flags().GetString("output")
	include, _ := cmd.Flags().GetString("include")
	exclude, _ := cmd.Flags().GetString("exclude")
	keep, _ := cmd.Flags().GetBool("keep")
	wantToken, _ := cmd.Flags().GetBool("token")

	var token string

	if wantToken {
		token, err = promptSecret("Access token for profile " + name)
		if err != nil {
			return err
		}
	}

	if err := st.SaveProfile(&model.Profile{
		Name:           name,
		Domain:         domain,
		Format:         format,
		OutputDir:      output,
		IncludePattern: include,
		ExcludePattern: exclude,
		KeepClone:      keep,
		Token:          token,
	}); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added profile %s (format %s, output %s)\n", name, format, output)

	return nil
}
