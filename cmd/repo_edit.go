package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var repoEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a repository record",
	Long: `Edit fields of an existing repository record. Only the flags passed
are changed.

Examples:
  linkr repo edit widgets --branch=develop
  linkr repo edit widgets --token          # replace the stored token
  linkr repo edit widgets --clear-token    # drop the stored token`,
	Args: cobra.ExactArgs(1),
	RunE: runRepoEdit,
}

func init() {
	repoCmd.AddCommand(repoEditCmd)
	repoEditCmd.Flags().String("domain", "", "Hosting domain")
	repoEditCmd.Flags().String("owner", "", "Repository owner or organization")
	repoEditCmd.Flags().String("name", "", "Repository name")
	repoEditCmd.Flags().String("branch", "", "Default branch")
	repoEditCmd.Flags().Bool("token", false, "Prompt for a new repository-level token")
	repoEditCmd.Flags().Bool("clear-token", false, "Remove the stored token")
}

func runRepoEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := store.GetDB()

	rec, err := st.GetRepo(id)
	if err != nil {
		return err
	}

	if rec == nil {
		return fmt.Errorf("repository not found: %s", id)
	}

	if cmd.Flags().Changed("domain") {
		rec.Domain, _ = cmd.Flags().GetString("domain")
	}

	if cmd.Flags().Changed("owner") {
		rec.Owner, _ = cmd.Flags().GetString("owner")
	}

	if cmd.Flags().Changed("name") {
		rec.Name, _ = cmd.Flags().GetString("name")
	}

	if cmd.Flags().Changed("branch") {
		rec.DefaultBranch, _ = cmd.Flags().GetString("branch")
	}

	if clear, _ := cmd.Flags().GetBool("clear-token"); clear {
		rec.Token = ""
	}

	if wantToken, _ := cmd.Flags().GetBool("token"); wantToken {
		token, err := promptSecret("Access token for " + rec.Domain)
		if err != nil {
			return err
		}

		rec.Token = token
	}

	if err := st.SaveRepo(rec); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Updated repository %s\n", id)

	return nil
}
