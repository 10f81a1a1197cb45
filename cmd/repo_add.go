package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var repoAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a repository record",
	Long: `Add a repository record under a user-chosen id.

Examples:
  linkr repo add widgets --domain=github.com --owner=acme --name=widgets
  linkr repo add infra --domain=git.example.org --owner=ops --name=infra --branch=develop --token`,
	Args: cobra.ExactArgs(1),
	RunE: runRepoAdd,
}

func init() {
	repoCmd.AddCommand(repoAddCmd)
	repoAddCmd.Flags().String("domain", model.DefaultDomain(), "Hosting domain")
	repoAddCmd.Flags().String("owner", "", "Repository owner or organization")
	repoAddCmd.Flags().String("name", "", "Repository name")
	repoAddCmd.Flags().String("branch", "", "Default branch")
	repoAddCmd.Flags().Bool("token", false, "Prompt for a repository-level access token")
	_ = repoAddCmd.MarkFlagRequired("owner")
	_ = repoAddCmd.MarkFlagRequired("name")
}

func runRepoAdd(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := store.GetDB()

	exists, err := st.RepoExists(id)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("repository %q already exists: use 'linkr repo edit %s'", id, id)
	}

	domain, _ := cmd.Flags().GetString("domain")
	owner, _ := cmd.Flags().GetString("owner")
	name, _ := cmd.Flags().GetString("name")
	branch, _ := cmd.Flags().GetString("branch")
	wantToken, _ := cmd.Flags().GetBool("token")

	var token string

	if wantToken {
		token, err = promptSecret("Access token for " + domain)
		if err != nil {
			return err
		}
	}

	if err := st.SaveRepo(&model.Repository{
		ID:            id,
		Domain:        domain,
		Owner:         owner,
		Name:          name,
		DefaultBranch: branch,
		Token:         token,
	}); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added repository %s (%s/%s on %s)\n", id, owner, name, domain)

	return nil
}
