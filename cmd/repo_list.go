package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var repoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List repository records",
	RunE:    runRepoList,
}

func init() {
	repoCmd.AddCommand(repoListCmd)
	repoListCmd.Flags().Bool("json", false, "Output records as JSON")
}

func runRepoList(cmd *cobra.Command, args []string) error {
	st := store.GetDB()

	repos, err := st.ListRepos()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(repos)
	}

	if len(repos) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No repositories stored. Add one with 'linkr repo add'.")

		return nil
	}

	for _, r := range repos {
		branch := r.DefaultBranch
		if branch == "" {
			branch = "(default)"
		}

		_, _ = fmt.Fprintf(os.Stdout, "%-20s %s/%s on %s, branch %s\n", r.ID, r.Owner, r.Name, r.Domain, branch)
	}

	return nil
}
