package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var branchesCmd = &cobra.Command{
	Use:   "branches <repo-id>",
	Short: "List remote branches for a repository record",
	Long: `List the remote branches of a stored repository. The working copy is
materialized (cloned on first use) to read the remote-tracking refs.

Examples:
  linkr branches widgets
  linkr branches widgets --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBranches,
}

func init() {
	rootCmd.AddCommand(branchesCmd)
	branchesCmd.Flags().Bool("json", false, "Output branches as JSON")
}

func runBranches(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := store.GetDB()

	rec, err := st.GetRepo(id)
	if err != nil {
		return err
	}

	if rec == nil {
		return fmt.Errorf("repository not found: %s", id)
	}

	token, err := st.GetToken(rec.Domain)
	if err != nil {
		return err
	}

	if rec.Token != "" {
		token = rec.Token
	}

	wc, err := core.EnsureLocal(cmd.Context(), rec, token, core.EnsureLocalOptions{Update: true})
	if err != nil {
		return err
	}

	branches, err := wc.ListRemoteBranches(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(branches)
	}

	for _, b := range branches {
		_, _ = fmt.Fprintln(os.Stdout, b)
	}

	return nil
}
