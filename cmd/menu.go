package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/linkr/internal/cli"
	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/resolve"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run an export interactively",
	Long: `Walk through an export interactively: pick a profile and a repository,
optionally pick a branch from the remote listing, confirm the exclude
pattern, and decide whether to keep the working copy afterwards.`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	st := store.GetDB()

	profileModel, err := cli.NewProfileList(st)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	p := tea.NewProgram(profileModel)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	profile := finalModel.(cli.ProfileListModel).GetSelectedProfile()
	if profile == nil {
		return nil // user cancelled
	}

	repoModel, err := cli.NewRepoList(st)
	if err != nil {
		return fmt.Errorf("failed to load repositories: %w", err)
	}

	p = tea.NewProgram(repoModel)

	finalModel, err = p.Run()
	if err != nil {
		return err
	}

	repo := finalModel.(cli.RepoListModel).GetSelectedRepo()
	if repo == nil {
		return nil
	}

	req := core.Request{
		ProfileName: profile.Name,
		RepoID:      repo.ID,
		Interactive: true,
		Confirm:     cli.Prompter{},
	}

	if branch, err := pickBranch(cmd, st, req); err == nil && branch != "" {
		req.Overrides = resolve.Overrides{Branch: branch}
	}

	result, err := runMenuExport(cmd.Context(), st, req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported %d URLs to %s\n", result.Count, result.ArtifactPath)

	return nil
}

// runMenuExport runs the export for the interactive flow. Failures
// propagate so the process exits non-zero and wrappers can detect them.
func runMenuExport(ctx context.Context, st store.Store, req core.Request) (*core.Result, error) {
	result, err := core.Run(ctx, st, req)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	return result, nil
}

// pickBranch offers the remote branch listing when the user wants a
// branch other than the record default. Errors here never abort the
// export; the default branch applies instead.
func pickBranch(cmd *cobra.Command, st store.Store, req core.Request) (string, error) {
	if !(cli.Prompter{}).Confirm("Pick a branch other than the default?") {
		return "", nil
	}

	rec, err := st.GetRepo(req.RepoID)
	if err != nil || rec == nil {
		return "", err
	}

	cfg, err := core.ResolveRequest(st, req)
	if err != nil {
		return "", err
	}

	wc, err := core.EnsureLocal(cmd.Context(), rec, cfg.Token, core.EnsureLocalOptions{})
	if err != nil {
		return "", err
	}

	branches, err := wc.ListRemoteBranches(cmd.Context())
	if err != nil {
		return "", err
	}

	branchModel := cli.NewBranchList(branches, cfg.Branch)

	p := tea.NewProgram(branchModel)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(cli.BranchListModel).GetSelectedBranch(), nil
}
