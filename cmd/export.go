package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/resolve"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a raw-content URL list for a repository",
	Long: `Export the raw-content URL list for a stored repository record using a
stored profile, without prompting.

When --profile or --repo is omitted, the last-used profile and repository
are taken from the previous run.

Examples:
  linkr export --profile=default --repo=widgets
  linkr export --profile=default --repo=widgets --branch=develop --format=json
  linkr export --repo=widgets --no-exclude --keep`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	bindExportFlags(exportCmd.Flags())
}

func bindExportFlags(fs *pflag.FlagSet) {
	fs.String("profile", "", "Profile name (defaults to last used)")
	fs.String("repo", "", "Repository record id (defaults to last used)")
	fs.String("branch", "", "Branch to export (overrides the record default)")
	fs.String("format", "", "Output format: text, csv, json, html (overrides the profile)")
	fs.String("include", "", "Include pattern (regular expression, overrides the profile)")
	fs.String("exclude", "", "Exclude pattern (regular expression, overrides the profile)")
	fs.Bool("no-exclude", false, "Disable exclusion entirely")
	fs.Bool("keep", false, "Keep the local working copy after export")
	fs.Bool("strict-json", false, "Emit a strictly valid JSON document (json format only)")
}

func runExport(cmd *cobra.Command, args []string) error {
	profile, _ := cmd.Flags().GetString("profile")
	repo, _ := cmd.Flags().GetString("repo")
	branch, _ := cmd.Flags().GetString("branch")
	format, _ := cmd.Flags().GetString("format")
	include, _ := cmd.Flags().GetString("include")
	exclude, _ := cmd.Flags().GetString("exclude")
	noExclude, _ := cmd.Flags().GetBool("no-exclude")
	keep, _ := cmd.Flags().GetBool("keep")
	strictJSON, _ := cmd.Flags().GetBool("strict-json")

	req := core.Request{
		ProfileName: profile,
		RepoID:      repo,
		Overrides: resolve.Overrides{
			Branch:    branch,
			Format:    format,
			Include:   include,
			Exclude:   exclude,
			NoExclude: noExclude,
			Keep:      keep,
			KeepSet:   cmd.Flags().Changed("keep"),
		},
		StrictJSON: strictJSON,
	}

	st := store.GetDB()

	req, err := core.QuickStart(st, req)
	if err != nil {
		return err
	}

	if req.ProfileName == "" {
		return fmt.Errorf("no profile selected: pass --profile or run an export once to set the default")
	}

	if req.RepoID == "" {
		return fmt.Errorf("no repository selected: pass --repo or run an export once to set the default")
	}

	result, err := core.Run(cmd.Context(), st, req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported %d URLs to %s\n", result.Count, result.ArtifactPath)

	return nil
}
