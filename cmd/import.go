package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/encoding"
	"github.com/inovacc/linkr/internal/legacy"
	"github.com/inovacc/linkr/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import legacy ini configuration",
	Long: `Import repository records, domain tokens, profiles, and the last-used
markers from a legacy ini configuration file. Records with matching keys
are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !encoding.FileExists(args[0]) {
			return fmt.Errorf("no such file: %s", args[0])
		}

		summary, err := legacy.Import(store.GetDB(), args[0])
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Imported %d repositories, %d profiles, %d tokens\n",
			summary.Repos, summary.Profiles, summary.Tokens)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
