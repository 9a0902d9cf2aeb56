package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var untagCmd = &cobra.Command{
	Use:   "untag <quote-id> <tag>",
	Short: "Remove an auto-tag from a quote, permanently",
	Long: `Remove an auto-tag from a quote and record the removal, so the tag is
never re-applied to that quote by later edits or reprocessing, even
while its keyword still matches.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openQuoteStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		id, tag := args[0], args[1]
		if err := db.RemoveAutoTag(cmd.Context(), id, tag); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from quote %s\n", tag, id)
		return nil
	},
}
