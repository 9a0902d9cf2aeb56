package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/style"
	"github.com/quotecms/quotetag/pkg/tagging"
)

var tagRemoved []string

var tagCmd = &cobra.Command{
	Use:   "tag [text]",
	Short: "Derive auto-tags for a text",
	Long: `Derive auto-tags for a text without touching the quote database.
Text is taken from the arguments, or from stdin when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text, err := readTextArg(cmd, args)
		if err != nil {
			return err
		}

		store, _, loadErr := loadRuleStore(cmd, cfg)
		if loadErr != nil {
			warnEmptyRules(cmd, cfg, loadErr)
		}

		gen := tagging.NewGenerator(store)
		tags := gen.Tag(text, quotes.NewTagSet(tagRemoved...))
		fmt.Fprint(cmd.OutOrStdout(), style.RenderTags(tags.Sorted()))
		return nil
	},
}

func init() {
	addRulesFileFlag(tagCmd)
	tagCmd.Flags().StringSliceVar(&tagRemoved, "removed", nil,
		"Tags to exclude, as a user-removed set")
}
