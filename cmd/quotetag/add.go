package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/style"
	"github.com/quotecms/quotetag/pkg/tagging"
)

var (
	addAuthor string
	addSource string
	addManual []string
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a quote and auto-tag it",
	Long: `Add a quote to the database. Auto-tags are derived immediately from
the active rules, the same way an edit would re-derive them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text, err := readTextArg(cmd, args)
		if err != nil {
			return err
		}
		if text == "" {
			return fmt.Errorf("quote text is empty")
		}

		ruleStore, _, loadErr := loadRuleStore(cmd, cfg)
		if loadErr != nil {
			warnEmptyRules(cmd, cfg, loadErr)
		}

		db, err := openQuoteStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		q := quotes.New("", text)
		q.Author = addAuthor
		q.Source = addSource
		q.ManualTags = quotes.NewTagSet(addManual...)

		gen := tagging.NewGenerator(ruleStore)
		q.AutoTags = gen.Tag(q.Text, q.RemovedAutoTags)

		if err := db.UpsertQuote(cmd.Context(), q); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added quote %s\n", q.ID)
		fmt.Fprint(cmd.OutOrStdout(), style.RenderTags(q.AutoTags.Sorted()))
		return nil
	},
}

func init() {
	addRulesFileFlag(addCmd)
	addCmd.Flags().StringVar(&addAuthor, "author", "", "Quote author")
	addCmd.Flags().StringVar(&addSource, "source", "", "Where the quote came from")
	addCmd.Flags().StringSliceVar(&addManual, "tag", nil, "Manual tags to attach")
}
