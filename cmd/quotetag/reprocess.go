package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/tagging"
)

// reprocessBatchSize is how many quotes are regenerated between
// progress updates and persistence flushes
const reprocessBatchSize = 100

var reprocessCmd = &cobra.Command{
	Use:   "reprocess",
	Short: "Re-derive auto-tags for every quote",
	Long: `Re-run tag generation across the whole quote database with the current
rules, preserving each quote's removed tags. Typically run after the
rules file changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ruleStore, _, loadErr := loadRuleStore(cmd, cfg)
		if loadErr != nil {
			return loadErr
		}

		db, err := openQuoteStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		items, err := db.ListQuotes(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quotes to reprocess")
			return nil
		}

		gen := tagging.NewGenerator(ruleStore)
		progress, _ := pterm.DefaultProgressbar.
			WithTotal(len(items)).
			WithTitle("Reprocessing quotes").
			Start()

		updated := 0
		for start := 0; start < len(items); start += reprocessBatchSize {
			end := start + reprocessBatchSize
			if end > len(items) {
				end = len(items)
			}
			batch := items[start:end]

			result, err := gen.Reprocess(cmd.Context(), batch)
			if err != nil {
				_, _ = progress.Stop()
				return err
			}
			updated += result.Updated

			for _, q := range batch {
				if err := db.SetAutoTags(cmd.Context(), q.ID, q.AutoTags); err != nil {
					_, _ = progress.Stop()
					return err
				}
			}
			progress.Add(len(batch))
		}
		_, _ = progress.Stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Reprocessed %d quotes, %d updated (rules version %d)\n",
			len(items), updated, ruleStore.Version())
		return nil
	},
}

func init() {
	addRulesFileFlag(reprocessCmd)
}
