package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/stats"
	"github.com/quotecms/quotetag/pkg/style"
)

var statsTopN int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show auto-tag coverage across the quote database",
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

		items, err := db.ListQuotes(cmd.Context())
		if err != nil {
			return err
		}

		topN := statsTopN
		if topN <= 0 {
			topN = cfg.TopTags
		}

		report := stats.Aggregate(items, topN)
		fmt.Fprint(cmd.OutOrStdout(), style.RenderCoverageReport(report))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsTopN, "top", 0,
		"Top-tags list length (default from config)")
}
