package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/config"
	"github.com/quotecms/quotetag/pkg/logging"
	"github.com/quotecms/quotetag/pkg/rules"
	"github.com/quotecms/quotetag/pkg/style"
	"github.com/quotecms/quotetag/pkg/tagging"
)

var watchReprocess bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the rules file and hot-reload on change",
	Long: `Watch the rules file and atomically swap in the new rule set whenever
it changes, without restarting. With --reprocess, every applied reload
also re-derives auto-tags across the quote database. Runs until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ruleStore, result, loadErr := loadRuleStore(cmd, cfg)
		if loadErr != nil {
			warnEmptyRules(cmd, cfg, loadErr)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), style.RenderReloadResult(result))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := logging.GetLogger("cli.watch")
		onReload := func(result rules.ReloadResult, err error) {
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), style.RenderReloadResult(result))
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), style.RenderReloadResult(result))

			if !watchReprocess || !result.Applied {
				return
			}
			if err := reprocessAll(ctx, cfg, ruleStore); err != nil {
				logger.Error().Err(err).Msg("Reprocess after reload failed")
				fmt.Fprintf(cmd.ErrOrStderr(), "reprocess failed: %v\n", err)
			}
		}

		watcher := rules.NewWatcher(ruleStore, resolveRulesFile(cfg), cfg.Debounce(), onReload)
		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Stopped")
		return nil
	},
}

// reprocessAll re-derives auto-tags for the whole database and
// persists the results
func reprocessAll(ctx context.Context, cfg config.Config, ruleStore *rules.Store) error {
	db, err := openQuoteStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	items, err := db.ListQuotes(ctx)
	if err != nil {
		return err
	}

	gen := tagging.NewGenerator(ruleStore)
	if _, err := gen.Reprocess(ctx, items); err != nil {
		return err
	}

	for _, q := range items {
		if err := db.SetAutoTags(ctx, q.ID, q.AutoTags); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	addRulesFileFlag(watchCmd)
	watchCmd.Flags().BoolVar(&watchReprocess, "reprocess", false,
		"Reprocess the quote database after each applied reload")
}
