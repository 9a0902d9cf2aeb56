package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/config"
	"github.com/quotecms/quotetag/pkg/logging"
	"github.com/quotecms/quotetag/pkg/quotestore"
	"github.com/quotecms/quotetag/pkg/quotestore/sqlite"
	"github.com/quotecms/quotetag/pkg/rules"
	"github.com/quotecms/quotetag/pkg/style"
)

// rulesFileFlag overrides the configured rules file when non-empty
var rulesFileFlag string

func addRulesFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rulesFileFlag, "rules", "",
		"Rules file (CSV or YAML), overriding the configured path")
}

func resolveRulesFile(cfg config.Config) string {
	if rulesFileFlag != "" {
		return rulesFileFlag
	}
	return cfg.RulesFile
}

// loadRuleStore builds a rule store from the configured rules file.
// A failed load leaves the store empty (tagging disabled) and reports
// the failure; commands decide whether that is fatal.
func loadRuleStore(cmd *cobra.Command, cfg config.Config) (*rules.Store, rules.ReloadResult, error) {
	store := rules.NewStore()
	result, err := store.ReloadFile(resolveRulesFile(cfg))
	if len(result.Warnings) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), style.RenderWarnings(result.Warnings))
	}
	return store, result, err
}

// warnEmptyRules tells the user why tagging produces nothing
func warnEmptyRules(cmd *cobra.Command, cfg config.Config, err error) {
	logger := logging.GetLogger("cli")
	logger.Warn().Err(err).Str("file", resolveRulesFile(cfg)).
		Msg("No rules loaded, auto-tagging is disabled")
	fmt.Fprintf(cmd.ErrOrStderr(),
		"warning: no rules loaded from %s, auto-tagging is disabled\n",
		resolveRulesFile(cfg))
}

// openQuoteStore opens the configured SQLite quote database
func openQuoteStore(ctx context.Context, cfg config.Config) (quotestore.Store, error) {
	return sqlite.Open(ctx, cfg.Database)
}

// readTextArg returns the joined args, or stdin when no args given
func readTextArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
