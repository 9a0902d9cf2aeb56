package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/pkg/rules"
	"github.com/quotecms/quotetag/pkg/style"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the keyword→tags rule source",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a rules file and report what would be loaded",
	Long: `Parse a rules file without touching any running state, reporting the
rules that would be loaded and every record that would be skipped.
Defaults to the configured rules file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.RulesFile
		}

		store := rules.NewStore()
		result, err := store.ReloadFile(path)
		fmt.Fprint(cmd.OutOrStdout(), style.RenderReloadResult(result))
		return err
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "List the parsed rules in matching precedence order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.RulesFile
		}

		store := rules.NewStore()
		result, err := store.ReloadFile(path)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), style.RenderReloadResult(result))
			return err
		}

		for _, rule := range store.Current().Rules() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n",
				rule.Keyword, strings.Join(rule.Tags.Sorted(), ", "))
		}
		fmt.Fprint(cmd.OutOrStdout(), style.RenderWarnings(result.Warnings))
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd)
	rulesCmd.AddCommand(rulesShowCmd)
}
