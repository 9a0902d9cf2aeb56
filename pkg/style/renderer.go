// Package style renders quotetag command output for the terminal,
// combining lipgloss styling with pterm tables.
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/quotecms/quotetag/pkg/rules"
	"github.com/quotecms/quotetag/pkg/stats"
)

// RenderCoverageReport renders a stats report as a titled table plus a
// summary line
func RenderCoverageReport(report stats.Report) string {
	var out strings.Builder

	out.WriteString(TitleStyle.Render("Auto-tag coverage") + "\n")
	out.WriteString(fmt.Sprintf("%d of %d quotes tagged (%.1f%%), %d distinct tags\n\n",
		report.QuotesWithAutoTags, report.TotalQuotes,
		report.CoveragePercent, report.UniqueAutoTags))

	if len(report.TopTags) == 0 {
		out.WriteString(MutedStyle.Render("No auto-tags yet") + "\n")
		return out.String()
	}

	data := pterm.TableData{{"Tag", "Quotes"}}
	for _, tc := range report.TopTags {
		data = append(data, []string{tc.Tag, fmt.Sprintf("%d", tc.Count)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Degrade to plain output rather than failing the command
		for _, tc := range report.TopTags {
			out.WriteString(fmt.Sprintf("%6d  %s\n", tc.Count, tc.Tag))
		}
		return out.String()
	}
	out.WriteString(table + "\n")
	return out.String()
}

// RenderReloadResult renders the outcome of a rules load or reload
func RenderReloadResult(result rules.ReloadResult) string {
	var out strings.Builder

	if result.Applied {
		out.WriteString(SuccessStyle.Render(
			fmt.Sprintf("Loaded %d rules (version %d)", result.RuleCount, result.Version)) + "\n")
	} else {
		out.WriteString(ErrorStyle.Render(
			fmt.Sprintf("No change applied, keeping version %d with %d rules",
				result.Version, result.RuleCount)) + "\n")
	}

	out.WriteString(RenderWarnings(result.Warnings))
	return out.String()
}

// RenderWarnings renders per-record source warnings, one per line
func RenderWarnings(warnings []rules.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var out strings.Builder
	for _, w := range warnings {
		out.WriteString(WarningStyle.Render("warning: "+w.String()) + "\n")
	}
	return out.String()
}

// RenderTags renders a tag list for the tag command
func RenderTags(tags []string) string {
	if len(tags) == 0 {
		return MutedStyle.Render("(no tags)") + "\n"
	}
	return strings.Join(tags, "\n") + "\n"
}
