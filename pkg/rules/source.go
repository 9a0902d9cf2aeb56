package rules

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/quotecms/quotetag/pkg/logging"
	"github.com/quotecms/quotetag/pkg/quotes"
)

// Parse normalizes raw source records into rules. Malformed records
// (empty keyword, empty tag list) are skipped with a warning. A
// keyword appearing more than once keeps the later record's tags
// (last wins), also with a warning.
//
// The returned rules are ordered by matching precedence: descending
// word count, then descending character length, then lexicographic for
// determinism. Multi-word phrases are therefore always evaluated
// before the single words they contain.
func Parse(records []Record) ([]Rule, []Warning) {
	logger := logging.GetLogger("rules.source")

	var warnings []Warning
	byKeyword := make(map[string]int)
	var out []Rule

	for _, rec := range records {
		keyword := strings.TrimSpace(rec.Keyword)
		if keyword == "" {
			warnings = append(warnings, Warning{
				Code:    WarnEmptyKeyword,
				Row:     rec.Row,
				Message: "record has no keyword, skipped",
			})
			continue
		}

		tags := quotes.NewTagSet(strings.Split(rec.Tags, ",")...)
		if tags.Len() == 0 {
			warnings = append(warnings, Warning{
				Code:    WarnEmptyTags,
				Row:     rec.Row,
				Keyword: keyword,
				Message: "record has no usable tags, skipped",
			})
			continue
		}

		folded := strings.ToLower(keyword)
		rule := Rule{
			Keyword: keyword,
			Folded:  folded,
			Tags:    tags,
			words:   strings.Fields(folded),
		}

		if idx, seen := byKeyword[folded]; seen {
			warnings = append(warnings, Warning{
				Code:    WarnDuplicateKeyword,
				Row:     rec.Row,
				Keyword: keyword,
				Message: "duplicate keyword, later record wins",
			})
			out[idx] = rule
			continue
		}

		byKeyword[folded] = len(out)
		out = append(out, rule)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if wi, wj := out[i].WordCount(), out[j].WordCount(); wi != wj {
			return wi > wj
		}
		li := utf8.RuneCountInString(out[i].Folded)
		lj := utf8.RuneCountInString(out[j].Folded)
		if li != lj {
			return li > lj
		}
		return out[i].Folded < out[j].Folded
	})

	logger.Debug().
		Int("records", len(records)).
		Int("rules", len(out)).
		Int("warnings", len(warnings)).
		Msg("Parsed rule records")

	return out, warnings
}
