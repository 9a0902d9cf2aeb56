package rules

import (
	"fmt"

	"github.com/quotecms/quotetag/pkg/quotes"
)

// Record is one raw row of a rule source: a keyword and a
// comma-separated tag list, before any normalization. Row is the
// 1-based position in the source, used in warnings.
type Record struct {
	Keyword string
	Tags    string
	Row     int
}

// Rule maps one keyword to the tags it derives. Keyword preserves the
// source casing for display; Folded is the lower-cased form used for
// matching. Tags are normalized and de-duplicated.
type Rule struct {
	Keyword string
	Folded  string
	Tags    quotes.TagSet

	// words is the folded keyword split into words, cached for
	// precedence sorting and matcher compilation
	words []string
}

// WordCount returns the number of words in the keyword
func (r Rule) WordCount() int {
	return len(r.words)
}

// WarningCode identifies the kind of a source warning
type WarningCode string

const (
	WarnEmptyKeyword     WarningCode = "EMPTY_KEYWORD"
	WarnEmptyTags        WarningCode = "EMPTY_TAGS"
	WarnDuplicateKeyword WarningCode = "DUPLICATE_KEYWORD"
	WarnBadRecord        WarningCode = "BAD_RECORD"
)

// Warning reports a single malformed source record. Warnings never
// abort a load; the offending record is skipped.
type Warning struct {
	Code    WarningCode
	Row     int
	Keyword string
	Message string
}

func (w Warning) String() string {
	if w.Keyword != "" {
		return fmt.Sprintf("row %d: %s (%s): %s", w.Row, w.Code, w.Keyword, w.Message)
	}
	return fmt.Sprintf("row %d: %s: %s", w.Row, w.Code, w.Message)
}

// ReloadResult describes the outcome of a Store load or reload
type ReloadResult struct {
	// Applied is true when a new RuleSet was published
	Applied bool

	// Version is the store's version after the call. Unchanged when
	// the reload was not applied.
	Version int64

	// RuleCount is the number of rules in the active set after the call
	RuleCount int

	// Warnings collects per-record problems from parsing
	Warnings []Warning
}
