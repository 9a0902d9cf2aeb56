package rules

import (
	"regexp"
	"strings"

	"github.com/quotecms/quotetag/pkg/errors"
)

// wordBreakBefore / wordBreakAfter delimit a whole-word occurrence.
// Unicode letters, digits and underscore count as word characters, so
// "gold" never matches inside "golden" but does match next to
// punctuation ("gold," or "(gold)").
const (
	wordBreakBefore = `(?:\A|[^\p{L}\p{N}_])`
	wordBreakAfter  = `(?:[^\p{L}\p{N}_]|\z)`
	wordSeparator   = `\s+`
)

// RuleSet is an immutable, versioned snapshot of rules with one
// precompiled matcher per rule. It is safe for unlimited concurrent
// use; a Store swap never mutates a published RuleSet.
type RuleSet struct {
	version  int64
	rules    []Rule
	patterns []*regexp.Regexp
	byFolded map[string]int
}

// NewRuleSet compiles rules (already in precedence order, see Parse)
// into a matchable snapshot. Compilation happens here, once per
// version, never per match.
func NewRuleSet(version int64, ruleList []Rule) (*RuleSet, error) {
	rs := &RuleSet{
		version:  version,
		rules:    ruleList,
		patterns: make([]*regexp.Regexp, len(ruleList)),
		byFolded: make(map[string]int, len(ruleList)),
	}
	for i, rule := range ruleList {
		pattern, err := compileKeyword(rule)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"cannot compile matcher for keyword %q", rule.Keyword)
		}
		rs.patterns[i] = pattern
		rs.byFolded[rule.Folded] = i
	}
	return rs, nil
}

// compileKeyword builds the whole-word pattern for one rule. Words of
// a multi-word keyword must appear contiguously, separated only by
// whitespace.
func compileKeyword(rule Rule) (*regexp.Regexp, error) {
	words := rule.words
	if len(words) == 0 {
		words = strings.Fields(rule.Folded)
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	body := strings.Join(quoted, wordSeparator)
	return regexp.Compile(wordBreakBefore + `(?:` + body + `)` + wordBreakAfter)
}

// emptyRuleSet is the version-0 snapshot a Store starts from:
// matching is effectively disabled until the first successful load.
func emptyRuleSet() *RuleSet {
	return &RuleSet{byFolded: map[string]int{}}
}

// Version returns the snapshot's version (0 for the initial empty set)
func (rs *RuleSet) Version() int64 {
	return rs.version
}

// Len returns the number of rules in the snapshot
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns the snapshot's rules in precedence order. The slice
// must be treated as read-only.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// Lookup returns the rule for a folded keyword, if present
func (rs *RuleSet) Lookup(folded string) (Rule, bool) {
	if i, ok := rs.byFolded[folded]; ok {
		return rs.rules[i], true
	}
	return Rule{}, false
}

// Match returns every rule whose keyword occurs in text as a
// whole-word, case-insensitive match. All matching rules are reported:
// a text containing "federal reserve" also matches a separate
// "reserve" rule if one exists. Identical (text, RuleSet) inputs
// always yield identical output; empty text matches nothing.
func (rs *RuleSet) Match(text string) []Rule {
	if text == "" || len(rs.rules) == 0 {
		return nil
	}

	folded := strings.ToLower(text)
	var matched []Rule
	for i, pattern := range rs.patterns {
		if pattern.MatchString(folded) {
			matched = append(matched, rs.rules[i])
		}
	}
	return matched
}

// MatchKeywords returns the folded keywords of all matching rules, in
// precedence order
func (rs *RuleSet) MatchKeywords(text string) []string {
	matches := rs.Match(text)
	out := make([]string, len(matches))
	for i, r := range matches {
		out[i] = r.Folded
	}
	return out
}
