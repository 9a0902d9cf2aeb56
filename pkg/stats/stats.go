// Package stats computes auto-tag coverage and frequency reports over
// a collection of quotes. Pure, read-only folds: nothing here mutates
// a quote.
package stats

import (
	"math"
	"sort"

	"github.com/quotecms/quotetag/pkg/quotes"
)

// DefaultTopTags is the top-tag list length when the caller passes a
// non-positive limit
const DefaultTopTags = 10

// TagCount is one entry of the top-tags list
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Report summarizes auto-tag usage across a quote collection
type Report struct {
	TotalQuotes        int            `json:"total_quotes"`
	QuotesWithAutoTags int            `json:"quotes_with_auto_tags"`
	CoveragePercent    float64        `json:"coverage_percentage"`
	TagFrequency       map[string]int `json:"tag_frequency"`
	TopTags            []TagCount     `json:"top_tags"`
	UniqueAutoTags     int            `json:"total_unique_auto_tags"`
}

// Aggregate computes a coverage report. Coverage counts quotes with at
// least one auto-tag; frequency counts, per tag, the quotes carrying
// it. Top tags are sorted by count descending, ties alphabetically,
// truncated to topN (DefaultTopTags when topN <= 0). The percentage is
// rounded to one decimal place.
func Aggregate(items []*quotes.Quote, topN int) Report {
	if topN <= 0 {
		topN = DefaultTopTags
	}

	report := Report{
		TotalQuotes:  len(items),
		TagFrequency: make(map[string]int),
	}

	for _, q := range items {
		if q == nil || q.AutoTags.Len() == 0 {
			continue
		}
		report.QuotesWithAutoTags++
		for _, tag := range q.AutoTags.Sorted() {
			report.TagFrequency[tag]++
		}
	}

	if report.TotalQuotes > 0 {
		pct := float64(report.QuotesWithAutoTags) / float64(report.TotalQuotes) * 100
		report.CoveragePercent = math.Round(pct*10) / 10
	}

	report.UniqueAutoTags = len(report.TagFrequency)

	top := make([]TagCount, 0, len(report.TagFrequency))
	for tag, count := range report.TagFrequency {
		top = append(top, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Tag < top[j].Tag
	})
	if len(top) > topN {
		top = top[:topN]
	}
	report.TopTags = top

	return report
}
