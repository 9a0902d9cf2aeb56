package stats_test

import (
	"testing"

	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteWithAutoTags(id string, tags ...string) *quotes.Quote {
	q := quotes.New(id, "text for "+id)
	q.AutoTags = quotes.NewTagSet(tags...)
	return q
}

func TestAggregate(t *testing.T) {
	t.Run("coverage_frequency_and_top_tags", func(t *testing.T) {
		items := []*quotes.Quote{
			quoteWithAutoTags("q1", "a"),
			quoteWithAutoTags("q2"),
			quoteWithAutoTags("q3", "a", "b"),
			quoteWithAutoTags("q4"),
		}

		report := stats.Aggregate(items, 1)
		assert.Equal(t, 4, report.TotalQuotes)
		assert.Equal(t, 2, report.QuotesWithAutoTags)
		assert.Equal(t, 50.0, report.CoveragePercent)
		assert.Equal(t, map[string]int{"a": 2, "b": 1}, report.TagFrequency)
		assert.Equal(t, []stats.TagCount{{Tag: "a", Count: 2}}, report.TopTags)
		assert.Equal(t, 2, report.UniqueAutoTags)
	})

	t.Run("top_tag_ties_broken_alphabetically", func(t *testing.T) {
		items := []*quotes.Quote{
			quoteWithAutoTags("q1", "zinc", "apple"),
			quoteWithAutoTags("q2", "zinc", "apple", "mango"),
		}

		report := stats.Aggregate(items, 10)
		require.Len(t, report.TopTags, 3)
		assert.Equal(t, stats.TagCount{Tag: "apple", Count: 2}, report.TopTags[0])
		assert.Equal(t, stats.TagCount{Tag: "zinc", Count: 2}, report.TopTags[1])
		assert.Equal(t, stats.TagCount{Tag: "mango", Count: 1}, report.TopTags[2])
	})

	t.Run("default_limit_applies_when_non_positive", func(t *testing.T) {
		var items []*quotes.Quote
		tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
		for _, tag := range tags {
			items = append(items, quoteWithAutoTags("q-"+tag, tag))
		}

		report := stats.Aggregate(items, 0)
		assert.Len(t, report.TopTags, stats.DefaultTopTags)
		assert.Equal(t, len(tags), report.UniqueAutoTags)
	})

	t.Run("coverage_rounded_to_one_decimal", func(t *testing.T) {
		items := []*quotes.Quote{
			quoteWithAutoTags("q1", "a"),
			quoteWithAutoTags("q2"),
			quoteWithAutoTags("q3"),
		}
		report := stats.Aggregate(items, 10)
		assert.Equal(t, 33.3, report.CoveragePercent)
	})

	t.Run("empty_collection", func(t *testing.T) {
		report := stats.Aggregate(nil, 10)
		assert.Equal(t, 0, report.TotalQuotes)
		assert.Equal(t, 0.0, report.CoveragePercent)
		assert.Empty(t, report.TopTags)
	})

	t.Run("does_not_mutate_quotes", func(t *testing.T) {
		q := quoteWithAutoTags("q1", "a", "b")
		_ = stats.Aggregate([]*quotes.Quote{q}, 10)
		assert.Equal(t, []string{"a", "b"}, q.AutoTags.Sorted())
	})
}
