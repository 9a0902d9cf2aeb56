package rules_test

import (
	"testing"

	"github.com/quotecms/quotetag/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("normalizes_keywords_and_tags", func(t *testing.T) {
		parsed, warnings := rules.Parse([]rules.Record{
			{Keyword: "  Gold  ", Tags: " Gold , Precious Metals ,", Row: 2},
		})
		require.Len(t, parsed, 1)
		assert.Empty(t, warnings)
		assert.Equal(t, "Gold", parsed[0].Keyword)
		assert.Equal(t, "gold", parsed[0].Folded)
		assert.Equal(t, []string{"gold", "precious metals"}, parsed[0].Tags.Sorted())
	})

	t.Run("skips_empty_keyword_with_warning", func(t *testing.T) {
		parsed, warnings := rules.Parse([]rules.Record{
			{Keyword: "   ", Tags: "economy", Row: 2},
			{Keyword: "gold", Tags: "gold", Row: 3},
		})
		require.Len(t, parsed, 1)
		require.Len(t, warnings, 1)
		assert.Equal(t, rules.WarnEmptyKeyword, warnings[0].Code)
		assert.Equal(t, 2, warnings[0].Row)
	})

	t.Run("skips_empty_tags_with_warning", func(t *testing.T) {
		parsed, warnings := rules.Parse([]rules.Record{
			{Keyword: "gold", Tags: " , ,", Row: 2},
		})
		assert.Empty(t, parsed)
		require.Len(t, warnings, 1)
		assert.Equal(t, rules.WarnEmptyTags, warnings[0].Code)
		assert.Equal(t, "gold", warnings[0].Keyword)
	})

	t.Run("duplicate_keyword_last_wins", func(t *testing.T) {
		parsed, warnings := rules.Parse([]rules.Record{
			{Keyword: "gold", Tags: "metal", Row: 2},
			{Keyword: "Gold", Tags: "precious", Row: 3},
		})
		require.Len(t, parsed, 1)
		assert.Equal(t, []string{"precious"}, parsed[0].Tags.Sorted())

		require.Len(t, warnings, 1)
		assert.Equal(t, rules.WarnDuplicateKeyword, warnings[0].Code)
		assert.Equal(t, "Gold", warnings[0].Keyword)
		assert.Equal(t, 3, warnings[0].Row)
	})

	t.Run("sorts_longest_keyword_first", func(t *testing.T) {
		parsed, _ := rules.Parse([]rules.Record{
			{Keyword: "reserve", Tags: "banking", Row: 2},
			{Keyword: "federal reserve", Tags: "monetary policy", Row: 3},
			{Keyword: "fed", Tags: "banking", Row: 4},
		})
		require.Len(t, parsed, 3)
		assert.Equal(t, "federal reserve", parsed[0].Folded)
		assert.Equal(t, "reserve", parsed[1].Folded)
		assert.Equal(t, "fed", parsed[2].Folded)
	})

	t.Run("ties_broken_by_char_length_then_lexicographic", func(t *testing.T) {
		parsed, _ := rules.Parse([]rules.Record{
			{Keyword: "ira", Tags: "retirement", Row: 2},
			{Keyword: "silver", Tags: "silver", Row: 3},
			{Keyword: "bond", Tags: "bonds", Row: 4},
			{Keyword: "debt", Tags: "economy", Row: 5},
		})
		got := make([]string, len(parsed))
		for i, r := range parsed {
			got[i] = r.Folded
		}
		// All single words: longest first, equal lengths alphabetical
		assert.Equal(t, []string{"silver", "bond", "debt", "ira"}, got)
	})

	t.Run("empty_input_yields_no_rules", func(t *testing.T) {
		parsed, warnings := rules.Parse(nil)
		assert.Empty(t, parsed)
		assert.Empty(t, warnings)
	})
}
