// Package tagging derives auto-tags for quotes from the active rule
// set, honouring each quote's user-removed tags.
package tagging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quotecms/quotetag/pkg/logging"
	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/rules"
)

// Generator produces auto-tags from quote text. It is safe for
// concurrent use: every call captures one rule set snapshot and uses
// it exclusively.
type Generator struct {
	store  *rules.Store
	logger zerolog.Logger
}

// NewGenerator creates a generator bound to a rule store
func NewGenerator(store *rules.Store) *Generator {
	return &Generator{
		store:  store,
		logger: logging.GetLogger("tagging.generator"),
	}
}

// Tag computes the auto-tags for a text: the union of all matched
// rules' tags minus the removed set. The result never intersects
// removed, even when the underlying keyword still matches. Empty text
// yields an empty set.
func (g *Generator) Tag(text string, removed quotes.TagSet) quotes.TagSet {
	return TagWith(g.store.Current(), text, removed)
}

// TagWith is Tag against an explicit snapshot. Pure function: callers
// that need several texts judged by the same version pass the same
// snapshot.
func TagWith(rs *rules.RuleSet, text string, removed quotes.TagSet) quotes.TagSet {
	tags := quotes.NewTagSet()
	if text == "" {
		return tags
	}
	for _, rule := range rs.Match(text) {
		tags = tags.Union(rule.Tags)
	}
	if removed != nil && removed.Len() > 0 {
		tags = tags.Subtract(removed)
	}
	return tags
}

// ReprocessResult reports the outcome of a bulk regeneration
type ReprocessResult struct {
	Total   int
	Updated int
}

// Reprocess regenerates AutoTags for every quote in place, preserving
// each quote's own RemovedAutoTags, and counts how many changed.
//
// No store lock is held: each quote is matched against the snapshot
// current at that moment, so a reload arriving mid-batch legally
// applies to the remaining quotes. Cancellation is checked between
// quotes; on cancel the count covers the quotes already processed.
func (g *Generator) Reprocess(ctx context.Context, items []*quotes.Quote) (ReprocessResult, error) {
	result := ReprocessResult{Total: len(items)}

	for _, q := range items {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		q.EnsureSets()
		next := TagWith(g.store.Current(), q.Text, q.RemovedAutoTags)
		if !next.Equal(q.AutoTags) {
			q.AutoTags = next
			result.Updated++
		}
	}

	g.logger.Info().
		Int("total", result.Total).
		Int("updated", result.Updated).
		Int64("version", g.store.Version()).
		Msg("Reprocessed quotes")

	return result, nil
}
