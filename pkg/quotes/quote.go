// Package quotes defines the quote model shared by the tagging engine,
// the stats aggregator and the quote store.
package quotes

import "time"

// Quote is a single stored quote. The tagging engine computes AutoTags
// as a pure function of Text, the active rule set and RemovedAutoTags.
// ManualTags belong to the user and are never touched by the engine.
type Quote struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	Author          string    `json:"author,omitempty"`
	Source          string    `json:"source,omitempty"`
	ManualTags      TagSet    `json:"manual_tags"`
	AutoTags        TagSet    `json:"auto_tags"`
	RemovedAutoTags TagSet    `json:"removed_auto_tags"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// New creates a quote with initialized tag sets
func New(id, text string) *Quote {
	return &Quote{
		ID:              id,
		Text:            text,
		ManualTags:      NewTagSet(),
		AutoTags:        NewTagSet(),
		RemovedAutoTags: NewTagSet(),
	}
}

// EnsureSets initializes any nil tag sets. Useful after decoding a
// quote from storage where columns may be missing.
func (q *Quote) EnsureSets() {
	if q.ManualTags == nil {
		q.ManualTags = NewTagSet()
	}
	if q.AutoTags == nil {
		q.AutoTags = NewTagSet()
	}
	if q.RemovedAutoTags == nil {
		q.RemovedAutoTags = NewTagSet()
	}
}
