// Package quotestore persists quotes for the tagging engine's
// administrative operations. The engine itself never talks to storage
// directly: it computes auto-tags, and callers persist them through
// this interface.
package quotestore

import (
	"context"
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/quotecms/quotetag/pkg/quotes"
)

// Store is the persistence interface for quotes
type Store interface {
	Close() error

	// UpsertQuote inserts or replaces a quote. A quote with an empty
	// ID is assigned one.
	UpsertQuote(ctx context.Context, q *quotes.Quote) error

	// GetQuote returns a quote by ID, or an ErrNotFound coded error
	GetQuote(ctx context.Context, id string) (*quotes.Quote, error)

	// ListQuotes returns all quotes ordered by creation time
	ListQuotes(ctx context.Context) ([]*quotes.Quote, error)

	// SetAutoTags replaces a quote's auto-tags
	SetAutoTags(ctx context.Context, id string, tags quotes.TagSet) error

	// RemoveAutoTag deletes a tag from a quote's auto-tags and records
	// it in the quote's removed set so regeneration never reapplies it
	RemoveAutoTag(ctx context.Context, id, tag string) error

	// Count returns the number of stored quotes
	Count(ctx context.Context) (int, error)
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a new lexicographically sortable quote ID
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
