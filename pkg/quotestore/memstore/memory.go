// Package memstore provides an in-memory quotestore.Store, used in
// tests and as a scratch backend.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quotecms/quotetag/pkg/errors"
	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/quotestore"
)

type memStore struct {
	mu     sync.RWMutex
	quotes map[string]*quotes.Quote
}

// New creates an empty in-memory store
func New() quotestore.Store {
	return &memStore{quotes: make(map[string]*quotes.Quote)}
}

func (s *memStore) Close() error {
	return nil
}

func clone(q *quotes.Quote) *quotes.Quote {
	out := *q
	out.ManualTags = q.ManualTags.Clone()
	out.AutoTags = q.AutoTags.Clone()
	out.RemovedAutoTags = q.RemovedAutoTags.Clone()
	return &out
}

func (s *memStore) UpsertQuote(_ context.Context, q *quotes.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.ID == "" {
		q.ID = quotestore.NewID()
	}
	q.EnsureSets()
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	s.quotes[q.ID] = clone(q)
	return nil
}

func (s *memStore) GetQuote(_ context.Context, id string) (*quotes.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[id]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "quote %s not found", id)
	}
	return clone(q), nil
}

func (s *memStore) ListQuotes(_ context.Context) ([]*quotes.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*quotes.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, clone(q))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memStore) SetAutoTags(_ context.Context, id string, tags quotes.TagSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return errors.Newf(errors.ErrNotFound, "quote %s not found", id)
	}
	q.AutoTags = tags.Clone()
	q.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *memStore) RemoveAutoTag(_ context.Context, id, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return errors.Newf(errors.ErrNotFound, "quote %s not found", id)
	}
	q.AutoTags.Remove(tag)
	q.RemovedAutoTags.Add(tag)
	q.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *memStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes), nil
}
