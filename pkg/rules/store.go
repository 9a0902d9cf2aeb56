package rules

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/quotecms/quotetag/pkg/errors"
	"github.com/quotecms/quotetag/pkg/logging"
)

// Store owns the active RuleSet. Readers call Current and use that
// snapshot for the whole operation; writers build a complete new
// RuleSet off to the side and publish it with one atomic pointer swap.
// Reloads are serialized against each other but never block readers.
type Store struct {
	mu      sync.Mutex // serializes reloads
	current atomic.Pointer[RuleSet]
	logger  zerolog.Logger
}

// NewStore creates a store holding the empty version-0 RuleSet.
// Tagging is a no-op until the first successful Reload.
func NewStore() *Store {
	s := &Store{logger: logging.GetLogger("rules.store")}
	s.current.Store(emptyRuleSet())
	return s
}

// Current returns the active snapshot. Callers must capture it once
// per operation and not re-read mid-operation.
func (s *Store) Current() *RuleSet {
	return s.current.Load()
}

// Version returns the active snapshot's version
func (s *Store) Version() int64 {
	return s.Current().Version()
}

// Reload parses records and, when they yield at least one usable rule,
// publishes a new RuleSet with the version incremented by exactly one.
// When parsing yields zero rules the previous snapshot is retained and
// an ErrRulesEmpty error is returned alongside the warnings: a bad or
// empty source must never silently wipe all tagging behavior.
func (s *Store) Reload(records []Record) (ReloadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	parsed, warnings := Parse(records)

	if len(parsed) == 0 {
		s.logger.Warn().
			Int64("version", prev.Version()).
			Int("warnings", len(warnings)).
			Msg("Reload yielded no usable rules, keeping previous rule set")
		return ReloadResult{
			Applied:   false,
			Version:   prev.Version(),
			RuleCount: prev.Len(),
			Warnings:  warnings,
		}, errors.New(errors.ErrRulesEmpty, "rule source yielded no usable rules, no change applied")
	}

	next, err := NewRuleSet(prev.Version()+1, parsed)
	if err != nil {
		return ReloadResult{
			Applied:   false,
			Version:   prev.Version(),
			RuleCount: prev.Len(),
			Warnings:  warnings,
		}, err
	}

	s.current.Store(next)

	s.logger.Info().
		Int64("version", next.Version()).
		Int("rules", next.Len()).
		Int("warnings", len(warnings)).
		Msg("Published new rule set")

	return ReloadResult{
		Applied:   true,
		Version:   next.Version(),
		RuleCount: next.Len(),
		Warnings:  warnings,
	}, nil
}

// ReloadFile loads records from a rules file and applies them via
// Reload. An unreadable or unparseable file fails fast with the
// previous snapshot retained.
func (s *Store) ReloadFile(path string) (ReloadResult, error) {
	records, err := LoadFile(path)
	if err != nil {
		prev := s.Current()
		return ReloadResult{
			Applied:   false,
			Version:   prev.Version(),
			RuleCount: prev.Len(),
		}, err
	}
	return s.Reload(records)
}
