package quotes

import (
	"encoding/json"
	"sort"
	"strings"
)

// TagSet is a normalized set of tags. Tags are stored trimmed and
// lower-cased; membership checks are therefore case-insensitive.
// The zero value is usable but nil-safe constructors are preferred.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from raw tag strings, normalizing each one
// and dropping empties.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// NormalizeTag trims and lower-cases a tag
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Add inserts a tag after normalization. Empty tags are ignored.
func (s TagSet) Add(tag string) {
	if t := NormalizeTag(tag); t != "" {
		s[t] = struct{}{}
	}
}

// Has reports whether the set contains the tag (case-insensitive)
func (s TagSet) Has(tag string) bool {
	_, ok := s[NormalizeTag(tag)]
	return ok
}

// Remove deletes a tag from the set
func (s TagSet) Remove(tag string) {
	delete(s, NormalizeTag(tag))
}

// Len returns the number of tags in the set
func (s TagSet) Len() int {
	return len(s)
}

// Union returns a new set containing tags from both sets
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Subtract returns a new set with the other set's tags removed
func (s TagSet) Subtract(other TagSet) TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		if _, ok := other[t]; !ok {
			out[t] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets contain exactly the same tags
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if _, ok := other[t]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Sorted returns the tags as a sorted slice. An empty set yields an
// empty (non-nil) slice so callers can range and encode it directly.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of tags, normalizing each entry
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewTagSet(raw...)
	return nil
}
