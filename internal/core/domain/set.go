package domain

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of identifiers (unit names, library names
// or file paths). The zero value is not usable; use NewSet.
type Set map[string]struct{}

// NewSet creates a Set containing the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts an item into the set.
func (s Set) Add(item string) {
	s[item] = struct{}{}
}

// AddAll inserts every item of other into the set.
func (s Set) AddAll(other Set) {
	for item := range other {
		s[item] = struct{}{}
	}
}

// Has reports whether the set contains item.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Intersects reports whether the two sets share at least one item.
func (s Set) Intersects(other Set) bool {
	// Iterate over the smaller side.
	if len(other) < len(s) {
		s, other = other, s
	}
	for item := range s {
		if other.Has(item) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for item := range s {
		clone[item] = struct{}{}
	}
	return clone
}

// Equal reports whether both sets contain exactly the same items.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Sorted returns the items of the set as a sorted slice.
func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes the set from a JSON array.
func (s *Set) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}
