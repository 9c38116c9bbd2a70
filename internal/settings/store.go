package settings

import (
	"maps"
	"slices"
)

// Store is an immutable view over loaded settings.
type Store struct {
	values map[string]string
}

// NewStore copies values into a new Store. Later changes to values are not
// visible through the Store.
func NewStore(values map[string]string) *Store {
	cloned := maps.Clone(values)
	if cloned == nil {
		cloned = map[string]string{}
	}
	return &Store{values: cloned}
}

// Get returns the value for key and whether the key is configured.
func (s *Store) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.values[key]
	return value, ok
}

// Keys returns the configured keys in sorted order.
func (s *Store) Keys() []string {
	if s == nil {
		return []string{}
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of configured keys.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// All returns a copy of every configured entry.
func (s *Store) All() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return maps.Clone(s.values)
}
