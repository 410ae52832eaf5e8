// Package dedupe provides a value-keyed set with deterministic ordering.
package dedupe

import "slices"

// Set records values by full equality. Values are kept in insertion order
// internally but are only ever handed out sorted by a caller comparator,
// so map iteration order never leaks into results.
type Set[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

// New creates an empty Set.
func New[T comparable](opts ...Option) *Set[T] {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Set[T]{
		seen:  make(map[T]struct{}, cfg.capacity),
		items: make([]T, 0, cfg.capacity),
	}
}

// SeenAndRecord checks whether v was already recorded and records it if not.
// Returns true if v was already present.
func (s *Set[T]) SeenAndRecord(v T) bool {
	if _, ok := s.seen[v]; ok {
		return true
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return false
}

// Len returns the number of distinct values recorded.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Sorted returns a fresh slice of all values ordered by cmp.
func (s *Set[T]) Sorted(cmp func(a, b T) int) []T {
	out := slices.Clone(s.items)
	if out == nil {
		out = []T{}
	}
	slices.SortFunc(out, cmp)
	return out
}
