// Package model contains domain models passed between layers.
package model

import "cmp"

// Entrant is a ranked competitor placed in a category (typically an age).
// Higher Rank is stronger. Entrants are plain values and never mutated.
type Entrant struct {
	Rank     uint   // strength score, higher wins
	Category uint   // grouping key, e.g. age
	Name     string // display identifier, not required to be unique
}

// New builds an Entrant.
func New(name string, rank, category uint) Entrant {
	return Entrant{Rank: rank, Category: category, Name: name}
}

// Compare orders entrants on the full tuple: rank, then category, then name
// (bytewise). It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b Entrant) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// CompareCategory orders entrants by category only.
func CompareCategory(a, b Entrant) int {
	return cmp.Compare(a.Category, b.Category)
}

// DrawsWith reports whether both entrants hold exactly the same rank.
func (e Entrant) DrawsWith(other Entrant) bool {
	return e.Rank == other.Rank
}

// Stronger returns e when it strictly outranks other, and other otherwise.
func (e Entrant) Stronger(other Entrant) Entrant {
	if e.Rank > other.Rank {
		return e
	}
	return other
}

// BeatenBy reports whether other eliminates e: other sits in the same or a
// lower category and holds an equal or higher rank.
func (e Entrant) BeatenBy(other Entrant) bool {
	return (e.Category >= other.Category && e.Rank < other.Rank) ||
		(e.Category >= other.Category && e.Rank == other.Rank)
}
