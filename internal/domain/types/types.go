// Package types contains common types used across the application
package types

import "github.com/okian/champions/internal/domain/model"

// Champion is one row of the champions list as printed to callers.
type Champion struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Rank     uint   `json:"rank" yaml:"rank"`
	Category uint   `json:"category" yaml:"category"`
}

// FromEntrants converts selected entrants into numbered rows, keeping order.
// Positions start at 1.
func FromEntrants(entrants []model.Entrant) []Champion {
	out := make([]Champion, len(entrants))
	for i, e := range entrants {
		out[i] = Champion{
			Position: i + 1,
			Name:     e.Name,
			Rank:     e.Rank,
			Category: e.Category,
		}
	}
	return out
}
