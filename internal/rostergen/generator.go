// Package rostergen generates synthetic rosters for demos and benchmarks.
package rostergen

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/champions/internal/domain/model"
)

// Default generator settings.
const (
	DefaultEntrants    = 1000
	DefaultCategories  = 60
	DefaultMinCategory = 8
	DefaultMaxRank     = 3000
	DefaultSeed        = 42
)

// Tier selectors, drawn uniformly from [0, tierCount). Values not listed
// fall into the average tier.
const (
	tierElite   = 0
	tierHigh    = 1
	tierAverage = 2
	tierLow     = 3
	tierCount   = 8
)

// ErrInvalidConfig is returned for settings that cannot produce a roster.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config controls roster generation.
type Config struct {
	Entrants    int   // number of entrants to produce
	Categories  int   // number of distinct categories to spread them over
	MinCategory uint  // lowest category value
	MaxRank     uint  // upper bound for ranks (inclusive)
	Seed        int64 // same seed, same roster
}

// DefaultConfig returns the settings used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Entrants:    DefaultEntrants,
		Categories:  DefaultCategories,
		MinCategory: DefaultMinCategory,
		MaxRank:     DefaultMaxRank,
		Seed:        DefaultSeed,
	}
}

// Generate builds a deterministic roster. Names are short ids derived from
// the seeded source, so equal seeds give identical output.
func Generate(ctx context.Context, cfg Config) ([]model.Entrant, error) {
	switch {
	case cfg.Entrants < 0:
		return nil, fmt.Errorf("%w: entrants must not be negative", ErrInvalidConfig)
	case cfg.Categories <= 0:
		return nil, fmt.Errorf("%w: categories must be positive", ErrInvalidConfig)
	case cfg.MaxRank == 0:
		return nil, fmt.Errorf("%w: max rank must be positive", ErrInvalidConfig)
	case cfg.MinCategory > math.MaxUint-uint(cfg.Categories-1):
		return nil, fmt.Errorf("%w: categories from %d overflow the category range", ErrInvalidConfig, cfg.MinCategory)
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible rosters
	out := make([]model.Entrant, cfg.Entrants)
	for i := range out {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("generation cancelled: %w", err)
			}
		}
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generate name %d: %w", i, err)
		}
		out[i] = model.New(
			"entrant-"+id.String()[:8],
			variedRank(rng, cfg.MaxRank),
			cfg.MinCategory+uint(rng.Intn(cfg.Categories)),
		)
	}
	return out, nil
}

// variedRank draws a rank from a skewed distribution: most entrants are
// average, few are elite.
func variedRank(rng *rand.Rand, maxRank uint) uint {
	span := float64(maxRank)
	var lo, hi float64
	switch rng.Intn(tierCount) {
	case tierElite:
		lo, hi = 0.9, 1.0
	case tierHigh:
		lo, hi = 0.7, 0.9
	case tierLow:
		lo, hi = 0.0, 0.3
	case tierAverage:
		fallthrough
	default:
		lo, hi = 0.3, 0.7
	}
	return uint((lo + rng.Float64()*(hi-lo)) * span)
}
