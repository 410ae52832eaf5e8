// Package champion selects the overall champions from entrants grouped by
// category.
//
// Each category keeps its best-ranked entrant. A category best survives only
// if no lower category holds a best with an equal or higher rank. Entrants
// that tie the current best of their own category are recorded as draws and
// both become candidates; they are still swept against lower categories.
package champion

import (
	"slices"

	"github.com/okian/champions/internal/domain/dedupe"
	"github.com/okian/champions/internal/domain/model"
)

// Stats summarises one selection run.
type Stats struct {
	Entrants   int // entrants received
	Categories int // distinct categories seen
	Draws      int // draw pairs detected during reduction
	Candidates int // distinct candidates after deduplication
	Eliminated int // candidates dropped by the sweep
	Champions  int // entrants returned
}

// Elimination records which category best knocked a candidate out.
type Elimination struct {
	Candidate model.Entrant
	By        model.Entrant
}

// Result is the full outcome of Run.
type Result struct {
	Champions    []model.Entrant
	Eliminations []Elimination
	Stats        Stats
}

// Select returns the champions among entrants, ordered by ascending
// category. Within one category, ties are ordered by rank then name.
// The input is not modified and the result never aliases it.
func Select(entrants []model.Entrant) []model.Entrant {
	return Run(entrants).Champions
}

// Run performs the selection and also reports what happened along the way.
func Run(entrants []model.Entrant) Result {
	bests, draws := reduce(entrants)
	candidates := assemble(bests, draws)
	champions, eliminations := sweep(bests, candidates)

	return Result{
		Champions:    champions,
		Eliminations: eliminations,
		Stats: Stats{
			Entrants:   len(entrants),
			Categories: len(bests),
			Draws:      len(draws) / 2,
			Candidates: len(candidates),
			Eliminated: len(eliminations),
			Champions:  len(champions),
		},
	}
}

// reduce walks entrants in input order and keeps the best entrant per
// category. An entrant that ties the current best is appended to draws
// together with that best, and the category best is left as it is.
func reduce(entrants []model.Entrant) (map[uint]model.Entrant, []model.Entrant) {
	bests := make(map[uint]model.Entrant)
	var draws []model.Entrant

	for _, e := range entrants {
		current, ok := bests[e.Category]
		if !ok {
			bests[e.Category] = e
			continue
		}
		if e.DrawsWith(current) {
			draws = append(draws, current, e)
			continue
		}
		bests[e.Category] = e.Stronger(current)
	}
	return bests, draws
}

// assemble merges category bests and draw participants into one
// deduplicated candidate list sorted by category. Values are first ordered
// on the full tuple so that equal categories keep a rank, name order.
func assemble(bests map[uint]model.Entrant, draws []model.Entrant) []model.Entrant {
	set := dedupe.New[model.Entrant](dedupe.WithCapacity(len(bests) + len(draws)))
	for _, e := range bests {
		set.SeenAndRecord(e)
	}
	for _, e := range draws {
		set.SeenAndRecord(e)
	}

	candidates := set.Sorted(model.Compare)
	slices.SortStableFunc(candidates, model.CompareCategory)
	return candidates
}

// sweep walks category keys in ascending order for every candidate. The
// candidate is kept once its own category is reached and dropped at the
// first lower category whose best beats it.
func sweep(bests map[uint]model.Entrant, candidates []model.Entrant) ([]model.Entrant, []Elimination) {
	keys := make([]uint, 0, len(bests))
	for k := range bests {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	champions := make([]model.Entrant, 0, len(candidates))
	var eliminations []Elimination

	for _, c := range candidates {
		for _, k := range keys {
			if k == c.Category {
				champions = append(champions, c)
				break
			}
			if best := bests[k]; c.BeatenBy(best) {
				eliminations = append(eliminations, Elimination{Candidate: c, By: best})
				break
			}
		}
	}
	return champions, eliminations
}
