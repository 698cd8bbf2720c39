package planning

import (
	"sort"

	"craftatlas/internal/domain/catalog"
)

// Index maps an output item id to its candidate recipes, pre-sorted so that
// the first candidate is the default selection: fewer inputs first, then
// shorter time, then display name. Rebuilding from the same recipe list
// yields the same ordering.
type Index map[string][]catalog.Recipe

// NewIndex groups recipes by output item and sorts each candidate group.
func NewIndex(recipes []catalog.Recipe) Index {
	idx := make(Index, len(recipes))
	for _, r := range recipes {
		idx[r.Output] = append(idx[r.Output], r.Clone())
	}
	for _, group := range idx {
		sort.SliceStable(group, func(i, j int) bool {
			a, b := group[i], group[j]
			if len(a.Inputs) != len(b.Inputs) {
				return len(a.Inputs) < len(b.Inputs)
			}
			if a.TimeSeconds != b.TimeSeconds {
				return a.TimeSeconds < b.TimeSeconds
			}
			return a.DisplayName() < b.DisplayName()
		})
	}
	return idx
}

// Candidates returns the sorted candidate recipes for an item, nil when the
// item cannot be produced.
func (idx Index) Candidates(itemID string) []catalog.Recipe {
	return idx[itemID]
}
