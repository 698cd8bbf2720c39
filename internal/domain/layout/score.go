package layout

import (
	"math"

	"craftatlas/internal/domain/catalog"
)

// Score rates a grid. Each recognized placed module contributes its base
// value plus its own adjacency weight for every recognized orthogonal
// neighbor; a supercharged slot multiplies the slot's whole contribution by
// the module's supercharge multiplier. Unknown module ids are skipped,
// missing adjacency entries count as zero. Pure and deterministic: the
// optimizer calls it in a tight loop.
func Score(grid Grid, modules map[string]catalog.TechModule) int {
	total := 0.0
	for i, slot := range grid.Slots {
		if slot.ModuleID == "" {
			continue
		}
		mod, ok := modules[slot.ModuleID]
		if !ok {
			continue
		}

		contribution := mod.BaseValue
		for _, j := range neighborIndices(grid, i) {
			neighborID := grid.Slots[j].ModuleID
			if neighborID == "" {
				continue
			}
			if _, known := modules[neighborID]; !known {
				continue
			}
			contribution += mod.Adjacency[neighborID]
		}
		if slot.Supercharged {
			contribution *= mod.SuperchargeMultiplier
		}
		total += contribution
	}
	return int(math.Round(total))
}

// neighborIndices returns the up/down/left/right slot indices of i,
// bounds-checked, no wraparound.
func neighborIndices(grid Grid, i int) []int {
	row, col := i/grid.Cols, i%grid.Cols
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, i-grid.Cols)
	}
	if row < grid.Rows-1 {
		out = append(out, i+grid.Cols)
	}
	if col > 0 {
		out = append(out, i-1)
	}
	if col < grid.Cols-1 {
		out = append(out, i+1)
	}
	return out
}
