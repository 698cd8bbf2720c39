package layout

import (
	"sort"
	"time"

	"craftatlas/internal/domain/catalog"
)

// DefaultIterations is the hill-climb budget when the caller does not set one.
const DefaultIterations = 200

// State pairs a grid with the bench: module ids owned but not placed.
type State struct {
	Grid  Grid     `json:"grid"`
	Bench []string `json:"bench"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{Grid: s.Grid.Clone()}
	if s.Bench != nil {
		out.Bench = make([]string, len(s.Bench))
		copy(out.Bench, s.Bench)
	}
	return out
}

// Options tunes the optimizer. A nil Rand falls back to a time-seeded
// source; OnImprove, when set, fires on every strict improvement found by
// the hill climb.
type Options struct {
	Iterations int
	Rand       Rand
	OnImprove  func(iteration, score int)
}

// Optimize rearranges the module pool (placed plus benched) for a higher
// score: greedy seeding by effective module value into supercharge-first
// slots, then randomized pairwise-swap hill climbing. The returned state
// never scores below the input state and conserves the pool: no module is
// duplicated or lost, surplus modules stay on the bench.
func Optimize(state State, modules map[string]catalog.TechModule, opts Options) State {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	iterations := opts.Iterations
	if iterations < 0 {
		iterations = 0
	}

	pool := append(state.Grid.PlacedModuleIDs(), state.Bench...)
	if len(pool) == 0 {
		out := state.Clone()
		out.Bench = nil
		return out
	}

	best := greedySeed(state.Grid, pool, modules)
	bestScore := Score(best, modules)

	for it := 0; it < iterations; it++ {
		occupied := occupiedIndices(best)
		if len(occupied) < 2 {
			break
		}
		a, b := pickDistinct(rng, len(occupied))
		i, j := occupied[a], occupied[b]

		scratch := best.Clone()
		scratch.Slots[i].ModuleID, scratch.Slots[j].ModuleID = scratch.Slots[j].ModuleID, scratch.Slots[i].ModuleID
		if s := Score(scratch, modules); s > bestScore {
			best = scratch
			bestScore = s
			if opts.OnImprove != nil {
				opts.OnImprove(it, s)
			}
		}
	}

	if bestScore < Score(state.Grid, modules) {
		return state.Clone()
	}
	return State{Grid: best, Bench: leftover(pool, best)}
}

// greedySeed clears the grid and assigns the most valuable modules to the
// highest-priority slots: supercharged slots first, original order
// preserved among equals.
func greedySeed(grid Grid, pool []string, modules map[string]catalog.TechModule) Grid {
	ranked := make([]string, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return moduleValue(modules, ranked[i]) > moduleValue(modules, ranked[j])
	})

	slotOrder := make([]int, len(grid.Slots))
	for i := range slotOrder {
		slotOrder[i] = i
	}
	sort.SliceStable(slotOrder, func(i, j int) bool {
		return grid.Slots[slotOrder[i]].Supercharged && !grid.Slots[slotOrder[j]].Supercharged
	})

	out := grid.Clone()
	for i := range out.Slots {
		out.Slots[i].ModuleID = ""
	}
	for k, slotIdx := range slotOrder {
		if k >= len(ranked) {
			break
		}
		out.Slots[slotIdx].ModuleID = ranked[k]
	}
	return out
}

func moduleValue(modules map[string]catalog.TechModule, id string) float64 {
	if m, ok := modules[id]; ok {
		return m.EffectiveValue()
	}
	return 0
}

func occupiedIndices(grid Grid) []int {
	var out []int
	for i, s := range grid.Slots {
		if s.ModuleID != "" {
			out = append(out, i)
		}
	}
	return out
}

// pickDistinct draws two distinct indices in [0, n) with two Intn calls so
// a scripted Rand stays deterministic.
func pickDistinct(rng Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}

// leftover returns the pool modules not placed on the grid, multiset-aware.
func leftover(pool []string, grid Grid) []string {
	placed := map[string]int{}
	for _, id := range grid.PlacedModuleIDs() {
		placed[id]++
	}
	var bench []string
	for _, id := range pool {
		if placed[id] > 0 {
			placed[id]--
			continue
		}
		bench = append(bench, id)
	}
	return bench
}
