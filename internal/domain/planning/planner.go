package planning

import (
	"math"
	"sort"

	"craftatlas/internal/domain/catalog"
)

// Mode selects the resolution policy.
type Mode string

const (
	// ModeStrict applies only the top-level recipe; every input becomes a
	// base material.
	ModeStrict Mode = "strict"
	// ModeSynthesis recursively expands inputs down to the depth limit.
	ModeSynthesis Mode = "synthesis"
)

// DefaultSynthesisDepth is the expansion depth limit when the caller does
// not set one.
const DefaultSynthesisDepth = 2

// Target names what to produce. RecipeID pins a specific candidate; empty
// means index-order auto selection. Quantity below 1 is treated as 1.
type Target struct {
	ItemID   string
	Quantity int
	RecipeID string
}

// Config carries the planner inputs. MaxDepth at or below zero selects the
// mode default.
type Config struct {
	Mode       Mode
	Index      Index
	Categories catalog.CategoryMap
	MaxDepth   int
}

// EffectiveMaxDepth resolves the depth limit for the configured mode.
// Strict mode always plans at depth zero.
func (c Config) EffectiveMaxDepth() int {
	if c.Mode == ModeStrict {
		return 0
	}
	if c.MaxDepth <= 0 {
		return DefaultSynthesisDepth
	}
	return c.MaxDepth
}

// node is one position in the expansion tree. A node without a recipe is a
// leaf: its item is a base material.
type node struct {
	itemID      string
	desiredQty  int
	actualQty   int
	runs        int
	timeSeconds float64
	depth       int
	recipe      *catalog.Recipe
	children    []*node
}

// Plan expands the target into production steps and aggregated base
// materials. It fails with *MissingRecipeError when nothing produces the
// target item, and with *UnknownRecipeError when a pinned recipe id is not
// among the target's candidates.
func Plan(target Target, cfg Config) (Result, error) {
	qty := target.Quantity
	if qty < 1 {
		qty = 1
	}

	candidates := cfg.Index.Candidates(target.ItemID)
	if len(candidates) == 0 {
		return Result{}, &MissingRecipeError{ItemID: target.ItemID}
	}

	rootRecipe := candidates[0]
	if target.RecipeID != "" {
		found := false
		for _, c := range candidates {
			if c.ID == target.RecipeID {
				rootRecipe = c
				found = true
				break
			}
		}
		if !found {
			return Result{}, &UnknownRecipeError{ItemID: target.ItemID, RecipeID: target.RecipeID}
		}
	}

	exp := expander{
		cfg:      cfg,
		maxDepth: cfg.EffectiveMaxDepth(),
		allowed:  allowedCategories(rootRecipe, cfg.Categories),
	}
	visited := map[string]bool{target.ItemID: true}
	root := exp.apply(target.ItemID, qty, rootRecipe, 0, visited)

	return assemble(cfg.Mode, root), nil
}

// allowedCategories collects the categories of the root recipe's direct
// inputs. An empty set means expansion is unrestricted.
func allowedCategories(root catalog.Recipe, categories catalog.CategoryMap) map[string]bool {
	allowed := map[string]bool{}
	for _, in := range root.Inputs {
		if cat, ok := categories[in.ItemID]; ok && cat != "" {
			allowed[cat] = true
		}
	}
	return allowed
}

type expander struct {
	cfg      Config
	maxDepth int
	allowed  map[string]bool
}

// apply runs a chosen recipe for an item and recursively expands its
// inputs. visited is the set of item ids on the root-to-node path; every
// descent copies it so sibling branches cannot contaminate each other.
func (e expander) apply(itemID string, desiredQty int, recipe catalog.Recipe, depth int, visited map[string]bool) *node {
	batch := recipe.Quantity
	if batch < 1 {
		batch = 1
	}
	runs := int(math.Ceil(float64(desiredQty) / float64(batch)))
	if runs < 1 {
		runs = 1
	}

	n := &node{
		itemID:      itemID,
		desiredQty:  desiredQty,
		actualQty:   runs * batch,
		runs:        runs,
		timeSeconds: recipe.TimeSeconds * float64(runs),
		depth:       depth,
		recipe:      &recipe,
	}

	for _, in := range recipe.Inputs {
		childQty := in.Qty * runs
		childDepth := depth + 1

		sub, ok := e.selectSubRecipe(in.ItemID, childDepth, visited)
		if !ok {
			n.children = append(n.children, &node{
				itemID:     in.ItemID,
				desiredQty: childQty,
				actualQty:  childQty,
				depth:      childDepth,
			})
			continue
		}

		childVisited := make(map[string]bool, len(visited)+1)
		for id := range visited {
			childVisited[id] = true
		}
		childVisited[in.ItemID] = true
		n.children = append(n.children, e.apply(in.ItemID, childQty, sub, childDepth, childVisited))
	}

	return n
}

// selectSubRecipe picks the recipe to expand an intermediate item with, or
// reports that the item stays a leaf. Guards, in order: depth limit, cycle
// (item already on the current path), category allow-list.
func (e expander) selectSubRecipe(itemID string, depth int, visited map[string]bool) (catalog.Recipe, bool) {
	if depth > e.maxDepth {
		return catalog.Recipe{}, false
	}
	if visited[itemID] {
		return catalog.Recipe{}, false
	}
	for _, c := range e.cfg.Index.Candidates(itemID) {
		if e.categoryAllowed(c) {
			return c, true
		}
	}
	return catalog.Recipe{}, false
}

// categoryAllowed accepts a recipe when every input either has no known
// category or one contained in the root's allow-set. An empty allow-set
// accepts everything.
func (e expander) categoryAllowed(r catalog.Recipe) bool {
	if len(e.allowed) == 0 {
		return true
	}
	for _, in := range r.Inputs {
		cat, ok := e.cfg.Categories[in.ItemID]
		if !ok || cat == "" {
			continue
		}
		if !e.allowed[cat] {
			return false
		}
	}
	return true
}

// assemble folds the tree into the flat result: every non-leaf node becomes
// a step, every leaf folds into the base-material totals.
func assemble(mode Mode, root *node) Result {
	var steps []Step
	materials := map[string]int{}

	var walk func(n *node)
	walk = func(n *node) {
		if n.recipe == nil {
			materials[n.itemID] += n.actualQty
			return
		}
		step := Step{
			RecipeID:    n.recipe.ID,
			ItemID:      n.itemID,
			Runs:        n.runs,
			OutputQty:   n.actualQty,
			TimeSeconds: n.timeSeconds,
			Depth:       n.depth,
		}
		for _, c := range n.children {
			step.Inputs = append(step.Inputs, StepInput{ItemID: c.itemID, Qty: c.desiredQty})
		}
		steps = append(steps, step)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)

	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].Depth != steps[j].Depth {
			return steps[i].Depth < steps[j].Depth
		}
		return steps[i].RecipeID < steps[j].RecipeID
	})

	ids := make([]string, 0, len(materials))
	for id := range materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	base := make([]Material, 0, len(ids))
	for _, id := range ids {
		base = append(base, Material{ItemID: id, Qty: materials[id]})
	}

	total := 0.0
	for _, s := range steps {
		total += s.TimeSeconds
	}

	return Result{
		Mode:             mode,
		TargetQty:        root.desiredQty,
		OutputQty:        root.actualQty,
		TotalTimeSeconds: total,
		Steps:            steps,
		BaseMaterials:    base,
		RecipeID:         root.recipe.ID,
	}
}
