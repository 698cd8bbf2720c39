package planning

// StepInput is one ingredient demand of a step, already scaled to the
// step's run count.
type StepInput struct {
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"`
}

// Step is one recipe application in the plan. Repeated applications of the
// same recipe at different tree positions stay separate steps.
type Step struct {
	RecipeID    string      `json:"recipe_id"`
	ItemID      string      `json:"item_id"`
	Runs        int         `json:"runs"`
	OutputQty   int         `json:"output_qty"`
	TimeSeconds float64     `json:"time_seconds"`
	Depth       int         `json:"depth"`
	Inputs      []StepInput `json:"inputs"`
}

// Material is an aggregated base-material demand.
type Material struct {
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"`
}

// Result is an immutable snapshot of a resolved plan. Steps are ordered by
// ascending depth then recipe id; BaseMaterials by item id. TotalTimeSeconds
// is the naive serial total across all steps, an upper-bound estimate.
type Result struct {
	Mode             Mode       `json:"mode"`
	TargetQty        int        `json:"target_qty"`
	OutputQty        int        `json:"output_qty"`
	TotalTimeSeconds float64    `json:"total_time_seconds"`
	Steps            []Step     `json:"steps"`
	BaseMaterials    []Material `json:"base_materials"`
	RecipeID         string     `json:"recipe_id"`
}

// Clone returns a deep copy: the caller may mutate every slice and element
// of the copy without affecting the receiver.
func (r Result) Clone() Result {
	out := r
	if r.Steps != nil {
		out.Steps = make([]Step, len(r.Steps))
		for i, s := range r.Steps {
			cs := s
			if s.Inputs != nil {
				cs.Inputs = make([]StepInput, len(s.Inputs))
				copy(cs.Inputs, s.Inputs)
			}
			out.Steps[i] = cs
		}
	}
	if r.BaseMaterials != nil {
		out.BaseMaterials = make([]Material, len(r.BaseMaterials))
		copy(out.BaseMaterials, r.BaseMaterials)
	}
	return out
}
