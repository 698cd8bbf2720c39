package layout

import "fmt"

type SlotType string

const (
	SlotTech  SlotType = "tech"
	SlotCargo SlotType = "cargo"
)

// Slot is one grid position. An empty ModuleID means the slot is free.
type Slot struct {
	ID           string   `json:"id"`
	Type         SlotType `json:"type"`
	Supercharged bool     `json:"supercharged"`
	ModuleID     string   `json:"module_id,omitempty"`
}

// Grid is a rows x cols board in row-major order.
type Grid struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Slots []Slot `json:"slots"`
}

// Validate checks the slot-count invariant.
func (g Grid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return fmt.Errorf("grid dimensions %dx%d invalid", g.Rows, g.Cols)
	}
	if len(g.Slots) != g.Rows*g.Cols {
		return fmt.Errorf("grid has %d slots, want %d", len(g.Slots), g.Rows*g.Cols)
	}
	return nil
}

// Clone returns a copy with an independent slot slice.
func (g Grid) Clone() Grid {
	out := g
	out.Slots = make([]Slot, len(g.Slots))
	copy(out.Slots, g.Slots)
	return out
}

// Resized returns a rows x cols grid keeping existing slot content by
// row-major index; extra positions are padded with empty tech slots,
// surplus positions are dropped.
func (g Grid) Resized(rows, cols int) Grid {
	out := Grid{Rows: rows, Cols: cols, Slots: make([]Slot, rows*cols)}
	for i := range out.Slots {
		if i < len(g.Slots) {
			out.Slots[i] = g.Slots[i]
			continue
		}
		out.Slots[i] = Slot{ID: fmt.Sprintf("s%d", i), Type: SlotTech}
	}
	return out
}

// PlacedModuleIDs lists the module ids currently on the grid, in slot order.
func (g Grid) PlacedModuleIDs() []string {
	var ids []string
	for _, s := range g.Slots {
		if s.ModuleID != "" {
			ids = append(ids, s.ModuleID)
		}
	}
	return ids
}
