package memory

import (
	"sync"

	"craftatlas/internal/app/ports"
)

// Store backs every repository interface with in-process maps. Used by
// tests and as the no-database fallback.
type Store struct {
	mu        sync.RWMutex
	portals   map[string]ports.PortalRecord
	hints     map[string]ports.HintRecord
	notes     map[string]ports.NoteRecord
	layouts   map[string]ports.LayoutRecord
	overrides map[string]ports.RecipeOverrideRecord
}

func NewStore() *Store {
	return &Store{
		portals:   make(map[string]ports.PortalRecord),
		hints:     make(map[string]ports.HintRecord),
		notes:     make(map[string]ports.NoteRecord),
		layouts:   make(map[string]ports.LayoutRecord),
		overrides: make(map[string]ports.RecipeOverrideRecord),
	}
}
