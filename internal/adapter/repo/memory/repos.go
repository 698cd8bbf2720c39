package memory

import (
	"context"

	"craftatlas/internal/app/ports"
)

type PortalRepo struct{ store *Store }

func NewPortalRepo(store *Store) PortalRepo { return PortalRepo{store: store} }

func (r PortalRepo) Save(_ context.Context, record ports.PortalRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.portals[record.ID] = record
	return nil
}

func (r PortalRepo) GetByID(_ context.Context, id string) (ports.PortalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.portals[id]
	if !ok {
		return ports.PortalRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r PortalRepo) List(context.Context) ([]ports.PortalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.PortalRecord, 0, len(r.store.portals))
	for _, record := range r.store.portals {
		out = append(out, record)
	}
	return out, nil
}

func (r PortalRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.portals[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.portals, id)
	return nil
}

type HintRepo struct{ store *Store }

func NewHintRepo(store *Store) HintRepo { return HintRepo{store: store} }

func (r HintRepo) Save(_ context.Context, record ports.HintRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.hints[record.ID] = record
	return nil
}

func (r HintRepo) GetByID(_ context.Context, id string) (ports.HintRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.hints[id]
	if !ok {
		return ports.HintRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r HintRepo) List(context.Context) ([]ports.HintRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.HintRecord, 0, len(r.store.hints))
	for _, record := range r.store.hints {
		out = append(out, record)
	}
	return out, nil
}

func (r HintRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.hints[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.hints, id)
	return nil
}

type NoteRepo struct{ store *Store }

func NewNoteRepo(store *Store) NoteRepo { return NoteRepo{store: store} }

func (r NoteRepo) Save(_ context.Context, record ports.NoteRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notes[record.ID] = record
	return nil
}

func (r NoteRepo) GetByID(_ context.Context, id string) (ports.NoteRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.notes[id]
	if !ok {
		return ports.NoteRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r NoteRepo) List(context.Context) ([]ports.NoteRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.NoteRecord, 0, len(r.store.notes))
	for _, record := range r.store.notes {
		out = append(out, record)
	}
	return out, nil
}

func (r NoteRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.notes[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.notes, id)
	return nil
}

type LayoutRepo struct{ store *Store }

func NewLayoutRepo(store *Store) LayoutRepo { return LayoutRepo{store: store} }

func (r LayoutRepo) Save(_ context.Context, record ports.LayoutRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	record.Grid = record.Grid.Clone()
	r.store.layouts[record.Name] = record
	return nil
}

func (r LayoutRepo) GetByName(_ context.Context, name string) (ports.LayoutRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.layouts[name]
	if !ok {
		return ports.LayoutRecord{}, ports.ErrNotFound
	}
	record.Grid = record.Grid.Clone()
	return record, nil
}

func (r LayoutRepo) List(context.Context) ([]ports.LayoutRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.LayoutRecord, 0, len(r.store.layouts))
	for _, record := range r.store.layouts {
		record.Grid = record.Grid.Clone()
		out = append(out, record)
	}
	return out, nil
}

func (r LayoutRepo) Delete(_ context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.layouts[name]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.layouts, name)
	return nil
}

type RecipeOverrideRepo struct{ store *Store }

func NewRecipeOverrideRepo(store *Store) RecipeOverrideRepo {
	return RecipeOverrideRepo{store: store}
}

func (r RecipeOverrideRepo) Save(_ context.Context, record ports.RecipeOverrideRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.overrides[record.RecipeID] = record
	return nil
}

func (r RecipeOverrideRepo) List(context.Context) ([]ports.RecipeOverrideRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.RecipeOverrideRecord, 0, len(r.store.overrides))
	for _, record := range r.store.overrides {
		out = append(out, record)
	}
	return out, nil
}
