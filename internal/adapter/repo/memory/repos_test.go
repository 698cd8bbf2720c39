package memory

import (
	"context"
	"errors"
	"testing"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/layout"
)

func TestPortalRepo_CRUD(t *testing.T) {
	repo := NewPortalRepo(NewStore())
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "p1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	record := ports.PortalRecord{ID: "p1", Name: "home", Address: "0123456789AB"}
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Address != "0123456789AB" {
		t.Fatalf("unexpected address: %q", got.Address)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 portal, got %d", len(all))
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestLayoutRepo_SaveClonesGrid(t *testing.T) {
	repo := NewLayoutRepo(NewStore())
	ctx := context.Background()

	grid := layout.Grid{Rows: 1, Cols: 1, Slots: []layout.Slot{{ID: "s0", Type: layout.SlotTech}}}
	if err := repo.Save(ctx, ports.LayoutRecord{Name: "ship", Grid: grid}); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's grid must not reach the stored copy.
	grid.Slots[0].ModuleID = "cannon"

	got, err := repo.GetByName(ctx, "ship")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Grid.Slots[0].ModuleID != "" {
		t.Fatalf("stored grid shares memory with caller")
	}

	// And mutating a read result must not reach the store either.
	got.Grid.Slots[0].ModuleID = "amp"
	again, err := repo.GetByName(ctx, "ship")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.Grid.Slots[0].ModuleID != "" {
		t.Fatalf("read result shares memory with store")
	}
}

func TestRecipeOverrideRepo_UpsertsByRecipeID(t *testing.T) {
	repo := NewRecipeOverrideRepo(NewStore())
	ctx := context.Background()

	if err := repo.Save(ctx, ports.RecipeOverrideRecord{RecipeID: "r1", Quantity: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, ports.RecipeOverrideRecord{RecipeID: "r1", Quantity: 3}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 override, got %d", len(all))
	}
	if all[0].Quantity != 3 {
		t.Fatalf("expected latest quantity 3, got %d", all[0].Quantity)
	}
}

func TestNoteRepo_Upsert(t *testing.T) {
	repo := NewNoteRepo(NewStore())
	ctx := context.Background()

	if err := repo.Save(ctx, ports.NoteRecord{ID: "n1", Title: "first"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, ports.NoteRecord{ID: "n1", Title: "second"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.GetByID(ctx, "n1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "second" {
		t.Fatalf("expected latest title, got %q", got.Title)
	}
}
