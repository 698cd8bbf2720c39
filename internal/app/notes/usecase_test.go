package notes

import (
	"context"
	"errors"
	"testing"
	"time"

	"craftatlas/internal/app/ports"
)

func TestSave_StampsAndTrims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	repo := &noteRepo{records: map[string]ports.NoteRecord{}}
	uc := UseCase{Notes: repo, Now: func() time.Time { return now }}

	record, err := uc.Save(context.Background(), Request{ID: " n1 ", Title: " Glass farm ", Body: "frost crystals near base"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.ID != "n1" || record.Title != "Glass farm" {
		t.Fatalf("fields not trimmed: %+v", record)
	}
	if !record.UpdatedAt.Equal(now) {
		t.Fatalf("expected stamp %v, got %v", now, record.UpdatedAt)
	}
	if _, ok := repo.records["n1"]; !ok {
		t.Fatalf("record not persisted")
	}
}

func TestSave_RequiresIDAndTitle(t *testing.T) {
	uc := UseCase{Notes: &noteRepo{records: map[string]ports.NoteRecord{}}}

	if _, err := uc.Save(context.Background(), Request{Title: "t"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for missing id, got %v", err)
	}
	if _, err := uc.Save(context.Background(), Request{ID: "n1"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for missing title, got %v", err)
	}
}

func TestList_SortsByTitleThenID(t *testing.T) {
	repo := &noteRepo{records: map[string]ports.NoteRecord{
		"b": {ID: "b", Title: "alpha"},
		"a": {ID: "a", Title: "beta"},
		"c": {ID: "c", Title: "alpha"},
	}}
	uc := UseCase{Notes: repo}

	resp, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		got = append(got, n.ID)
	}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got=%v want=%v", got, want)
		}
	}
}

func TestDelete_RequiresID(t *testing.T) {
	uc := UseCase{Notes: &noteRepo{records: map[string]ports.NoteRecord{}}}
	if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

type noteRepo struct {
	records map[string]ports.NoteRecord
}

func (r *noteRepo) Save(_ context.Context, record ports.NoteRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *noteRepo) GetByID(_ context.Context, id string) (ports.NoteRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return ports.NoteRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r *noteRepo) List(context.Context) ([]ports.NoteRecord, error) {
	out := make([]ports.NoteRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *noteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.records, id)
	return nil
}
