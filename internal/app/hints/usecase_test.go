package hints

import (
	"context"
	"errors"
	"testing"

	"craftatlas/internal/app/ports"
)

func TestSave_TrimsFields(t *testing.T) {
	repo := &hintRepo{records: map[string]ports.HintRecord{}}
	uc := UseCase{Hints: repo}

	record, err := uc.Save(context.Background(), Request{
		ID:       " h1 ",
		Title:    " Supercharged slots ",
		Body:     "put the main weapon on a supercharged slot",
		Category: " layout ",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.ID != "h1" || record.Title != "Supercharged slots" || record.Category != "layout" {
		t.Fatalf("fields not trimmed: %+v", record)
	}
}

func TestSave_RequiresIDAndTitle(t *testing.T) {
	uc := UseCase{Hints: &hintRepo{records: map[string]ports.HintRecord{}}}

	if _, err := uc.Save(context.Background(), Request{Title: "t"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for missing id, got %v", err)
	}
	if _, err := uc.Save(context.Background(), Request{ID: "h1"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for missing title, got %v", err)
	}
}

func TestList_Deterministic(t *testing.T) {
	repo := &hintRepo{records: map[string]ports.HintRecord{
		"z": {ID: "z", Title: "adjacency"},
		"a": {ID: "a", Title: "refiners"},
		"m": {ID: "m", Title: "adjacency"},
	}}
	uc := UseCase{Hints: repo}

	resp, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, 0, len(resp.Hints))
	for _, h := range resp.Hints {
		got = append(got, h.ID)
	}
	want := []string{"m", "z", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got=%v want=%v", got, want)
		}
	}
}

type hintRepo struct {
	records map[string]ports.HintRecord
}

func (r *hintRepo) Save(_ context.Context, record ports.HintRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *hintRepo) GetByID(_ context.Context, id string) (ports.HintRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return ports.HintRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r *hintRepo) List(context.Context) ([]ports.HintRecord, error) {
	out := make([]ports.HintRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *hintRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.records, id)
	return nil
}
