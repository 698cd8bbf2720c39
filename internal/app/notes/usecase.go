package notes

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"craftatlas/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid note request")

type UseCase struct {
	Notes ports.NoteRepository
	Now   func() time.Time
}

type Request struct {
	ID    string
	Title string
	Body  string
}

type ListResponse struct {
	Notes []ports.NoteRecord `json:"notes"`
}

// Save upserts a note by id and stamps it.
func (u UseCase) Save(ctx context.Context, req Request) (ports.NoteRecord, error) {
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Title) == "" {
		return ports.NoteRecord{}, ErrInvalidRequest
	}
	record := ports.NoteRecord{
		ID:        strings.TrimSpace(req.ID),
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		UpdatedAt: u.now(),
	}
	if err := u.Notes.Save(ctx, record); err != nil {
		return ports.NoteRecord{}, err
	}
	return record, nil
}

func (u UseCase) Get(ctx context.Context, id string) (ports.NoteRecord, error) {
	return u.Notes.GetByID(ctx, id)
}

// List returns notes ordered by title then id.
func (u UseCase) List(ctx context.Context) (ListResponse, error) {
	records, err := u.Notes.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Title != records[j].Title {
			return records[i].Title < records[j].Title
		}
		return records[i].ID < records[j].ID
	})
	return ListResponse{Notes: records}, nil
}

func (u UseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidRequest
	}
	return u.Notes.Delete(ctx, id)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
