package hints

import (
	"context"
	"errors"
	"sort"
	"strings"

	"craftatlas/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid hint request")

type UseCase struct {
	Hints ports.HintRepository
}

type Request struct {
	ID       string
	Title    string
	Body     string
	Category string
}

type ListResponse struct {
	Hints []ports.HintRecord `json:"hints"`
}

func (u UseCase) Save(ctx context.Context, req Request) (ports.HintRecord, error) {
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Title) == "" {
		return ports.HintRecord{}, ErrInvalidRequest
	}
	record := ports.HintRecord{
		ID:       strings.TrimSpace(req.ID),
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		Category: strings.TrimSpace(req.Category),
	}
	if err := u.Hints.Save(ctx, record); err != nil {
		return ports.HintRecord{}, err
	}
	return record, nil
}

func (u UseCase) Get(ctx context.Context, id string) (ports.HintRecord, error) {
	return u.Hints.GetByID(ctx, id)
}

func (u UseCase) List(ctx context.Context) (ListResponse, error) {
	records, err := u.Hints.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Title != records[j].Title {
			return records[i].Title < records[j].Title
		}
		return records[i].ID < records[j].ID
	})
	return ListResponse{Hints: records}, nil
}

func (u UseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidRequest
	}
	return u.Hints.Delete(ctx, id)
}
