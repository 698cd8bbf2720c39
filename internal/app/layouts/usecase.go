package layouts

import (
	"context"
	"errors"
	"strings"
	"time"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/layout"
)

var ErrInvalidRequest = errors.New("invalid layout request")

type UseCase struct {
	Catalog ports.CatalogProvider
	Layouts ports.LayoutRepository
	Rand    layout.Rand
	Now     func() time.Time
}

// Score rates a grid against the module catalog.
func (u UseCase) Score(ctx context.Context, req ScoreRequest) (ScoreResponse, error) {
	if err := req.Grid.Validate(); err != nil {
		return ScoreResponse{}, ErrInvalidRequest
	}
	return ScoreResponse{Score: layout.Score(req.Grid, u.Catalog.Modules(ctx))}, nil
}

// Optimize searches for a better arrangement of the grid's modules plus the
// bench. The returned score never drops below the input score.
func (u UseCase) Optimize(ctx context.Context, req OptimizeRequest) (OptimizeResponse, error) {
	if err := req.Grid.Validate(); err != nil {
		return OptimizeResponse{}, ErrInvalidRequest
	}
	if req.Iterations < 0 {
		return OptimizeResponse{}, ErrInvalidRequest
	}
	iterations := req.Iterations
	if iterations == 0 {
		iterations = layout.DefaultIterations
	}

	modules := u.Catalog.Modules(ctx)
	before := layout.Score(req.Grid, modules)
	out := layout.Optimize(layout.State{Grid: req.Grid, Bench: req.Bench}, modules, layout.Options{
		Iterations: iterations,
		Rand:       u.Rand,
		OnImprove:  req.OnImprove,
	})
	after := layout.Score(out.Grid, modules)

	return OptimizeResponse{
		Grid:        out.Grid,
		Bench:       out.Bench,
		ScoreBefore: before,
		ScoreAfter:  after,
		Improved:    after > before,
	}, nil
}

// Save stores a named grid.
func (u UseCase) Save(ctx context.Context, req SaveRequest) (LayoutResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return LayoutResponse{}, ErrInvalidRequest
	}
	if err := req.Grid.Validate(); err != nil {
		return LayoutResponse{}, ErrInvalidRequest
	}
	record := ports.LayoutRecord{Name: name, Grid: req.Grid.Clone(), UpdatedAt: u.now()}
	if err := u.Layouts.Save(ctx, record); err != nil {
		return LayoutResponse{}, err
	}
	return u.toResponse(ctx, record), nil
}

// Resize reshapes a stored grid, preserving slot content by index.
func (u UseCase) Resize(ctx context.Context, req ResizeRequest) (LayoutResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.Rows < 1 || req.Cols < 1 {
		return LayoutResponse{}, ErrInvalidRequest
	}
	record, err := u.Layouts.GetByName(ctx, req.Name)
	if err != nil {
		return LayoutResponse{}, err
	}
	record.Grid = record.Grid.Resized(req.Rows, req.Cols)
	record.UpdatedAt = u.now()
	if err := u.Layouts.Save(ctx, record); err != nil {
		return LayoutResponse{}, err
	}
	return u.toResponse(ctx, record), nil
}

func (u UseCase) Get(ctx context.Context, name string) (LayoutResponse, error) {
	record, err := u.Layouts.GetByName(ctx, name)
	if err != nil {
		return LayoutResponse{}, err
	}
	return u.toResponse(ctx, record), nil
}

func (u UseCase) List(ctx context.Context) (ListResponse, error) {
	records, err := u.Layouts.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	resp := ListResponse{Layouts: make([]LayoutResponse, 0, len(records))}
	for _, r := range records {
		resp.Layouts = append(resp.Layouts, u.toResponse(ctx, r))
	}
	return resp, nil
}

func (u UseCase) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidRequest
	}
	return u.Layouts.Delete(ctx, name)
}

func (u UseCase) toResponse(ctx context.Context, record ports.LayoutRecord) LayoutResponse {
	return LayoutResponse{
		Name:      record.Name,
		Grid:      record.Grid,
		Score:     layout.Score(record.Grid, u.Catalog.Modules(ctx)),
		UpdatedAt: record.UpdatedAt,
	}
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
