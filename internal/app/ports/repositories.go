package ports

import (
	"context"
	"time"

	"craftatlas/internal/domain/catalog"
	"craftatlas/internal/domain/layout"
)

type PortalRecord struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Galaxy  string   `json:"galaxy"`
	Address string   `json:"address"`
	Tags    []string `json:"tags,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

type PortalRepository interface {
	Save(ctx context.Context, record PortalRecord) error
	GetByID(ctx context.Context, id string) (PortalRecord, error)
	List(ctx context.Context) ([]PortalRecord, error)
	Delete(ctx context.Context, id string) error
}

type HintRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category,omitempty"`
}

type HintRepository interface {
	Save(ctx context.Context, record HintRecord) error
	GetByID(ctx context.Context, id string) (HintRecord, error)
	List(ctx context.Context) ([]HintRecord, error)
	Delete(ctx context.Context, id string) error
}

type NoteRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteRepository interface {
	Save(ctx context.Context, record NoteRecord) error
	GetByID(ctx context.Context, id string) (NoteRecord, error)
	List(ctx context.Context) ([]NoteRecord, error)
	Delete(ctx context.Context, id string) error
}

type LayoutRecord struct {
	Name      string      `json:"name"`
	Grid      layout.Grid `json:"grid"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type LayoutRepository interface {
	Save(ctx context.Context, record LayoutRecord) error
	GetByName(ctx context.Context, name string) (LayoutRecord, error)
	List(ctx context.Context) ([]LayoutRecord, error)
	Delete(ctx context.Context, name string) error
}

// RecipeOverrideRecord is an applied admin patch: the full replacement
// values for a recipe's mutable fields. Identity (RecipeID) never changes.
type RecipeOverrideRecord struct {
	RecipeID    string                `json:"recipe_id"`
	Name        string                `json:"name"`
	Quantity    int                   `json:"quantity"`
	TimeSeconds float64               `json:"time_seconds"`
	Inputs      []catalog.RecipeInput `json:"inputs"`
	AppliedAt   time.Time             `json:"applied_at"`
}

type RecipeOverrideRepository interface {
	Save(ctx context.Context, record RecipeOverrideRecord) error
	List(ctx context.Context) ([]RecipeOverrideRecord, error)
}
