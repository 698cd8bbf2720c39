package ports

import (
	"context"

	"craftatlas/internal/domain/catalog"
	"craftatlas/internal/domain/planning"
)

// CatalogProvider serves the reference datasets the planner and optimizer
// work over. Implementations are safe for concurrent use; snapshots they
// return are independent of internal state.
type CatalogProvider interface {
	Items(ctx context.Context) []catalog.Item
	Recipes(ctx context.Context) []catalog.Recipe
	Recipe(ctx context.Context, id string) (catalog.Recipe, error)
	Categories(ctx context.Context) catalog.CategoryMap
	Modules(ctx context.Context) map[string]catalog.TechModule
	Index(ctx context.Context) planning.Index

	// ApplyOverride replaces a recipe's mutable fields in place, keeping
	// its identity, and rebuilds the index. ErrNotFound when the recipe id
	// is unknown.
	ApplyOverride(ctx context.Context, override RecipeOverrideRecord) error
}
