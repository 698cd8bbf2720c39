package overrides

import (
	"context"
	"errors"
	"testing"
	"time"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/catalog"
	"craftatlas/internal/domain/planning"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func nowFixed() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

func baseRecipe() catalog.Recipe {
	return catalog.Recipe{
		ID: "glass", Name: "Glass", Output: "glass", Quantity: 5, TimeSeconds: 30,
		Inputs: []catalog.RecipeInput{{ItemID: "frost", Qty: 2}},
	}
}

func TestExecute_MalformedPatchLeavesEverythingUntouched(t *testing.T) {
	provider := &overrideCatalog{recipe: baseRecipe()}
	repo := &overrideRepo{}
	cache := &countingCache{}
	uc := UseCase{Catalog: provider, Overrides: repo, Cache: cache, Now: nowFixed}

	cases := []Request{
		{RecipeID: ""},
		{RecipeID: "glass", Quantity: intPtr(0)},
		{RecipeID: "glass", TimeSeconds: floatPtr(-1)},
		{RecipeID: "glass", HasInputs: true},
		{RecipeID: "glass", HasInputs: true, Inputs: []InputPatch{{ItemID: "", Qty: 1}}},
		{RecipeID: "glass", HasInputs: true, Inputs: []InputPatch{{ItemID: "frost", Qty: 0}}},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrMalformedOverride) {
			t.Fatalf("request %+v: expected ErrMalformedOverride, got %v", req, err)
		}
	}
	if provider.applied != 0 || len(repo.saved) != 0 || cache.clears != 0 {
		t.Fatalf("rejected patch caused side effects: applied=%d saved=%d clears=%d",
			provider.applied, len(repo.saved), cache.clears)
	}
}

func TestExecute_AppliesPersistsAndClearsCache(t *testing.T) {
	provider := &overrideCatalog{recipe: baseRecipe()}
	repo := &overrideRepo{}
	cache := &countingCache{entries: 3}
	uc := UseCase{Catalog: provider, Overrides: repo, Cache: cache, Now: nowFixed}

	resp, err := uc.Execute(context.Background(), Request{
		RecipeID:    "glass",
		Name:        strPtr("Tempered Glass"),
		Quantity:    intPtr(10),
		TimeSeconds: floatPtr(45),
		HasInputs:   true,
		Inputs:      []InputPatch{{ItemID: "frost", Qty: 4}, {ItemID: "silicate", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Recipe.ID != "glass" || resp.Recipe.Name != "Tempered Glass" || resp.Recipe.Quantity != 10 {
		t.Fatalf("updated recipe: %+v", resp.Recipe)
	}
	if resp.CacheEvicted != 3 || cache.clears != 1 {
		t.Fatalf("cache not cleared: evicted=%d clears=%d", resp.CacheEvicted, cache.clears)
	}
	if len(repo.saved) != 1 || repo.saved[0].RecipeID != "glass" || repo.saved[0].AppliedAt != nowFixed() {
		t.Fatalf("override not persisted: %+v", repo.saved)
	}
}

func TestExecute_PartialPatchKeepsOtherFields(t *testing.T) {
	provider := &overrideCatalog{recipe: baseRecipe()}
	uc := UseCase{Catalog: provider, Overrides: &overrideRepo{}, Now: nowFixed}

	resp, err := uc.Execute(context.Background(), Request{RecipeID: "glass", Quantity: intPtr(8)})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Recipe.Quantity != 8 {
		t.Fatalf("quantity not patched: %+v", resp.Recipe)
	}
	if resp.Recipe.Name != "Glass" || resp.Recipe.TimeSeconds != 30 || len(resp.Recipe.Inputs) != 1 {
		t.Fatalf("untouched fields changed: %+v", resp.Recipe)
	}
}

func TestExecute_UnknownRecipePropagatesNotFound(t *testing.T) {
	uc := UseCase{Catalog: &overrideCatalog{recipe: baseRecipe()}, Overrides: &overrideRepo{}, Now: nowFixed}
	if _, err := uc.Execute(context.Background(), Request{RecipeID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type overrideCatalog struct {
	recipe  catalog.Recipe
	applied int
}

func (c *overrideCatalog) Items(context.Context) []catalog.Item { return nil }

func (c *overrideCatalog) Recipes(context.Context) []catalog.Recipe {
	return []catalog.Recipe{c.recipe}
}

func (c *overrideCatalog) Categories(context.Context) catalog.CategoryMap { return nil }
func (c *overrideCatalog) Modules(context.Context) map[string]catalog.TechModule {
	return nil
}
func (c *overrideCatalog) Index(ctx context.Context) planning.Index {
	return planning.NewIndex(c.Recipes(ctx))
}
func (c *overrideCatalog) Recipe(_ context.Context, id string) (catalog.Recipe, error) {
	if id != c.recipe.ID {
		return catalog.Recipe{}, ports.ErrNotFound
	}
	return c.recipe.Clone(), nil
}
func (c *overrideCatalog) ApplyOverride(_ context.Context, override ports.RecipeOverrideRecord) error {
	if override.RecipeID != c.recipe.ID {
		return ports.ErrNotFound
	}
	c.recipe.Name = override.Name
	c.recipe.Quantity = override.Quantity
	c.recipe.TimeSeconds = override.TimeSeconds
	c.recipe.Inputs = override.Inputs
	c.applied++
	return nil
}

type overrideRepo struct {
	saved []ports.RecipeOverrideRecord
}

func (r *overrideRepo) Save(_ context.Context, record ports.RecipeOverrideRecord) error {
	r.saved = append(r.saved, record)
	return nil
}

func (r *overrideRepo) List(context.Context) ([]ports.RecipeOverrideRecord, error) {
	return r.saved, nil
}

type countingCache struct {
	entries int
	clears  int
}

func (c *countingCache) Clear() int {
	c.clears++
	n := c.entries
	c.entries = 0
	return n
}
