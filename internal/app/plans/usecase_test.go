package plans

import (
	"context"
	"errors"
	"testing"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/catalog"
	"craftatlas/internal/domain/planning"
)

func TestUseCase_ServesSecondCallFromCache(t *testing.T) {
	uc := UseCase{Catalog: fakeCatalog{recipes: []catalog.Recipe{
		{ID: "glass", Output: "glass", Quantity: 5, TimeSeconds: 30, Inputs: []catalog.RecipeInput{{ItemID: "frost", Qty: 2}}},
	}}, Cache: NewCache()}

	first, err := uc.Execute(context.Background(), Request{ItemID: "glass", Quantity: 12, Mode: "synthesis"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if first.Cached {
		t.Fatalf("first call should not be a cache hit")
	}

	second, err := uc.Execute(context.Background(), Request{ItemID: "glass", Quantity: 12, Mode: "synthesis"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second call should hit the cache")
	}
	if second.Plan.OutputQty != first.Plan.OutputQty || second.Plan.RecipeID != first.Plan.RecipeID {
		t.Fatalf("cache hit differs from computed plan: %+v vs %+v", second.Plan, first.Plan)
	}
}

func TestUseCase_CachedResultsAreIsolatedBetweenCallers(t *testing.T) {
	uc := UseCase{Catalog: fakeCatalog{recipes: []catalog.Recipe{
		{ID: "glass", Output: "glass", Quantity: 1, TimeSeconds: 10, Inputs: []catalog.RecipeInput{{ItemID: "frost", Qty: 2}}},
	}}, Cache: NewCache()}

	req := Request{ItemID: "glass", Quantity: 2, Mode: "strict"}
	a, _ := uc.Execute(context.Background(), req)
	b, _ := uc.Execute(context.Background(), req)
	a.Plan.BaseMaterials[0].Qty = 777

	c, _ := uc.Execute(context.Background(), req)
	if b.Plan.BaseMaterials[0].Qty != 4 || c.Plan.BaseMaterials[0].Qty != 4 {
		t.Fatalf("caller mutation leaked: b=%+v c=%+v", b.Plan.BaseMaterials, c.Plan.BaseMaterials)
	}
}

func TestUseCase_RejectsBadInput(t *testing.T) {
	uc := UseCase{Catalog: fakeCatalog{}, Cache: NewCache()}
	cases := []Request{
		{ItemID: "", Quantity: 1},
		{ItemID: "glass", Quantity: 0},
		{ItemID: "glass", Quantity: 1, Mode: "creative"},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("request %+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}
}

func TestUseCase_PropagatesPlannerErrors(t *testing.T) {
	uc := UseCase{Catalog: fakeCatalog{}, Cache: NewCache()}
	_, err := uc.Execute(context.Background(), Request{ItemID: "unobtanium", Quantity: 1})
	var missing *planning.MissingRecipeError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRecipeError, got %v", err)
	}
}

func TestUseCase_ClearCache(t *testing.T) {
	uc := UseCase{Catalog: fakeCatalog{recipes: []catalog.Recipe{
		{ID: "glass", Output: "glass", Quantity: 1, TimeSeconds: 1, Inputs: []catalog.RecipeInput{{ItemID: "frost", Qty: 1}}},
	}}, Cache: NewCache()}

	if _, err := uc.Execute(context.Background(), Request{ItemID: "glass", Quantity: 1}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	resp, err := uc.ClearCache(context.Background())
	if err != nil {
		t.Fatalf("ClearCache error: %v", err)
	}
	if resp.Evicted != 1 {
		t.Fatalf("evicted: got=%d want=1", resp.Evicted)
	}
}

type fakeCatalog struct {
	recipes    []catalog.Recipe
	categories catalog.CategoryMap
}

func (f fakeCatalog) Items(context.Context) []catalog.Item { return nil }

func (f fakeCatalog) Recipes(context.Context) []catalog.Recipe { return f.recipes }

func (f fakeCatalog) Categories(context.Context) catalog.CategoryMap {
	return f.categories
}
func (f fakeCatalog) Modules(context.Context) map[string]catalog.TechModule { return nil }

func (f fakeCatalog) Index(context.Context) planning.Index {
	return planning.NewIndex(f.recipes)
}
func (f fakeCatalog) Recipe(_ context.Context, id string) (catalog.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return catalog.Recipe{}, ports.ErrNotFound
}
func (f fakeCatalog) ApplyOverride(context.Context, ports.RecipeOverrideRecord) error {
	return nil
}
