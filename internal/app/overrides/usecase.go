package overrides

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/catalog"
)

// ErrMalformedOverride marks a patch rejected before touching any recipe.
var ErrMalformedOverride = errors.New("malformed recipe override")

// PlanCache is the slice of the plan cache this usecase needs: wholesale
// invalidation after the recipe dataset changes.
type PlanCache interface {
	Clear() int
}

type UseCase struct {
	Catalog   ports.CatalogProvider
	Overrides ports.RecipeOverrideRepository
	Cache     PlanCache
	Now       func() time.Time
}

// InputPatch is one replacement ingredient.
type InputPatch struct {
	ItemID string `json:"item"`
	Qty    int    `json:"qty"`
}

// Request patches a recipe. Nil fields keep the current value; a non-nil
// Inputs slice replaces the ingredient list wholesale.
type Request struct {
	RecipeID    string
	Name        *string
	Quantity    *int
	TimeSeconds *float64
	Inputs      []InputPatch
	HasInputs   bool
}

type Response struct {
	Recipe       catalog.Recipe `json:"recipe"`
	CacheEvicted int            `json:"cache_evicted"`
}

// Execute validates the patch, applies it to the live catalog, persists it,
// and purges the plan cache. Validation failures leave everything
// untouched.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.RecipeID) == "" {
		return Response{}, fmt.Errorf("%w: recipe id required", ErrMalformedOverride)
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return Response{}, fmt.Errorf("%w: quantity must be positive", ErrMalformedOverride)
	}
	if req.TimeSeconds != nil && *req.TimeSeconds < 0 {
		return Response{}, fmt.Errorf("%w: time must not be negative", ErrMalformedOverride)
	}
	if req.HasInputs {
		if len(req.Inputs) == 0 {
			return Response{}, fmt.Errorf("%w: inputs must not be empty", ErrMalformedOverride)
		}
		for i, in := range req.Inputs {
			if strings.TrimSpace(in.ItemID) == "" {
				return Response{}, fmt.Errorf("%w: input %d missing item", ErrMalformedOverride, i)
			}
			if in.Qty < 1 {
				return Response{}, fmt.Errorf("%w: input %d qty must be positive", ErrMalformedOverride, i)
			}
		}
	}

	current, err := u.Catalog.Recipe(ctx, req.RecipeID)
	if err != nil {
		return Response{}, err
	}

	record := ports.RecipeOverrideRecord{
		RecipeID:    current.ID,
		Name:        current.Name,
		Quantity:    current.Quantity,
		TimeSeconds: current.TimeSeconds,
		Inputs:      current.Clone().Inputs,
		AppliedAt:   u.now(),
	}
	if req.Name != nil {
		record.Name = strings.TrimSpace(*req.Name)
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}
	if req.TimeSeconds != nil {
		record.TimeSeconds = *req.TimeSeconds
	}
	if req.HasInputs {
		record.Inputs = make([]catalog.RecipeInput, 0, len(req.Inputs))
		for _, in := range req.Inputs {
			record.Inputs = append(record.Inputs, catalog.RecipeInput{ItemID: strings.TrimSpace(in.ItemID), Qty: in.Qty})
		}
	}

	if err := u.Catalog.ApplyOverride(ctx, record); err != nil {
		return Response{}, err
	}
	if err := u.Overrides.Save(ctx, record); err != nil {
		return Response{}, err
	}

	evicted := 0
	if u.Cache != nil {
		evicted = u.Cache.Clear()
	}

	updated, err := u.Catalog.Recipe(ctx, req.RecipeID)
	if err != nil {
		return Response{}, err
	}
	return Response{Recipe: updated, CacheEvicted: evicted}, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
