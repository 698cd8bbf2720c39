package plans

import (
	"context"
	"errors"
	"strings"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/planning"
)

var ErrInvalidRequest = errors.New("invalid plan request")

type UseCase struct {
	Catalog ports.CatalogProvider
	Cache   *Cache
}

// Execute resolves a production plan, serving repeated queries from the
// cache. Planner failures (missing recipe, unknown pinned recipe) pass
// through untouched for the transport layer to classify.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.ItemID) == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Quantity < 1 {
		return Response{}, ErrInvalidRequest
	}
	mode, err := parseMode(req.Mode)
	if err != nil {
		return Response{}, err
	}

	cfg := planning.Config{
		Mode:       mode,
		Index:      u.Catalog.Index(ctx),
		Categories: u.Catalog.Categories(ctx),
		MaxDepth:   req.MaxDepth,
	}

	key := cacheKey(mode, req.ItemID, req.Quantity, req.RecipeID, cfg.EffectiveMaxDepth())
	if u.Cache != nil {
		if res, ok := u.Cache.get(key); ok {
			return Response{Plan: res, Cached: true}, nil
		}
	}

	res, err := planning.Plan(planning.Target{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		RecipeID: req.RecipeID,
	}, cfg)
	if err != nil {
		return Response{}, err
	}

	if u.Cache != nil {
		u.Cache.add(key, res)
	}
	return Response{Plan: res}, nil
}

// ClearCache purges all memoized plans.
func (u UseCase) ClearCache(_ context.Context) (ClearCacheResponse, error) {
	if u.Cache == nil {
		return ClearCacheResponse{}, nil
	}
	return ClearCacheResponse{Evicted: u.Cache.Clear()}, nil
}

func parseMode(raw string) (planning.Mode, error) {
	switch planning.Mode(strings.TrimSpace(raw)) {
	case planning.ModeStrict:
		return planning.ModeStrict, nil
	case planning.ModeSynthesis, "":
		return planning.ModeSynthesis, nil
	default:
		return "", ErrInvalidRequest
	}
}
