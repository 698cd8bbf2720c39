package plans

import "craftatlas/internal/domain/planning"

type Request struct {
	ItemID   string
	Quantity int
	Mode     string
	RecipeID string
	MaxDepth int
}

type Response struct {
	Plan   planning.Result `json:"plan"`
	Cached bool            `json:"cached"`
}

type ClearCacheResponse struct {
	Evicted int `json:"evicted"`
}
