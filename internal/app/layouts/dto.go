package layouts

import (
	"time"

	"craftatlas/internal/domain/layout"
)

type ScoreRequest struct {
	Grid layout.Grid
}

type ScoreResponse struct {
	Score int `json:"score"`
}

type OptimizeRequest struct {
	Grid       layout.Grid
	Bench      []string
	Iterations int

	// OnImprove, when set, observes every improvement the search finds.
	// Transport-level; never serialized.
	OnImprove func(iteration, score int) `json:"-"`
}

type OptimizeResponse struct {
	Grid        layout.Grid `json:"grid"`
	Bench       []string    `json:"bench"`
	ScoreBefore int         `json:"score_before"`
	ScoreAfter  int         `json:"score_after"`
	Improved    bool        `json:"improved"`
}

type SaveRequest struct {
	Name string
	Grid layout.Grid
}

type ResizeRequest struct {
	Name string
	Rows int
	Cols int
}

type LayoutResponse struct {
	Name      string      `json:"name"`
	Grid      layout.Grid `json:"grid"`
	Score     int         `json:"score"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type ListResponse struct {
	Layouts []LayoutResponse `json:"layouts"`
}
