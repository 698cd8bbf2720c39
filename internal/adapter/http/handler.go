package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"craftatlas/internal/app/hints"
	"craftatlas/internal/app/layouts"
	"craftatlas/internal/app/notes"
	"craftatlas/internal/app/overrides"
	"craftatlas/internal/app/plans"
	"craftatlas/internal/app/portals"
	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/layout"
	"craftatlas/internal/domain/planning"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	PlansUC     plans.UseCase
	LayoutsUC   layouts.UseCase
	NotesUC     notes.UseCase
	HintsUC     hints.UseCase
	PortalsUC   portals.UseCase
	OverridesUC overrides.UseCase
	Catalog     ports.CatalogProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	cat := s.Group("/api/catalog")
	cat.GET("/items", h.catalogItems)
	cat.GET("/recipes", h.catalogRecipes)
	cat.GET("/modules", h.catalogModules)

	s.POST("/api/plan", h.plan)
	s.POST("/api/plan/cache/clear", h.clearPlanCache)

	s.POST("/api/layout/score", h.scoreLayout)
	s.POST("/api/layout/optimize", h.optimizeLayout)
	s.GET("/ws/layout/optimize", h.optimizeLayoutWS)

	saved := s.Group("/api/layouts")
	saved.GET("", h.listLayouts)
	saved.POST("", h.saveLayout)
	saved.GET("/:name", h.getLayout)
	saved.DELETE("/:name", h.deleteLayout)
	saved.POST("/:name/resize", h.resizeLayout)

	p := s.Group("/api/portals")
	p.GET("", h.listPortals)
	p.POST("", h.savePortal)
	p.GET("/:id", h.getPortal)
	p.DELETE("/:id", h.deletePortal)

	hi := s.Group("/api/hints")
	hi.GET("", h.listHints)
	hi.POST("", h.saveHint)
	hi.GET("/:id", h.getHint)
	hi.DELETE("/:id", h.deleteHint)

	n := s.Group("/api/notes")
	n.GET("", h.listNotes)
	n.POST("", h.saveNote)
	n.GET("/:id", h.getNote)
	n.DELETE("/:id", h.deleteNote)

	s.POST("/api/admin/recipes/override", h.overrideRecipe)
}

func (h Handler) catalogItems(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"items": h.Catalog.Items(c)})
}

func (h Handler) catalogRecipes(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"recipes": h.Catalog.Recipes(c)})
}

func (h Handler) catalogModules(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"modules": h.Catalog.Modules(c)})
}

type planRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Mode     string `json:"mode"`
	RecipeID string `json:"recipe_id,omitempty"`
	MaxDepth int    `json:"max_depth,omitempty"`
}

func (h Handler) plan(c context.Context, ctx *app.RequestContext) {
	var body planRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PlansUC.Execute(c, plans.Request{
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
		Mode:     body.Mode,
		RecipeID: body.RecipeID,
		MaxDepth: body.MaxDepth,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) clearPlanCache(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PlansUC.ClearCache(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type scoreRequest struct {
	Grid layout.Grid `json:"grid"`
}

func (h Handler) scoreLayout(c context.Context, ctx *app.RequestContext) {
	var body scoreRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LayoutsUC.Score(c, layouts.ScoreRequest{Grid: body.Grid})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type optimizeRequest struct {
	Grid       layout.Grid `json:"grid"`
	Bench      []string    `json:"bench,omitempty"`
	Iterations int         `json:"iterations,omitempty"`
}

func (h Handler) optimizeLayout(c context.Context, ctx *app.RequestContext) {
	var body optimizeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LayoutsUC.Optimize(c, layouts.OptimizeRequest{
		Grid:       body.Grid,
		Bench:      body.Bench,
		Iterations: body.Iterations,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type saveLayoutRequest struct {
	Name string      `json:"name"`
	Grid layout.Grid `json:"grid"`
}

func (h Handler) saveLayout(c context.Context, ctx *app.RequestContext) {
	var body saveLayoutRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LayoutsUC.Save(c, layouts.SaveRequest{Name: body.Name, Grid: body.Grid})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

type resizeLayoutRequest struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func (h Handler) resizeLayout(c context.Context, ctx *app.RequestContext) {
	var body resizeLayoutRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LayoutsUC.Resize(c, layouts.ResizeRequest{
		Name: string(ctx.Param("name")),
		Rows: body.Rows,
		Cols: body.Cols,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getLayout(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LayoutsUC.Get(c, string(ctx.Param("name")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listLayouts(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LayoutsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteLayout(c context.Context, ctx *app.RequestContext) {
	if err := h.LayoutsUC.Delete(c, string(ctx.Param("name"))); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

type portalRequest struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Galaxy  string   `json:"galaxy,omitempty"`
	Address string   `json:"address"`
	Tags    []string `json:"tags,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

func (h Handler) savePortal(c context.Context, ctx *app.RequestContext) {
	var body portalRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	record, err := h.PortalsUC.Save(c, portals.Request{
		ID:      body.ID,
		Name:    body.Name,
		Galaxy:  body.Galaxy,
		Address: body.Address,
		Tags:    body.Tags,
		Notes:   body.Notes,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, record)
}

func (h Handler) getPortal(c context.Context, ctx *app.RequestContext) {
	record, err := h.PortalsUC.Get(c, string(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

func (h Handler) listPortals(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PortalsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deletePortal(c context.Context, ctx *app.RequestContext) {
	if err := h.PortalsUC.Delete(c, string(ctx.Param("id"))); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

type hintRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	Category string `json:"category,omitempty"`
}

func (h Handler) saveHint(c context.Context, ctx *app.RequestContext) {
	var body hintRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	record, err := h.HintsUC.Save(c, hints.Request{
		ID:       body.ID,
		Title:    body.Title,
		Body:     body.Body,
		Category: body.Category,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, record)
}

func (h Handler) getHint(c context.Context, ctx *app.RequestContext) {
	record, err := h.HintsUC.Get(c, string(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

func (h Handler) listHints(c context.Context, ctx *app.RequestContext) {
	resp, err := h.HintsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteHint(c context.Context, ctx *app.RequestContext) {
	if err := h.HintsUC.Delete(c, string(ctx.Param("id"))); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

type noteRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

func (h Handler) saveNote(c context.Context, ctx *app.RequestContext) {
	var body noteRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	record, err := h.NotesUC.Save(c, notes.Request{
		ID:    body.ID,
		Title: body.Title,
		Body:  body.Body,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, record)
}

func (h Handler) getNote(c context.Context, ctx *app.RequestContext) {
	record, err := h.NotesUC.Get(c, string(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

func (h Handler) listNotes(c context.Context, ctx *app.RequestContext) {
	resp, err := h.NotesUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteNote(c context.Context, ctx *app.RequestContext) {
	if err := h.NotesUC.Delete(c, string(ctx.Param("id"))); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

type overrideRequest struct {
	RecipeID    string                 `json:"recipe_id"`
	Name        *string                `json:"name,omitempty"`
	Quantity    *int                   `json:"quantity,omitempty"`
	TimeSeconds *float64               `json:"time_seconds,omitempty"`
	Inputs      []overrides.InputPatch `json:"inputs,omitempty"`
}

func (h Handler) overrideRecipe(c context.Context, ctx *app.RequestContext) {
	var body overrideRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.OverridesUC.Execute(c, overrides.Request{
		RecipeID:    body.RecipeID,
		Name:        body.Name,
		Quantity:    body.Quantity,
		TimeSeconds: body.TimeSeconds,
		Inputs:      body.Inputs,
		HasInputs:   hasJSONField(ctx.Request.Body(), "inputs"),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func hasJSONField(body []byte, key string) bool {
	if len(body) == 0 {
		return false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func writeError(ctx *app.RequestContext, err error) {
	var missing *planning.MissingRecipeError
	var unknown *planning.UnknownRecipeError
	switch {
	case errors.As(err, &missing):
		writeErrorBody(ctx, consts.StatusNotFound, "no_recipe", err.Error())
	case errors.As(err, &unknown):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_recipe", err.Error())
	case errors.Is(err, overrides.ErrMalformedOverride):
		writeErrorBody(ctx, consts.StatusBadRequest, "malformed_override", err.Error())
	case errors.Is(err, portals.ErrBadAddress):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_address", err.Error())
	case errors.Is(err, plans.ErrInvalidRequest),
		errors.Is(err, layouts.ErrInvalidRequest),
		errors.Is(err, notes.ErrInvalidRequest),
		errors.Is(err, hints.ErrInvalidRequest),
		errors.Is(err, portals.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
