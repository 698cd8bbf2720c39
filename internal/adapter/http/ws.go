package httpadapter

import (
	"context"
	"errors"
	"log"

	"craftatlas/internal/app/layouts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/websocket"
)

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(ctx *app.RequestContext) bool { return true },
}

type wsProgressEvent struct {
	Type      string `json:"type"`
	Iteration int    `json:"iteration"`
	Score     int    `json:"score"`
}

type wsResultEvent struct {
	Type string `json:"type"`
	layouts.OptimizeResponse
}

type wsErrorEvent struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// optimizeLayoutWS runs the optimizer over a websocket: the client sends one
// optimize request, the server streams a progress event per improvement and
// closes after the final result.
func (h Handler) optimizeLayoutWS(c context.Context, ctx *app.RequestContext) {
	err := upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		defer conn.Close()

		var body optimizeRequest
		if err := conn.ReadJSON(&body); err != nil {
			_ = conn.WriteJSON(wsErrorEvent{Type: "error", Code: "invalid_json", Message: "invalid json"})
			return
		}

		resp, err := h.LayoutsUC.Optimize(c, layouts.OptimizeRequest{
			Grid:       body.Grid,
			Bench:      body.Bench,
			Iterations: body.Iterations,
			OnImprove: func(iteration, score int) {
				_ = conn.WriteJSON(wsProgressEvent{Type: "progress", Iteration: iteration, Score: score})
			},
		})
		if err != nil {
			code := "internal_error"
			if errors.Is(err, layouts.ErrInvalidRequest) {
				code = "bad_request"
			}
			_ = conn.WriteJSON(wsErrorEvent{Type: "error", Code: code, Message: err.Error()})
			return
		}

		_ = conn.WriteJSON(wsResultEvent{Type: "result", OptimizeResponse: resp})
	})
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
	}
}
