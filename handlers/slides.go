// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sse"

	"github.com/danielhkuo/databiz/middleware"
	"github.com/danielhkuo/databiz/models"
	"github.com/danielhkuo/databiz/slides"
)

type SlideHandler struct {
	ticker *slides.Ticker
}

func NewSlideHandler(ticker *slides.Ticker) *SlideHandler {
	return &SlideHandler{ticker: ticker}
}

// Stream handles GET /api/slides/stream
// Sends one event with the current order, then ends the response.
// Later rotations are not pushed; clients reconnect to refresh.
func (h *SlideHandler) Stream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	err := sse.Encode(w, sse.Event{
		Data: models.SlidesResponse{Slides: h.ticker.Snapshot()},
	})
	if err != nil {
		// Headers are already out; nothing useful left to tell the client
		slog.Error("failed to write slide event", "error", err)
		return
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Rotate handles POST /api/slides/rotate
// Moves the first slide to the end. Open to any caller.
func (h *SlideHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	if !middleware.RequirePOST(w, r) {
		return
	}

	order := h.ticker.Rotate()

	slog.Info("slides rotated", "first", firstID(order))

	middleware.JSONResponse(w, http.StatusOK, models.RotateSlidesResponse{
		OK:     true,
		Slides: order,
	})
}

func firstID(s []models.Slide) string {
	if len(s) == 0 {
		return ""
	}
	return s[0].ID
}
