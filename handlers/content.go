// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/databiz/db"
	"github.com/danielhkuo/databiz/middleware"
)

type ContentHandler struct {
	repo db.ContentRepository
}

func NewContentHandler(repo db.ContentRepository) *ContentHandler {
	return &ContentHandler{repo: repo}
}

// ListMagazines handles GET /api/magazines
// Newest issue date first
func (h *ContentHandler) ListMagazines(w http.ResponseWriter, r *http.Request) {
	magazines, err := h.repo.ListMagazines(r.Context())
	if err != nil {
		slog.Error("failed to list magazines", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, magazines)
}

// ListPodcasts handles GET /api/podcasts
// Newest episode date first
func (h *ContentHandler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := h.repo.ListPodcasts(r.Context())
	if err != nil {
		slog.Error("failed to list podcasts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, podcasts)
}

// ListEvents handles GET /api/events
// Oldest created first
func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.ListEvents(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// ListTestimonials handles GET /api/testimonials
// Newest created first
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.repo.ListTestimonials(r.Context())
	if err != nil {
		slog.Error("failed to list testimonials", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, testimonials)
}
