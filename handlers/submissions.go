// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/databiz/db"
	"github.com/danielhkuo/databiz/middleware"
	"github.com/danielhkuo/databiz/models"
)

// Messages returned with HTTP 400 when required fields are missing
const (
	msgJoinRequired    = "name and email required"
	msgContactRequired = "email and message required"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type SubmissionHandler struct {
	repo db.SubmissionRepository
}

func NewSubmissionHandler(repo db.SubmissionRepository) *SubmissionHandler {
	return &SubmissionHandler{repo: repo}
}

// SubmitJoin handles POST /api/join
func (h *SubmissionHandler) SubmitJoin(w http.ResponseWriter, r *http.Request) {
	if !middleware.RequirePOST(w, r) {
		return
	}

	var req models.JoinRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgJoinRequired)
		return
	}

	h.persist(w, r, &models.Submission{
		Type:    models.SubmissionJoin,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
}

// SubmitContact handles POST /api/contact
func (h *SubmissionHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if !middleware.RequirePOST(w, r) {
		return
	}

	var req models.ContactRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgContactRequired)
		return
	}

	h.persist(w, r, &models.Submission{
		Type:    models.SubmissionContact,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
}

func (h *SubmissionHandler) persist(w http.ResponseWriter, r *http.Request, sub *models.Submission) {
	err := h.repo.CreateSubmission(r.Context(), sub)

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
		return
	}
	if err != nil {
		slog.Error("failed to insert submission", "type", sub.Type, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("submission received", "type", sub.Type, "id", sub.ID, "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
