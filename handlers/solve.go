// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/doubt-solver/explain"
	"github.com/danielhkuo/doubt-solver/middleware"
	"github.com/danielhkuo/doubt-solver/models"
)

type SolveHandler struct {
	svc *explain.Service
}

func NewSolveHandler(svc *explain.Service) *SolveHandler {
	return &SolveHandler{svc: svc}
}

// SolveDoubt handles POST /functions/v1/solve-doubt
// Other methods get a JSON 405.
func (h *SolveHandler) SolveDoubt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.SolveDoubtRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// malformed bodies are processing failures, not missing fields
		slog.Warn("invalid solve-doubt body", "error", err)
		middleware.ErrorDetailsResponse(w, http.StatusInternalServerError, "Failed to process doubt", err.Error())
		return
	}

	out, err := h.svc.Explain(r.Context(), req.Question, req.Subject)
	if errors.Is(err, explain.ErrMissingField) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Question is required")
		return
	}
	if err != nil {
		slog.Error("failed to solve doubt", "error", err)
		middleware.ErrorDetailsResponse(w, http.StatusInternalServerError, "Failed to process doubt", err.Error())
		return
	}

	slog.Info("doubt solved",
		"subject", models.SubjectOrDefault(req.Subject),
		"demo", h.svc.Degraded(),
	)

	middleware.JSONResponse(w, http.StatusOK, out)
}
