// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/doubt-solver/app"
	"github.com/danielhkuo/doubt-solver/middleware"
	"github.com/danielhkuo/doubt-solver/models"
	"github.com/danielhkuo/doubt-solver/speech"
	"github.com/danielhkuo/doubt-solver/store"
	"github.com/danielhkuo/doubt-solver/views"
)

const maxClipBytes = 10 * 1024 * 1024

// ClipSink accepts uploaded recordings.
type ClipSink interface {
	Push(clip []byte) error
}

type PageHandler struct {
	app   *app.App
	store store.Gateway
	clips ClipSink
}

// NewPageHandler creates the page handler. clips may be nil when recordings
// are not uploaded over HTTP.
func NewPageHandler(a *app.App, gateway store.Gateway, clips ClipSink) *PageHandler {
	return &PageHandler{app: a, store: gateway, clips: clips}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	view := h.app.View()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.Render(w, views.Page{View: view, ClipUpload: h.clips != nil}); err != nil {
		slog.Error("failed to render page", "error", err)
		return
	}

	// the alert is shown once
	if view.Alert != "" {
		h.app.DismissAlert()
	}
}

// Ask handles POST /ask
func (h *PageHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	err := h.app.Submit(r.Context(), r.PostFormValue("question"), r.PostFormValue("subject"))
	switch {
	case errors.Is(err, app.ErrEmptyQuestion):
		slog.Debug("ignored empty question")
	case errors.Is(err, app.ErrBusy):
		slog.Warn("question submitted while another is in flight")
	case err != nil:
		slog.Error("failed to solve doubt", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ToggleHistory handles POST /history/toggle
func (h *PageHandler) ToggleHistory(w http.ResponseWriter, r *http.Request) {
	h.app.ToggleHistory()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ToggleVoice handles POST /voice/toggle
func (h *PageHandler) ToggleVoice(w http.ResponseWriter, r *http.Request) {
	if err := h.app.ToggleVoice(); err != nil {
		slog.Warn("voice toggle failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UploadClip handles POST /voice/clip
// Accepts a multipart form with a "clip" file (redirects back to the page)
// or a raw audio body (answers 202 with JSON).
func (h *PageHandler) UploadClip(w http.ResponseWriter, r *http.Request) {
	if h.clips == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voice upload not enabled")
		return
	}

	form := strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
	clip, err := readClip(w, r, form)
	if err != nil {
		slog.Warn("failed to read clip", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid audio")
		return
	}

	if err := h.clips.Push(clip); err != nil {
		if errors.Is(err, speech.ErrEmptyClip) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Empty audio")
			return
		}
		slog.Warn("clip rejected", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Queue full, try again")
		return
	}

	if err := h.app.StartVoice(); err != nil {
		slog.Warn("voice capture not started", "error", err)
	}

	slog.Info("received audio clip", "bytes", len(clip))

	if form {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	middleware.JSONResponse(w, http.StatusAccepted, map[string]any{
		"status": "received",
		"bytes":  len(clip),
	})
}

func readClip(w http.ResponseWriter, r *http.Request, form bool) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxClipBytes)
	defer r.Body.Close()

	if !form {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(maxClipBytes); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("clip")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// ListDoubts handles GET /api/doubts
// Optional ?limit=N (default 10)
func (h *PageHandler) ListDoubts(w http.ResponseWriter, r *http.Request) {
	limit := models.HistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid limit %q", s))
			return
		}
		limit = n
	}

	records, err := h.store.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list doubts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load doubts")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}
