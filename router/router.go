// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/doubt-solver/handlers"
	"github.com/danielhkuo/doubt-solver/middleware"
)

// Deps are the handlers mounted by NewRouter. Pages may be nil to serve only
// the explanation function.
type Deps struct {
	Solve *handlers.SolveHandler
	Pages *handlers.PageHandler
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Explanation function. Every method and sub-path goes through CORS so
	// browser callers can read errors and preflight anywhere under it.
	mux.Handle("/functions/v1/solve-doubt", middleware.CORS(middleware.WithLogging(deps.Solve.SolveDoubt)))
	mux.Handle("/functions/v1/solve-doubt/", middleware.CORS(middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	})))

	if deps.Pages == nil {
		return mux
	}
	pages := deps.Pages

	// Presentation
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pages.Index))
	mux.HandleFunc("POST /ask", middleware.WithLogging(pages.Ask))
	mux.HandleFunc("POST /history/toggle", middleware.WithLogging(pages.ToggleHistory))
	mux.HandleFunc("POST /voice/toggle", middleware.WithLogging(pages.ToggleVoice))
	mux.HandleFunc("POST /voice/clip", middleware.WithLogging(pages.UploadClip))

	// Record store
	mux.HandleFunc("GET /api/doubts", middleware.WithLogging(pages.ListDoubts))

	return mux
}
