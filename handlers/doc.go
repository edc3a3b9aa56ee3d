// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the doubt solver.

# Handler Types

  - SolveHandler: the stateless explanation function
  - PageHandler: the rendered page, its form actions and the record listing

	solveHandler := handlers.NewSolveHandler(explain.NewService(completer))
	pageHandler := handlers.NewPageHandler(a, gateway, clips)

# Explanation Function

	POST /functions/v1/solve-doubt → SolveDoubt

The body is {"question", "subject"}. A blank question answers 400 with
{"error": "Question is required"}. Any other failure answers 500 with
{"error": "Failed to process doubt", "details": "..."}. Success returns
{"explanation", "example"} as produced upstream, or the canned demo pair
when no API key is configured.

# Page

	GET  /               → Index
	POST /ask            → Ask (solve, save, redirect)
	POST /history/toggle → ToggleHistory
	POST /voice/toggle   → ToggleVoice
	POST /voice/clip     → UploadClip (only with upload voice source)
	GET  /api/doubts     → ListDoubts (?limit=N, default 10)

Form actions always redirect back to / with 303 See Other; their outcome
is visible in the next render.
*/
package handlers
