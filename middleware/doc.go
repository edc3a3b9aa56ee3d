// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms).

# CORS Middleware

The explanation function accepts requests from any origin:

	mux.Handle("/functions/v1/solve-doubt", middleware.CORS(handler))

Every response carries Access-Control-Allow-Origin "*", methods
GET, POST, PUT, DELETE, OPTIONS and headers Content-Type, Authorization,
X-Client-Info, Apikey. OPTIONS requests are answered with an empty 200.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Question is required")
	middleware.ErrorDetailsResponse(w, http.StatusInternalServerError, "Failed to process doubt", err.Error())

Parse JSON request bodies:

	var req models.SolveDoubtRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// ...
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
