// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the doubt solver.

# Route Registration

NewRouter creates a configured http.ServeMux from prebuilt handlers:

	mux := router.NewRouter(router.Deps{
		Solve: handlers.NewSolveHandler(svc),
		Pages: handlers.NewPageHandler(a, gateway, clips),
	})

A nil Pages mounts only health and the explanation function.

# Endpoints

Health:

	GET /health

Explanation function (CORS, any origin):

	POST    /functions/v1/solve-doubt
	OPTIONS /functions/v1/solve-doubt[/...] - Preflight, empty 200

Other methods answer a JSON 405 and unknown sub-paths a JSON 404, both
with the CORS headers.

Page:

	GET  /               - Rendered page
	POST /ask            - Submit a question
	POST /history/toggle - Show or hide history
	POST /voice/toggle   - Start or stop listening
	POST /voice/clip     - Upload a recording

Records:

	GET /api/doubts - Most recent records, newest first
*/
package router
