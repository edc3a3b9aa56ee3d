// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client calls the explanation function.

	c := client.New(cfg.FunctionsURL, cfg.AnonKey, nil)
	answer, err := c.Solve(ctx, "What is gravity?", "Physics")
	if errors.Is(err, client.ErrRequestFailed) {
		// show the generic failure alert
	}

Solve posts {"question", "subject"} to <base>/solve-doubt with the anon key
as a bearer token. Transport errors, non-2xx statuses and replies without an
explanation all wrap ErrRequestFailed. There is no retry and no timeout
beyond the caller's context.
*/
package client
