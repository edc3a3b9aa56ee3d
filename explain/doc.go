// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package explain turns a question into a simplified explanation and example.

# Modes

	svc := explain.NewService(completer) // upstream mode
	svc := explain.NewService(nil)       // demo mode

In demo mode Explain never fails for a non-blank question and returns
DemoExplanation, whose text contains the question verbatim.

# Errors

  - ErrMissingField: blank question (HTTP 400)
  - ErrUpstream: completion failed or returned an unusable reply (HTTP 500)

Nothing is retried.
*/
package explain
