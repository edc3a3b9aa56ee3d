// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package llm wraps an OpenAI-compatible API with go-openai.

# Completion

Complete sends the prompt as one user message after the configured system
message, asks for a JSON object response and parses it:

	c, err := llm.NewClient(llm.Config{
		BaseURL:       cfg.OpenAIBaseURL,
		APIKey:        cfg.OpenAIKey,
		Model:         cfg.Model,
		SystemMessage: explain.SystemInstruction,
	})
	answer, err := c.Complete(ctx, prompt)

Markdown code fences around the JSON are tolerated. A reply without an
explanation field is an ErrorTypeResponse error.

# Transcription

Transcribe uploads one WAV utterance to whisper-1 and returns the trimmed
text.

# Errors

Every failure is an *Error carrying a type, the HTTP status when known and a
retryable hint. Use errors.As to inspect it.
*/
package llm
