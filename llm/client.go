// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/danielhkuo/doubt-solver/models"
)

const defaultTemperature = 0.7

// Client talks to an OpenAI-compatible API for completions and speech
// transcription.
type Client struct {
	client        *openai.Client
	model         string
	systemMessage string
	temperature   float32
	language      string
}

// Config holds configuration for creating a Client.
type Config struct {
	BaseURL       string // e.g. "https://api.openai.com/v1"
	APIKey        string
	Model         string // e.g. "gpt-4o-mini"
	SystemMessage string
	Temperature   float32 // 0 means the default of 0.7
	Language      string  // transcription language, e.g. "en"
}

// NewClient creates a Client. The key is required; callers without one run
// in demo mode and never construct a Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	return &Client{
		client:        openai.NewClientWithConfig(clientConfig),
		model:         cfg.Model,
		systemMessage: cfg.SystemMessage,
		temperature:   temperature,
		language:      cfg.Language,
	}, nil
}

// Complete sends one non-streaming chat completion in JSON mode and parses
// the reply into an explanation and example.
func (c *Client) Complete(ctx context.Context, prompt string) (models.Explanation, error) {
	var messages []openai.ChatCompletionMessage
	if c.systemMessage != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.systemMessage,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	slog.Debug("llm request", "model", c.model, "prompt_len", len(prompt))
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		classified := ClassifyError(err)
		classified.Model = c.model
		slog.Error("llm request failed",
			"model", c.model,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", classified,
		)
		return models.Explanation{}, classified
	}

	if len(resp.Choices) == 0 {
		return models.Explanation{}, &Error{Type: ErrorTypeResponse, Message: "no choices in response", Model: c.model}
	}

	out, err := ParseExplanation(resp.Choices[0].Message.Content)
	if err != nil {
		return models.Explanation{}, &Error{Type: ErrorTypeResponse, Message: "unparseable completion", Cause: err, Model: c.model}
	}

	slog.Info("llm request completed",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return out, nil
}

// Transcribe converts one WAV utterance to text with whisper-1.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("empty audio")
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "utterance.wav",
		Reader:   bytes.NewReader(audio),
		Language: c.language,
	})
	if err != nil {
		return "", ClassifyError(err)
	}

	text := strings.TrimSpace(resp.Text)
	slog.Debug("transcription completed", "chars", len(text))
	return text, nil
}
