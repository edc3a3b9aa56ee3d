// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the AI Doubt Solver server.

A student types or speaks a question and a subject. The server asks a
language model for a short explanation and a worked example, shows the
answer, and keeps a history of the most recent questions.

# Starting the Server

With no API key the explanation function runs in demo mode:

	go run . -t sqlite -d doubts.db

With an upstream model and PostgreSQL:

	OPENAI_API_KEY=sk-... DATABASE_URL=postgres://... go run .

Or against a hosted project over PostgREST:

	go run . -t rest -supabase-url https://xyz.supabase.co -anon-key ...

# Configuration

Settings come from flags, then the environment, then the -env-file
(default .env):

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres, sqlite or rest
  - DATABASE_URL (-d): connection string for postgres or sqlite
  - SUPABASE_URL, SUPABASE_ANON_KEY: required for rest storage
  - FUNCTIONS_URL: where the page calls the explanation function
  - OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL: upstream model
  - VOICE_SOURCE (-voice): none, microphone or upload
  - SPEECH_LANGUAGE (-lang): transcription language (default: en)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

Microphone capture needs the portaudio build tag:

	go build -tags portaudio

# Architecture

  - explain: prompt building, demo mode and the upstream call
  - llm: OpenAI-compatible chat and transcription client
  - client: caller of the explanation function
  - store: record gateway over SQL or PostgREST
  - speech: recognizer sessions and audio sources
  - app: page state
  - views: HTML templates
  - handlers, router, middleware: HTTP surface
  - cliparse, db, models: configuration, schema and shared types

See package documentation for each component.
*/
package main
