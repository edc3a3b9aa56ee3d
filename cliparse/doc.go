// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Before reading the environment it loads the -env-file (default .env) with
godotenv. Variables already set in the process are never overridden, and a
missing file is not an error.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or rest (default: sqlite)
  - DatabaseURL: SQL connection string (required for sqlite and postgres)
  - SupabaseURL, AnonKey: hosted project (required for rest)
  - FunctionsURL: base URL of the explanation function
  - OpenAIKey: upstream key; empty means demo mode
  - OpenAIBaseURL, Model: upstream endpoint and model (default: gpt-4o-mini)
  - VoiceSource: none, microphone or upload (default: none)
  - Language: speech language (default: en)
  - LogLevel, LogFormat: slog settings (default: info, text)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_TYPE     → -t
	DATABASE_URL      → -d
	SUPABASE_URL      → -supabase-url
	SUPABASE_ANON_KEY → -anon-key
	FUNCTIONS_URL     → -functions-url
	OPENAI_API_KEY    → -openai-key
	OPENAI_BASE_URL   → -openai-base-url
	OPENAI_MODEL      → -model
	VOICE_SOURCE      → -voice
	SPEECH_LANGUAGE   → -lang
	LOG_LEVEL         → -log-level
	LOG_FORMAT        → -log-format

CLI flags take precedence over environment variables.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Degraded() {
		slog.Warn("no OpenAI key, serving demo explanations")
	}
*/
package cliparse
