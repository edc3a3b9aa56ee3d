package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends selectable with -t / DATABASE_TYPE.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageREST     = "rest"
)

// Voice sources selectable with -voice / VOICE_SOURCE.
const (
	VoiceNone       = "none"
	VoiceMicrophone = "microphone"
	VoiceUpload     = "upload"
)

type Config struct {
	Port         int
	DatabaseType string
	DatabaseURL  string

	// Hosted backend
	SupabaseURL  string
	AnonKey      string
	FunctionsURL string

	// Upstream model
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string

	// Speech
	VoiceSource string
	Language    string

	LogLevel  string
	LogFormat string
	EnvFile   string
}

// Degraded reports whether no upstream credential is configured.
func (c Config) Degraded() bool {
	return c.OpenAIKey == ""
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("doubt-solver", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or rest)")
	fs.StringVar(&cfg.SupabaseURL, "supabase-url", "", "Hosted project URL")
	fs.StringVar(&cfg.FunctionsURL, "functions-url", "", "Explanation function base URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AnonKey, "anon-key", "", "Hosted project anon key (prefer env)")
	fs.StringVar(&cfg.OpenAIKey, "openai-key", "", "OpenAI API key (prefer env)")

	fs.StringVar(&cfg.OpenAIBaseURL, "openai-base-url", "", "OpenAI-compatible API base URL")
	fs.StringVar(&cfg.Model, "model", "", "Completion model")
	fs.StringVar(&cfg.VoiceSource, "voice", "", "Voice source (none, microphone or upload)")
	fs.StringVar(&cfg.Language, "lang", "", "Speech language")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Environment file to load")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Load the env file without overriding variables that are already set
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", StorageSQLite)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.SupabaseURL == "" {
		cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
	}
	cfg.SupabaseURL = strings.TrimRight(cfg.SupabaseURL, "/")
	if cfg.AnonKey == "" {
		cfg.AnonKey = os.Getenv("SUPABASE_ANON_KEY")
	}

	switch cfg.DatabaseType {
	case StoragePostgres, StorageSQLite:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case StorageREST:
		if cfg.SupabaseURL == "" {
			return Config{}, errors.New("SUPABASE_URL required for rest storage")
		}
		if cfg.AnonKey == "" {
			return Config{}, errors.New("SUPABASE_ANON_KEY required for rest storage")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.FunctionsURL == "" {
		cfg.FunctionsURL = os.Getenv("FUNCTIONS_URL")
	}
	if cfg.FunctionsURL == "" {
		if cfg.SupabaseURL != "" {
			cfg.FunctionsURL = cfg.SupabaseURL + "/functions/v1"
		} else {
			cfg.FunctionsURL = fmt.Sprintf("http://localhost:%d/functions/v1", cfg.Port)
		}
	}
	cfg.FunctionsURL = strings.TrimRight(cfg.FunctionsURL, "/")

	// Missing key is not an error: the explanation function runs in demo mode
	if cfg.OpenAIKey == "" {
		cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = envOr("OPENAI_BASE_URL", "https://api.openai.com/v1")
	}
	if cfg.Model == "" {
		cfg.Model = envOr("OPENAI_MODEL", "gpt-4o-mini")
	}

	if cfg.VoiceSource == "" {
		cfg.VoiceSource = envOr("VOICE_SOURCE", VoiceNone)
	}
	switch cfg.VoiceSource {
	case VoiceNone, VoiceMicrophone, VoiceUpload:
	default:
		return Config{}, fmt.Errorf("unsupported voice source %q", cfg.VoiceSource)
	}
	if cfg.Language == "" {
		cfg.Language = envOr("SPEECH_LANGUAGE", "en")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "text")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
