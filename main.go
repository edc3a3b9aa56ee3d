package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/doubt-solver/app"
	"github.com/danielhkuo/doubt-solver/client"
	"github.com/danielhkuo/doubt-solver/cliparse"
	"github.com/danielhkuo/doubt-solver/db"
	"github.com/danielhkuo/doubt-solver/explain"
	"github.com/danielhkuo/doubt-solver/handlers"
	"github.com/danielhkuo/doubt-solver/llm"
	"github.com/danielhkuo/doubt-solver/router"
	"github.com/danielhkuo/doubt-solver/speech"
	"github.com/danielhkuo/doubt-solver/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(setupLogger(cfg.LogLevel, cfg.LogFormat))

	// Record store
	var gateway store.Gateway
	if cfg.DatabaseType == cliparse.StorageREST {
		gateway = store.NewRESTStore(cfg.SupabaseURL, cfg.AnonKey, nil)
		slog.Info("Using PostgREST storage", "url", cfg.SupabaseURL)
	} else {
		driver, err := db.DriverName(cfg.DatabaseType)
		if err != nil {
			slog.Error("unsupported database", "error", err)
			os.Exit(1)
		}

		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		gateway, err = store.NewSQLStore(dbConn, cfg.DatabaseType)
		if err != nil {
			slog.Error("store setup failed", "error", err)
			os.Exit(1)
		}
	}

	// Upstream model, absent in demo mode
	var completer explain.Completer
	var transcriber speech.Transcriber
	if !cfg.Degraded() {
		llmClient, err := llm.NewClient(llm.Config{
			BaseURL:       cfg.OpenAIBaseURL,
			APIKey:        cfg.OpenAIKey,
			Model:         cfg.Model,
			SystemMessage: explain.SystemInstruction,
			Language:      cfg.Language,
		})
		if err != nil {
			slog.Error("llm client setup failed", "error", err)
			os.Exit(1)
		}
		completer = llmClient
		transcriber = llmClient
		slog.Info("Using upstream model", "model", cfg.Model, "base_url", cfg.OpenAIBaseURL)
	} else {
		slog.Warn("No API key configured, answering with demo explanations")
	}
	svc := explain.NewService(completer)

	// Page state
	a := app.New(client.New(cfg.FunctionsURL, cfg.AnonKey, nil), gateway)

	var clips handlers.ClipSink
	var rec *speech.Recognizer
	switch cfg.VoiceSource {
	case cliparse.VoiceMicrophone:
		rec = speech.New(speech.NewMicrophoneListener(speech.DefaultSampleRate), transcriber, a.SetTranscript)
	case cliparse.VoiceUpload:
		queue := speech.NewQueueListener(4)
		clips = queue
		rec = speech.New(queue, transcriber, a.SetTranscript)
	}
	if rec.Supported() {
		a.SetVoice(rec)
		slog.Info("Voice input enabled", "source", cfg.VoiceSource)
	} else if cfg.VoiceSource != cliparse.VoiceNone {
		slog.Warn("Voice input not supported", "source", cfg.VoiceSource)
		clips = nil
	}

	a.Load(context.Background())

	// Create router
	mux := router.NewRouter(router.Deps{
		Solve: handlers.NewSolveHandler(svc),
		Pages: handlers.NewPageHandler(a, gateway, clips),
	})

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		if rec != nil {
			rec.Close()
		}
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "functions_url", cfg.FunctionsURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func setupLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
