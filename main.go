package main

import (
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/processmind/process-mind/assistant"
	"github.com/processmind/process-mind/cliparse"
	"github.com/processmind/process-mind/router"
	"github.com/processmind/process-mind/seed"
	"github.com/processmind/process-mind/store"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	})))

	// .env is optional; env vars may come from the environment itself
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the store (creates schema if absent)
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Database schema ready", "path", cfg.DatabasePath)

	// One-time synthetic bootstrap; no-op on a populated store
	randomSeed := cfg.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	if err := seed.Run(st, rand.New(rand.NewSource(randomSeed))); err != nil {
		slog.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	if !cfg.RemoteEnabled() {
		slog.Warn("OPENAI_API_KEY not set; assistant will answer local-only")
	}
	asst := assistant.New(st, cfg, slog.Default())

	// Create server
	server := http.Server{
		Handler: router.New(st, asst),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
