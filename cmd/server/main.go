package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amprasad/studyplanner/internal/api"
	"github.com/amprasad/studyplanner/internal/config"
	"github.com/amprasad/studyplanner/internal/embed"
	"github.com/amprasad/studyplanner/internal/parser"
	"github.com/amprasad/studyplanner/internal/pipeline"
	"github.com/amprasad/studyplanner/internal/planner"
	"github.com/amprasad/studyplanner/internal/vectorstore"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars take precedence.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional heading vector index.
	var index *vectorstore.PostgresIndex
	var headingIndex planner.HeadingIndex
	var embedder *embed.OllamaEmbedder
	if cfg.DatabaseURL != "" {
		embedder = embed.NewOllamaEmbedder(cfg.EmbeddingURL, cfg.EmbeddingModel)
		var err error
		index, err = vectorstore.NewPostgresIndex(ctx, cfg.DatabaseURL, embedder, cfg.EmbeddingDim)
		if err != nil {
			log.Error("vector index unavailable", "error", err)
			os.Exit(1)
		}
		if err := index.Init(ctx); err != nil {
			log.Error("vector index init failed", "error", err)
			os.Exit(1)
		}
		headingIndex = index
		log.Info("heading vector index enabled")
	}

	p := planner.New(cfg.TopKTerms, headingIndex, log)
	p.ParserOpts = parser.Options{
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
		HeadingMinFontSize:   cfg.HeadingMinFontSize,
	}

	orch := pipeline.NewOrchestrator(cfg, p, log)
	orch.Start(ctx)

	srv := api.NewServer(p, orch, index, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if embedder != nil {
			embedder.Close()
		}
		if index != nil {
			index.Close()
		}
	}()

	log.Info("starting studyplanner", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
