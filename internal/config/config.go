package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth (optional; empty disables the auth middleware)
	APIKey string

	// Vector index side channel (optional; empty disables it)
	DatabaseURL    string
	EmbeddingURL   string
	EmbeddingModel string
	EmbeddingDim   int

	// Worker pool for batch processing
	WorkerCount  int
	MaxQueueSize int
	JobTTL       time.Duration

	// Upload limits
	MaxUploadBytes int64

	// Pipeline defaults
	TopKTerms         int
	DefaultDailyHours float64
	DefaultDays       int

	// PDF
	PDFFallbackPdftotext bool
	HeadingMinFontSize   float64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("API_KEY"),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		EmbeddingURL:   envOr("EMBEDDING_URL", "http://localhost:11434"),
		EmbeddingModel: envOr("EMBEDDING_MODEL", "nomic-embed-text"),
		EmbeddingDim:   envInt("EMBEDDING_DIM", 768),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),
		JobTTL:       envDuration("JOB_TTL", 1*time.Hour),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		TopKTerms:         envInt("TOP_K_TERMS", 40),
		DefaultDailyHours: envFloat("DEFAULT_DAILY_HOURS", 3),
		DefaultDays:       envInt("DEFAULT_DAYS", 7),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
		HeadingMinFontSize:   envFloat("HEADING_MIN_FONT_SIZE", 12),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.TopKTerms <= 0 {
		cfg.TopKTerms = 40
	}
	if cfg.DefaultDailyHours <= 0 {
		cfg.DefaultDailyHours = 3
	}
	if cfg.DefaultDays <= 0 {
		cfg.DefaultDays = 7
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DatabaseURL != "" && c.EmbeddingURL == "" {
		return fmt.Errorf("EMBEDDING_URL is required when DATABASE_URL is set")
	}
	if c.EmbeddingDim <= 0 {
		return fmt.Errorf("EMBEDDING_DIM must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
