// Package vectorstore persists heading embeddings in Postgres with
// pgvector. Storage here is a side channel: schedule generation never
// depends on it succeeding.
package vectorstore

import (
	"context"
	"fmt"

	"github.com/amprasad/studyplanner/internal/embed"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// HeadingRecord is one stored heading with its similarity to a query.
type HeadingRecord struct {
	ID       uuid.UUID `json:"id"`
	Source   string    `json:"source"`
	Heading  string    `json:"heading"`
	Distance float64   `json:"distance,omitempty"`
}

// PostgresIndex stores one embedding per (source document, heading) pair.
type PostgresIndex struct {
	pool     *pgxpool.Pool
	embedder embed.Embedder
	dim      int
}

func NewPostgresIndex(ctx context.Context, connStr string, embedder embed.Embedder, dim int) (*PostgresIndex, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if dim <= 0 {
		dim = 768
	}
	return &PostgresIndex{pool: pool, embedder: embedder, dim: dim}, nil
}

// Init creates the vector extension and headings table if missing.
func (s *PostgresIndex) Init(ctx context.Context) error {
	query := fmt.Sprintf(`
	CREATE EXTENSION IF NOT EXISTS vector;

	CREATE TABLE IF NOT EXISTS headings (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		heading TEXT NOT NULL,
		embedding vector(%d),
		UNIQUE (source, heading)
	);
	`, s.dim)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create headings table: %w", err)
	}
	return nil
}

// UpsertHeadings embeds and stores one record per heading for a source
// document. Headings that embed to an empty or all-zero vector are skipped.
func (s *PostgresIndex) UpsertHeadings(ctx context.Context, source string, headings []string) error {
	query := `
	INSERT INTO headings (id, source, heading, embedding)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (source, heading) DO UPDATE SET embedding = EXCLUDED.embedding
	`
	for _, h := range headings {
		vec, err := s.embedder.Embed(ctx, h)
		if err != nil {
			return fmt.Errorf("embed heading %q: %w", h, err)
		}
		if len(vec) == 0 || allZero(vec) {
			continue
		}
		if _, err := s.pool.Exec(ctx, query, uuid.New(), source, h, pgvector.NewVector(vec)); err != nil {
			return fmt.Errorf("upsert heading %q: %w", h, err)
		}
	}
	return nil
}

// Search embeds the query text and returns the limit most similar headings.
func (s *PostgresIndex) Search(ctx context.Context, queryText string, limit int) ([]HeadingRecord, error) {
	vec, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vec) == 0 {
		return nil, fmt.Errorf("empty query embedding")
	}
	if limit <= 0 {
		limit = 5
	}

	query := `
	SELECT id, source, heading, embedding <=> $1 AS distance
	FROM headings
	WHERE embedding IS NOT NULL
	ORDER BY embedding <=> $1
	LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(vec), limit)
	if err != nil {
		return nil, fmt.Errorf("search headings: %w", err)
	}
	defer rows.Close()

	var records []HeadingRecord
	for rows.Next() {
		var rec HeadingRecord
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Heading, &rec.Distance); err != nil {
			return nil, fmt.Errorf("scan heading: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the connection pool.
func (s *PostgresIndex) Close() {
	s.pool.Close()
}

func allZero(vec []float32) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
