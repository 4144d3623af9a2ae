// Package vectorstore provides read-only similarity search over the
// pgvector-backed campaign knowledge base.
//
// The table is written by the offline ingestion job, which attaches
// source (bare filename) and category (filename without extension) metadata
// to every chunk:
//
//	CREATE TABLE campaign_documents (
//	    id        bigserial PRIMARY KEY,
//	    content   text NOT NULL,
//	    source    text NOT NULL,
//	    category  text NOT NULL,
//	    embedding vector(768) NOT NULL
//	);
//
// Category values must match persona policy filter values exactly; that is the
// fixed contract between ingestion and retrieval.
package vectorstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

// Candidate is a raw search hit, before diversity re-ranking. The embedding is
// returned alongside the content so the retriever can run maximal marginal
// relevance without re-embedding anything.
type Candidate struct {
	Content    string
	Source     string
	Category   string
	Embedding  []float32
	Similarity float64
}

// Store wraps a PostgreSQL connection pool for vector search
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and registers the
// pgvector type codecs on every connection.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Search returns up to limit candidates ranked by cosine similarity to the
// query embedding. When categories is non-empty, only documents whose category
// is in the set are eligible. An empty result is not an error.
func (s *Store) Search(ctx context.Context, embedding []float32, limit int, categories []string) ([]Candidate, error) {
	queryVec := pgvector.NewVector(embedding)

	var rows pgx.Rows
	var err error
	if len(categories) > 0 {
		rows, err = s.pool.Query(ctx,
			`SELECT content, source, category, embedding, 1 - (embedding <=> $1) AS similarity
			 FROM campaign_documents
			 WHERE category = ANY($2)
			 ORDER BY embedding <=> $1
			 LIMIT $3`,
			queryVec, categories, limit,
		)
	} else {
		rows, err = s.pool.Query(ctx,
			`SELECT content, source, category, embedding, 1 - (embedding <=> $1) AS similarity
			 FROM campaign_documents
			 ORDER BY embedding <=> $1
			 LIMIT $2`,
			queryVec, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	candidates := make([]Candidate, 0, limit)
	for rows.Next() {
		var c Candidate
		var emb pgvector.Vector
		if err := rows.Scan(&c.Content, &c.Source, &c.Category, &emb, &c.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		c.Embedding = emb.Slice()
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}

	return candidates, nil
}
