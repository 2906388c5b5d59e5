package vectorstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/lexgraph/lexgraph/helper"
	"github.com/lexgraph/lexgraph/model"
)

// PgVectorStore implements Searcher over Postgres with the pgvector
// extension, for deployments that keep document chunks next to the rest
// of their relational data instead of in a dedicated vector database.
type PgVectorStore struct {
	db *helper.Database
}

// NewPgVectorStore creates the pgvector-backed store, ensuring the
// extension and the chunks table exist.
func NewPgVectorStore(db *helper.Database, embeddingDim int) (*PgVectorStore, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	store := &PgVectorStore{db: db}
	if err := store.createTable(embeddingDim); err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized PgVectorStore")

	return store, nil
}

func (s *PgVectorStore) createTable(embeddingDim int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.db.Instance.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`)
	if err != nil {
		return err
	}

	_, err = s.db.Instance.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS law_chunks (
			id SERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			embedding VECTOR(%d) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`, embeddingDim))
	if err != nil {
		return err
	}

	s.db.Logger.Info("Checked/created table law_chunks")

	return nil
}

// InsertChunk stores a chunk with its embedding.
func (s *PgVectorStore) InsertChunk(ctx context.Context, content string, embedding []float32) error {
	_, err := s.db.Instance.ExecContext(ctx,
		`INSERT INTO law_chunks (content, embedding) VALUES ($1, $2)`,
		content,
		pgvector.NewVector(embedding),
	)
	if err != nil {
		return helper.NewError("insert chunk", err)
	}
	return nil
}

// Search performs cosine-similarity nearest-neighbor search, returning
// chunks in descending score order.
func (s *PgVectorStore) Search(ctx context.Context, vector []float32, limit int) ([]model.DocumentChunk, error) {
	rows, err := s.db.Instance.QueryContext(ctx,
		`SELECT content, 1 - (embedding <=> $1) AS score
		 FROM law_chunks
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		pgvector.NewVector(vector),
		limit,
	)
	if err != nil {
		return nil, helper.NewError("pgvector search", err)
	}
	defer rows.Close()

	var chunks []model.DocumentChunk
	for rows.Next() {
		var chunk model.DocumentChunk
		if err := rows.Scan(&chunk.Content, &chunk.Score); err != nil {
			return nil, helper.NewError("scan", err)
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, helper.NewError("iterate rows", err)
	}

	return chunks, nil
}
