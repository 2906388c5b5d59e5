// Package vectorstore provides nearest-neighbor retrieval over the legal
// document-chunk collection, with a Qdrant backend and a Postgres/pgvector
// backend behind the same capability interface.
package vectorstore

import (
	"context"

	"github.com/lexgraph/lexgraph/model"
)

// Searcher is the vector store capability: nearest-neighbor search by
// query vector, results in descending score order, never more than limit.
type Searcher interface {
	Search(ctx context.Context, vector []float32, limit int) ([]model.DocumentChunk, error)
}
