package vectorstore

import (
	"context"
	"log/slog"

	"github.com/lexgraph/lexgraph/core/pipeline"
	"github.com/lexgraph/lexgraph/model"
)

// Retriever embeds queries and searches the chunk collection.
type Retriever struct {
	embed      pipeline.EmbedFunc
	store      Searcher
	topK       int
	previewLen int
	log        *slog.Logger
}

// NewRetriever creates a vector retriever.
func NewRetriever(embed pipeline.EmbedFunc, store Searcher, config model.QueryConfig, logger *slog.Logger) *Retriever {
	topK := config.VectorTopK
	if topK <= 0 {
		topK = model.DefaultQueryConfig().VectorTopK
	}
	previewLen := config.PreviewLength
	if previewLen <= 0 {
		previewLen = model.DefaultQueryConfig().PreviewLength
	}
	return &Retriever{
		embed:      embed,
		store:      store,
		topK:       topK,
		previewLen: previewLen,
		log:        logger,
	}
}

// Search embeds the query and returns up to limit chunks in descending
// score order.
func (r *Retriever) Search(ctx context.Context, query string, limit int) ([]model.DocumentChunk, error) {
	vector, err := r.embed(query)
	if err != nil {
		return nil, err
	}
	return r.store.Search(ctx, vector, limit)
}

// Retrieve runs the search for the configured top-k and returns the
// formatted result block. A backend failure is logged and yields an empty
// block; it never aborts the overall query.
func (r *Retriever) Retrieve(ctx context.Context, query string) string {
	chunks, err := r.Search(ctx, query, r.topK)
	if err != nil {
		r.log.Error("Vector search failed", slog.Any("error", err))
		return ""
	}
	return FormatChunks(chunks, r.previewLen)
}
