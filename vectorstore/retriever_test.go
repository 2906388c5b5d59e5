package vectorstore

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/lexgraph/model"
)

// MockSearcher is a mock implementation of Searcher for testing.
type MockSearcher struct {
	chunks     []model.DocumentChunk
	err        error
	lastVector []float32
	lastLimit  int
}

func (m *MockSearcher) Search(ctx context.Context, vector []float32, limit int) ([]model.DocumentChunk, error) {
	m.lastVector = vector
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.chunks) {
		return m.chunks[:limit], nil
	}
	return m.chunks, nil
}

func fixedEmbedder(vector []float32) func(string) ([]float32, error) {
	return func(string) ([]float32, error) {
		return vector, nil
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRetrieverSearch(t *testing.T) {
	t.Run("Embeds query and forwards vector", func(t *testing.T) {
		store := &MockSearcher{
			chunks: []model.DocumentChunk{{Content: "chunk one", Score: 0.9}},
		}
		vector := []float32{0.1, 0.2, 0.3}
		retriever := NewRetriever(fixedEmbedder(vector), store, model.DefaultQueryConfig(), testLogger())

		chunks, err := retriever.Search(context.Background(), "query", 3)
		require.NoError(t, err)

		assert.Equal(t, vector, store.lastVector)
		assert.Equal(t, 3, store.lastLimit)
		require.Len(t, chunks, 1)
		assert.Equal(t, "chunk one", chunks[0].Content)
	})

	t.Run("Embedding failure is returned", func(t *testing.T) {
		store := &MockSearcher{}
		embed := func(string) ([]float32, error) { return nil, assert.AnError }
		retriever := NewRetriever(embed, store, model.DefaultQueryConfig(), testLogger())

		_, err := retriever.Search(context.Background(), "query", 3)
		assert.Error(t, err)
	})
}

func TestRetrieverRetrieve(t *testing.T) {
	t.Run("Formats top-k chunks", func(t *testing.T) {
		store := &MockSearcher{
			chunks: []model.DocumentChunk{
				{Content: "first passage", Score: 0.91},
				{Content: "second passage", Score: 0.84},
				{Content: "third passage", Score: 0.72},
				{Content: "fourth passage", Score: 0.55},
			},
		}
		retriever := NewRetriever(fixedEmbedder([]float32{0.5}), store, model.DefaultQueryConfig(), testLogger())

		formatted := retriever.Retrieve(context.Background(), "query")

		assert.Equal(t, 3, store.lastLimit)
		assert.Contains(t, formatted, "Document 1 (Score: 0.9100):\nfirst passage...")
		assert.Contains(t, formatted, "Document 2 (Score: 0.8400):\nsecond passage...")
		assert.Contains(t, formatted, "Document 3 (Score: 0.7200):\nthird passage...")
		assert.NotContains(t, formatted, "fourth passage")
	})

	t.Run("Search failure degrades to empty block", func(t *testing.T) {
		store := &MockSearcher{err: assert.AnError}
		retriever := NewRetriever(fixedEmbedder([]float32{0.5}), store, model.DefaultQueryConfig(), testLogger())

		formatted := retriever.Retrieve(context.Background(), "query")
		assert.Empty(t, formatted)
	})

	t.Run("Zero config falls back to defaults", func(t *testing.T) {
		store := &MockSearcher{}
		retriever := NewRetriever(fixedEmbedder([]float32{0.5}), store, model.QueryConfig{}, testLogger())

		_ = retriever.Retrieve(context.Background(), "query")
		assert.Equal(t, model.DefaultQueryConfig().VectorTopK, store.lastLimit)
	})
}
