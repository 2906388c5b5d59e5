package vectorstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/lexgraph/lexgraph/helper"
	"github.com/lexgraph/lexgraph/model"
)

// QdrantConfiguration holds the connection parameters for a Qdrant
// collection.
type QdrantConfiguration struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Collection string
}

// QdrantStore implements Searcher over a Qdrant collection. Chunk payloads
// hold serialized node content under the "_node_content" field; the text
// is extracted from its "text" attribute.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
	timeout    time.Duration
}

// nodeContent is the serialized payload stored per point.
type nodeContent struct {
	Text string `json:"text"`
}

// NewQdrantStore connects to Qdrant.
func NewQdrantStore(config *QdrantConfiguration) (*QdrantStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   config.Host,
		Port:   config.Port,
		APIKey: config.APIKey,
		UseTLS: config.UseTLS,
	})
	if err != nil {
		return nil, helper.NewError("create qdrant client", err)
	}

	return &QdrantStore{
		client:     client,
		collection: config.Collection,
		timeout:    30 * time.Second,
	}, nil
}

// Close releases the underlying client connection.
func (s *QdrantStore) Close() error {
	return s.client.Close()
}

// Search performs nearest-neighbor search and returns scored chunks in
// descending score order.
func (s *QdrantStore) Search(ctx context.Context, vector []float32, limit int) ([]model.DocumentChunk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, helper.NewError("qdrant search", err)
	}

	chunks := make([]model.DocumentChunk, 0, len(points))
	for _, point := range points {
		chunks = append(chunks, model.DocumentChunk{
			Content: contentFromPayload(point.Payload),
			Score:   float64(point.Score),
		})
	}

	return chunks, nil
}

// CollectionInfo probes the collection, used for diagnostics.
func (s *QdrantStore) CollectionInfo(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: s.collection,
	})
	if err != nil {
		return 0, helper.NewError("qdrant collection info", err)
	}
	return count, nil
}

func contentFromPayload(payload map[string]*qdrant.Value) string {
	raw := payload["_node_content"].GetStringValue()
	if raw == "" {
		return ""
	}

	var content nodeContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		// Payload that is not serialized node content is used as-is.
		return raw
	}
	return content.Text
}
