package model

// QueryConfig represents configuration for a knowledge-base query
type QueryConfig struct {
	// Graph traversal parameters
	GraphFanout int `json:"graph_fanout"` // Max relationship rows per entity

	// Vector search parameters
	VectorTopK    int `json:"vector_top_k"`
	PreviewLength int `json:"preview_length"` // Chunk preview length in characters
}

// DefaultQueryConfig returns a sensible default configuration
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		GraphFanout:   10,
		VectorTopK:    3,
		PreviewLength: 300,
	}
}
