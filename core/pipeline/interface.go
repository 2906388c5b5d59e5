// Package pipeline holds the query-side processing functions: entity
// extraction from raw query text and query embedding.
package pipeline

// EmbedFunc is a function that generates an embedding vector for text
type EmbedFunc func(text string) ([]float32, error)
