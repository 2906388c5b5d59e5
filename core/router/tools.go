// Package router wraps the graph and vector indexes as named retrieval
// tools, selects one or both per query, and merges their outputs into an
// intermediate answer via tree summarization.
package router

import "context"

// Tool is a named, described retrieval capability. The selector chooses
// tools by description only; it never inspects the implementation.
type Tool struct {
	Name        string
	Description string
	Run         func(ctx context.Context, query string) (string, error)
}
