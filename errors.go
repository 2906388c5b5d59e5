package lexgraph

import "errors"

var (
	// ErrEmptyQuery is returned when a query is empty or whitespace-only.
	// The web layer maps it to a bad-request response.
	ErrEmptyQuery = errors.New("lexgraph: query must be a non-empty string")

	// ErrGenerationFailed is returned when the completion capability fails.
	// Generation failure is fatal for the query; no partial answer is
	// returned.
	ErrGenerationFailed = errors.New("lexgraph: answer generation failed")

	// ErrProviderNotConfigured is returned when the service is constructed
	// without a completion provider.
	ErrProviderNotConfigured = errors.New("lexgraph: llm provider not configured")
)
