package router

import (
	"context"
	"log/slog"
)

// Router selects retrieval tools per query and synthesizes their outputs
// into an intermediate answer. It never fails a query: selection and
// summarization errors degrade to an empty intermediate answer, leaving
// the directly formatted retrieval results to carry the final prompt.
type Router struct {
	tools       []Tool
	selector    Selector
	synthesizer *TreeSummarizer
	log         *slog.Logger
}

// NewRouter creates a router over the given tools.
func NewRouter(tools []Tool, selector Selector, synthesizer *TreeSummarizer, logger *slog.Logger) *Router {
	return &Router{
		tools:       tools,
		selector:    selector,
		synthesizer: synthesizer,
		log:         logger,
	}
}

// Route runs the selection policy, executes the chosen tools, and merges
// their outputs. Individual tool failures are logged and skipped.
func (r *Router) Route(ctx context.Context, query string) string {
	indices, err := r.selector.Select(ctx, query, r.tools)
	if err != nil {
		r.log.Error("Tool selection failed", slog.Any("error", err))
		return ""
	}

	var answers []string
	for _, index := range indices {
		tool := r.tools[index]
		answer, err := tool.Run(ctx, query)
		if err != nil {
			r.log.Error("Retrieval tool failed",
				slog.String("tool", tool.Name),
				slog.Any("error", err))
			continue
		}
		answers = append(answers, answer)
	}

	summary, err := r.synthesizer.Summarize(ctx, query, answers)
	if err != nil {
		r.log.Error("Tree summarization failed", slog.Any("error", err))
		return ""
	}

	return summary
}
