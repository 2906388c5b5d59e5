package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexgraph/lexgraph/llm"
)

// Fixed system instruction framing the summarizer as a legal-query
// specialist.
const treeSummarizeInstruction = "You are a helpful legal AI assistant specialized in understanding the legal enquiries"

// Number of partial answers merged per summarization round.
const summarizeBatchSize = 5

// TreeSummarizer merges multiple partial answers into one coherent answer
// via hierarchical summarization: partial answers are merged in batches,
// round by round, until a single text remains.
type TreeSummarizer struct {
	provider llm.Provider
}

// NewTreeSummarizer creates a tree summarizer over the given provider.
func NewTreeSummarizer(provider llm.Provider) *TreeSummarizer {
	return &TreeSummarizer{provider: provider}
}

// Summarize reduces the partial answers to a single synthesized answer
// for the query. No partial answers yield an empty result without an LLM
// call.
func (s *TreeSummarizer) Summarize(ctx context.Context, query string, answers []string) (string, error) {
	texts := make([]string, 0, len(answers))
	for _, answer := range answers {
		if strings.TrimSpace(answer) != "" {
			texts = append(texts, answer)
		}
	}
	if len(texts) == 0 {
		return "", nil
	}

	for len(texts) > 1 {
		var merged []string
		for start := 0; start < len(texts); start += summarizeBatchSize {
			end := start + summarizeBatchSize
			if end > len(texts) {
				end = len(texts)
			}
			summary, err := s.summarizeBatch(ctx, query, texts[start:end])
			if err != nil {
				return "", err
			}
			merged = append(merged, summary)
		}
		texts = merged
	}

	return s.summarizeBatch(ctx, query, texts)
}

func (s *TreeSummarizer) summarizeBatch(ctx context.Context, query string, texts []string) (string, error) {
	var context strings.Builder
	for i, text := range texts {
		fmt.Fprintf(&context, "Context %d:\n%s\n\n", i+1, text)
	}

	prompt := fmt.Sprintf(`Context information from multiple sources is below.
---------------------
%s---------------------
Given the information from multiple sources and not prior knowledge, answer the query.
Query: %s
Answer:`, context.String(), query)

	resp, err := s.provider.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: treeSummarizeInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
