package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexgraph/lexgraph/helper"
	"github.com/lexgraph/lexgraph/llm"
)

// Selector chooses a subset of tools for a query based on their
// descriptions. Returned indices are positions in the tools slice.
type Selector interface {
	Select(ctx context.Context, query string, tools []Tool) ([]int, error)
}

// LLMMultiSelector asks the completion capability to pick one or more
// tools. The decision is a pure function of the query and the tool
// descriptions.
type LLMMultiSelector struct {
	provider llm.Provider
}

// NewLLMMultiSelector creates an LLM-backed multi-select selector.
func NewLLMMultiSelector(provider llm.Provider) *LLMMultiSelector {
	return &LLMMultiSelector{provider: provider}
}

type selectorDecision struct {
	Choices []int `json:"choices"`
}

// Select prompts the LLM with the numbered tool descriptions and parses
// the chosen indices. Out-of-range choices are discarded; an empty or
// unparseable decision is an error for the caller to recover from.
func (s *LLMMultiSelector) Select(ctx context.Context, query string, tools []Tool) ([]int, error) {
	var descriptions strings.Builder
	for i, tool := range tools {
		fmt.Fprintf(&descriptions, "%d. %s\n", i+1, tool.Description)
	}

	prompt := fmt.Sprintf(`Some choices are given below. It is provided in a numbered list (1 to %d), where each item in the list corresponds to a retrieval tool.
%s
Using only the choices above and not prior knowledge, return the choices that are most relevant to the question: %q
Answer with a JSON object of the form {"choices": [1]} listing one or more choice numbers.`, len(tools), descriptions.String(), query)

	resp, err := s.provider.Chat(ctx, llm.ChatRequest{
		Messages:       []llm.Message{{Role: "user", Content: prompt}},
		Temperature:    0,
		ResponseFormat: "json_object",
	})
	if err != nil {
		return nil, helper.NewError("selector completion", err)
	}

	var decision selectorDecision
	if err := json.Unmarshal([]byte(resp.Content), &decision); err != nil {
		return nil, helper.NewError("parse selector decision", err)
	}

	var indices []int
	for _, choice := range decision.Choices {
		if choice >= 1 && choice <= len(tools) {
			indices = append(indices, choice-1)
		}
	}
	if len(indices) == 0 {
		return nil, helper.NewError("selector decision", fmt.Errorf("no valid choices in %q", resp.Content))
	}

	return indices, nil
}

// RuleSelector is a deterministic selector: it returns the configured
// choices, or every tool when none are configured. Used in tests and in
// deployments without a selection model.
type RuleSelector struct {
	Choices []int
}

// Select returns the configured tool indices.
func (s *RuleSelector) Select(ctx context.Context, query string, tools []Tool) ([]int, error) {
	if len(s.Choices) == 0 {
		indices := make([]int, len(tools))
		for i := range tools {
			indices[i] = i
		}
		return indices, nil
	}
	for _, choice := range s.Choices {
		if choice < 0 || choice >= len(tools) {
			return nil, helper.NewError("selector decision", fmt.Errorf("choice %d out of range", choice))
		}
	}
	return s.Choices, nil
}
