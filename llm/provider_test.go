package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]string{"content": content},
				"finish_reason": "stop",
			},
		},
		"model": "llama3-70b-8192",
		"usage": map[string]int{"total_tokens": 42},
	}
}

func TestOpenAICompatChat(t *testing.T) {
	t.Run("Sends chat completion request with auth header", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(completionResponse("the answer"))
		}))
		defer server.Close()

		provider := NewOpenAICompat(Config{
			Model:   "llama3-70b-8192",
			BaseURL: server.URL,
			APIKey:  "test-key",
		})

		resp, err := provider.Chat(context.Background(), ChatRequest{
			Messages:    []Message{{Role: "user", Content: "hello"}},
			Temperature: 0,
		})
		require.NoError(t, err)

		assert.Equal(t, "/v1/chat/completions", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "llama3-70b-8192", gotBody["model"])
		assert.Equal(t, float64(0), gotBody["temperature"])

		assert.Equal(t, "the answer", resp.Content)
		assert.Equal(t, "stop", resp.FinishReason)
		assert.Equal(t, "llama3-70b-8192", resp.Model)
		assert.Equal(t, 42, resp.TotalTokens)
	})

	t.Run("JSON mode sets response_format", func(t *testing.T) {
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(completionResponse(`{"choices": [1]}`))
		}))
		defer server.Close()

		provider := NewOpenAICompat(Config{Model: "m", BaseURL: server.URL})

		_, err := provider.Chat(context.Background(), ChatRequest{
			Messages:       []Message{{Role: "user", Content: "pick"}},
			ResponseFormat: "json_object",
		})
		require.NoError(t, err)

		format, ok := gotBody["response_format"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "json_object", format["type"])
	})

	t.Run("Rate limiting is returned without retry", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		provider := NewOpenAICompat(Config{Model: "m", BaseURL: server.URL})

		_, err := provider.Chat(context.Background(), ChatRequest{
			Messages: []Message{{Role: "user", Content: "hello"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
		assert.Contains(t, err.Error(), "30")
		assert.Equal(t, 1, requests)
	})

	t.Run("Client errors are not retried", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			http.Error(w, `{"error": "bad request"}`, http.StatusBadRequest)
		}))
		defer server.Close()

		provider := NewOpenAICompat(Config{Model: "m", BaseURL: server.URL})

		_, err := provider.Chat(context.Background(), ChatRequest{
			Messages: []Message{{Role: "user", Content: "hello"}},
		})
		require.Error(t, err)
		assert.Equal(t, 1, requests)
	})

	t.Run("Empty choices is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
		}))
		defer server.Close()

		provider := NewOpenAICompat(Config{Model: "m", BaseURL: server.URL})

		_, err := provider.Chat(context.Background(), ChatRequest{
			Messages: []Message{{Role: "user", Content: "hello"}},
		})
		assert.Error(t, err)
	})
}

func TestRetryableStatusCode(t *testing.T) {
	tests := []struct {
		code      int
		retryable bool
	}{
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusGatewayTimeout, true},
		{http.StatusTooManyRequests, false},
		{http.StatusBadRequest, false},
		{http.StatusUnauthorized, false},
		{http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.retryable, retryableStatusCode(tt.code), "status %d", tt.code)
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("Known providers", func(t *testing.T) {
		for _, name := range []string{"groq", "openai", "custom"} {
			provider, err := NewProvider(Config{Provider: name, APIKey: "k"})
			require.NoError(t, err, name)
			assert.NotNil(t, provider, name)
		}
	})

	t.Run("Missing provider is an error", func(t *testing.T) {
		_, err := NewProvider(Config{})
		assert.Error(t, err)
	})

	t.Run("Unknown provider is an error", func(t *testing.T) {
		_, err := NewProvider(Config{Provider: "mystery"})
		assert.Error(t, err)
	})
}

func TestComplete(t *testing.T) {
	t.Run("Wraps prompt as a single user message", func(t *testing.T) {
		var gotBody struct {
			Messages    []Message `json:"messages"`
			Temperature float64   `json:"temperature"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(completionResponse("generated"))
		}))
		defer server.Close()

		provider := NewOpenAICompat(Config{Model: "m", BaseURL: server.URL})

		answer, err := Complete(context.Background(), provider, "the prompt", 0)
		require.NoError(t, err)

		assert.Equal(t, "generated", answer)
		require.Len(t, gotBody.Messages, 1)
		assert.Equal(t, "user", gotBody.Messages[0].Role)
		assert.Equal(t, "the prompt", gotBody.Messages[0].Content)
		assert.Zero(t, gotBody.Temperature)
	})
}
