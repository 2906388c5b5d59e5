package lexgraph

import (
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lexgraph/lexgraph/graphstore"
	"github.com/lexgraph/lexgraph/llm"
	"github.com/lexgraph/lexgraph/model"
	"github.com/lexgraph/lexgraph/vectorstore"
)

// Config holds all configuration for the knowledge-base service.
type Config struct {
	Neo4j  graphstore.Neo4jConfiguration
	Qdrant vectorstore.QdrantConfiguration
	LLM    llm.Config

	// Query answering
	Query       model.QueryConfig
	Temperature float64 // Completion temperature; 0 for deterministic answers

	// EmbeddingDim must match the embedding model and the stored vectors.
	EmbeddingDim int
}

// DefaultConfig returns a Config with the service defaults: Groq
// completions at temperature zero and the law_docs collection.
func DefaultConfig() Config {
	return Config{
		Neo4j: graphstore.Neo4jConfiguration{
			URL:      "neo4j://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
		},
		Qdrant: vectorstore.QdrantConfiguration{
			Host:       "localhost",
			Port:       6334,
			Collection: "law_docs",
		},
		LLM: llm.Config{
			Provider: "groq",
			Model:    "llama3-70b-8192",
		},
		Query:        model.DefaultQueryConfig(),
		Temperature:  0,
		EmbeddingDim: 384,
	}
}

// LoadConfig builds a Config from defaults, a .env file when present, and
// environment variables.
func LoadConfig() Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	config := DefaultConfig()

	if v := os.Getenv("NEO4J_URL"); v != "" {
		config.Neo4j.URL = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		config.Neo4j.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		config.Neo4j.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		config.Neo4j.Database = v
	}

	if v := os.Getenv("QDRANT_URL"); v != "" {
		if host, port, useTLS, ok := parseQdrantURL(v); ok {
			config.Qdrant.Host = host
			config.Qdrant.Port = port
			config.Qdrant.UseTLS = useTLS
		}
	}
	if v := os.Getenv("QDRANT_API_KEY"); v != "" {
		config.Qdrant.APIKey = v
	}
	if v := os.Getenv("QDRANT_COLLECTION"); v != "" {
		config.Qdrant.Collection = v
	}

	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		config.LLM.APIKey = v
	}
	if v := os.Getenv("LEXGRAPH_LLM_PROVIDER"); v != "" {
		config.LLM.Provider = v
	}
	if v := os.Getenv("LEXGRAPH_LLM_MODEL"); v != "" {
		config.LLM.Model = v
	}
	if v := os.Getenv("LEXGRAPH_LLM_BASE_URL"); v != "" {
		config.LLM.BaseURL = v
	}

	return config
}

// parseQdrantURL splits a Qdrant URL into host, port, and TLS flag.
func parseQdrantURL(raw string) (string, int, bool, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "", 0, false, false
	}

	useTLS := u.Scheme == "https"

	port := 6334
	if p := u.Port(); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return "", 0, false, false
		}
		port = parsed
	}

	return u.Hostname(), port, useTLS, true
}
