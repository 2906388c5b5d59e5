// Package lexgraph implements a legal-domain question-answering service
// that fuses a property graph of case-law entities with a vector index of
// document chunks and synthesizes answers with a language model.
package lexgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lexgraph/lexgraph/core/pipeline"
	"github.com/lexgraph/lexgraph/core/prompt"
	"github.com/lexgraph/lexgraph/core/router"
	"github.com/lexgraph/lexgraph/graphstore"
	"github.com/lexgraph/lexgraph/helper"
	"github.com/lexgraph/lexgraph/llm"
	"github.com/lexgraph/lexgraph/vectorstore"
)

// KnowledgeBase answers natural-language legal queries against the graph
// and vector backends. All backend capabilities are injected; the service
// holds no mutable state across queries.
type KnowledgeBase struct {
	graphStore  graphstore.Store
	graph       *graphstore.Retriever
	vectorStore vectorstore.Searcher
	vector      *vectorstore.Retriever
	router      *router.Router
	provider    llm.Provider
	temperature float64
	// Logging
	log *slog.Logger

	closers []func(context.Context) error
}

// New creates a KnowledgeBase connected to the configured Neo4j, Qdrant,
// and Groq backends, with the default hugot embedder.
func New(ctx context.Context, config Config) (*KnowledgeBase, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	graphStore, err := graphstore.NewNeo4jStore(ctx, &config.Neo4j)
	if err != nil {
		return nil, helper.NewError("connect graph store", err)
	}

	vectorStore, err := vectorstore.NewQdrantStore(&config.Qdrant)
	if err != nil {
		return nil, helper.NewError("connect vector store", err)
	}

	embedder, err := pipeline.DefaultEmbedder()
	if err != nil {
		return nil, helper.NewError("create embedder", err)
	}

	provider, err := llm.NewProvider(config.LLM)
	if err != nil {
		return nil, helper.NewError("create llm provider", err)
	}

	kb := NewKnowledgeBase(graphStore, vectorStore, embedder, provider, nil, config, logger)
	kb.closers = append(kb.closers,
		graphStore.Close,
		func(context.Context) error { return vectorStore.Close() },
	)

	return kb, nil
}

// NewKnowledgeBase wires a service from explicit backend capabilities.
// A nil selector defaults to the LLM multi-selector over the provider.
func NewKnowledgeBase(
	graphStore graphstore.Store,
	vectorStore vectorstore.Searcher,
	embedder pipeline.EmbedFunc,
	provider llm.Provider,
	selector router.Selector,
	config Config,
	logger *slog.Logger,
) *KnowledgeBase {
	graphRetriever := graphstore.NewRetriever(graphStore, config.Query.GraphFanout, logger)
	vectorRetriever := vectorstore.NewRetriever(embedder, vectorStore, config.Query, logger)

	tools := []router.Tool{
		{
			Name:        "graph_tool",
			Description: "Useful for answering questions about relationships and connections between legal entities, cases, and concepts",
			Run: func(ctx context.Context, query string) (string, error) {
				entities := pipeline.ExtractEntities(query)
				graphText, caseDetails := graphRetriever.Retrieve(ctx, entities)
				if len(caseDetails) > 0 {
					graphText = graphText + "\n" + strings.Join(caseDetails, "\n")
				}
				return graphText, nil
			},
		},
		{
			Name:        "vector_tool",
			Description: "Useful for answering detailed questions about legal content, precedents, and case details",
			Run: func(ctx context.Context, query string) (string, error) {
				return vectorRetriever.Retrieve(ctx, query), nil
			},
		},
	}

	if selector == nil {
		selector = router.NewLLMMultiSelector(provider)
	}

	return &KnowledgeBase{
		graphStore:  graphStore,
		graph:       graphRetriever,
		vectorStore: vectorStore,
		vector:      vectorRetriever,
		router:      router.NewRouter(tools, selector, router.NewTreeSummarizer(provider), logger),
		provider:    provider,
		temperature: config.Temperature,
		log:         logger,
	}
}

// Close releases the backend connections.
func (kb *KnowledgeBase) Close(ctx context.Context) error {
	var firstErr error
	for _, close := range kb.closers {
		if err := close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// QueryKnowledgeBase answers one query. Retrieval failures degrade to
// empty context; only a completion failure is fatal.
func (kb *KnowledgeBase) QueryKnowledgeBase(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	if kb.provider == nil {
		return "", ErrProviderNotConfigured
	}

	requestID := uuid.New()
	kb.log.Info("Querying knowledge base",
		slog.String("request_id", requestID.String()),
		slog.String("query", query))

	// Route the query through the retrieval tools for an intermediate
	// answer. Selection or summarization failure degrades to "".
	intermediateAnswer := kb.router.Route(ctx, query)

	// Graph retrieval: per-entity failures are recovered inside Retrieve.
	entities := pipeline.ExtractEntities(query)
	graphText, caseDetails := kb.graph.Retrieve(ctx, entities)
	kb.log.Info("Formatted graph results",
		slog.String("request_id", requestID.String()),
		slog.Int("entities", len(entities)),
		slog.Int("case_details", len(caseDetails)))

	// Vector retrieval proceeds independently of graph results.
	vectorText := kb.vector.Retrieve(ctx, query)
	kb.log.Info("Formatted vector results",
		slog.String("request_id", requestID.String()),
		slog.Int("length", len(vectorText)))

	assembled := prompt.Assemble(query, intermediateAnswer, graphText, vectorText, caseDetails)

	answer, err := llm.Complete(ctx, kb.provider, assembled, kb.temperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	kb.log.Info("Generated response",
		slog.String("request_id", requestID.String()),
		slog.Int("length", len(answer)))

	return answer, nil
}

// GetGraphSchema returns the graph schema visualization when the graph
// backend supports introspection.
func (kb *KnowledgeBase) GetGraphSchema(ctx context.Context) ([]map[string]interface{}, error) {
	introspector, ok := kb.graphStore.(interface {
		GetSchema(ctx context.Context) ([]map[string]interface{}, error)
	})
	if !ok {
		return nil, helper.NewError("graph schema", fmt.Errorf("graph store does not support schema introspection"))
	}
	return introspector.GetSchema(ctx)
}

// DiagnoseStores logs node counts, node labels, and sample nodes from the
// graph store plus the vector collection size. Failures are logged, not
// returned; diagnostics never block startup.
func (kb *KnowledgeBase) DiagnoseStores(ctx context.Context) {
	kb.log.Info("Diagnosing graph store...")
	kb.diagnoseGraphStore(ctx)
	kb.log.Info("Diagnosing vector store...")
	kb.diagnoseVectorStore(ctx)
}

func (kb *KnowledgeBase) diagnoseGraphStore(ctx context.Context) {
	records, err := kb.graphStore.StructuredQuery(ctx, "MATCH (n) RETURN count(n) as node_count", nil)
	if err != nil {
		kb.log.Error("Graph diagnostics failed", slog.Any("error", err))
		return
	}
	if len(records) > 0 {
		kb.log.Info("Total nodes in the graph", slog.Any("node_count", records[0]["node_count"]))
	}

	records, err = kb.graphStore.StructuredQuery(ctx, "MATCH (n) RETURN DISTINCT labels(n) as node_types", nil)
	if err == nil {
		var labels []string
		for _, record := range records {
			if types, ok := record["node_types"].([]interface{}); ok && len(types) > 0 {
				if label, ok := types[0].(string); ok {
					labels = append(labels, label)
				}
			}
		}
		kb.log.Info("Node types in the graph", slog.String("node_types", strings.Join(labels, ", ")))
	}

	records, err = kb.graphStore.StructuredQuery(ctx, "MATCH (n) RETURN n LIMIT 5", nil)
	if err == nil {
		for _, record := range records {
			if node := graphstore.NodeFromRecord(record, "n"); node != nil {
				kb.log.Info("Sample node",
					slog.String("name", node.Name),
					slog.String("label", node.PrimaryLabel()))
			}
		}
	}
}

func (kb *KnowledgeBase) diagnoseVectorStore(ctx context.Context) {
	prober, ok := kb.vectorStore.(interface {
		CollectionInfo(ctx context.Context) (uint64, error)
	})
	if !ok {
		return
	}
	count, err := prober.CollectionInfo(ctx)
	if err != nil {
		kb.log.Error("Vector diagnostics failed", slog.Any("error", err))
		return
	}
	kb.log.Info("Vector store collection info", slog.Uint64("points", count))
}

// Entities exposes query entity extraction for callers that want to show
// which lookups a query will trigger.
func (kb *KnowledgeBase) Entities(query string) []string {
	return pipeline.ExtractEntities(query)
}
