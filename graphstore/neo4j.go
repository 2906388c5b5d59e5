package graphstore

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lexgraph/lexgraph/helper"
	"github.com/lexgraph/lexgraph/model"
)

// Neo4jConfiguration holds the connection parameters for a Neo4j database
type Neo4jConfiguration struct {
	URL      string
	Username string
	Password string
	Database string
}

// Neo4jStore implements Store over a Neo4j driver. The driver is long-lived
// and shared across queries; sessions are opened per call.
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
}

// NewNeo4jStore connects to Neo4j and verifies connectivity.
func NewNeo4jStore(ctx context.Context, config *Neo4jConfiguration) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(config.URL, neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, helper.NewError("create neo4j driver", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, helper.NewError("verify neo4j connectivity", err)
	}

	database := config.Database
	if database == "" {
		database = "neo4j"
	}

	return &Neo4jStore{
		driver:   driver,
		database: database,
		timeout:  30 * time.Second,
	}, nil
}

// Close releases the underlying driver.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// StructuredQuery runs a Cypher query in a read session and converts all
// returned nodes to model.GraphNode at the boundary.
func (s *Neo4jStore) StructuredQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, helper.NewError("run cypher query", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, helper.NewError("collect query results", err)
	}

	converted := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{}, len(record.Keys))
		for key, value := range record.AsMap() {
			row[key] = convertValue(value)
		}
		converted = append(converted, row)
	}

	return converted, nil
}

// convertValue maps driver values to service types: nodes become
// *model.GraphNode, lists are converted element-wise, everything else
// passes through.
func convertValue(value interface{}) interface{} {
	switch v := value.(type) {
	case neo4j.Node:
		return convertNode(v)
	case []interface{}:
		converted := make([]interface{}, 0, len(v))
		for _, item := range v {
			converted = append(converted, convertValue(item))
		}
		return converted
	default:
		return value
	}
}

func convertNode(node neo4j.Node) *model.GraphNode {
	name, _ := node.Props["name"].(string)

	id, _ := node.Props["id"].(string)
	if id == "" {
		id = node.ElementId
	}

	return &model.GraphNode{
		ID:         id,
		Name:       name,
		Labels:     node.Labels,
		Properties: node.Props,
	}
}

// GetSchema returns the graph schema visualization records, used for
// diagnostics.
func (s *Neo4jStore) GetSchema(ctx context.Context) ([]map[string]interface{}, error) {
	records, err := s.StructuredQuery(ctx, "CALL db.schema.visualization()", nil)
	if err != nil {
		return nil, fmt.Errorf("retrieving graph schema: %w", err)
	}
	return records, nil
}
