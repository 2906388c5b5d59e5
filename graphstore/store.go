// Package graphstore provides access to the case-law property graph: a
// thin structured-query capability over Neo4j plus the traversal and
// formatting logic used to answer entity questions.
package graphstore

import (
	"context"

	"github.com/lexgraph/lexgraph/model"
)

// Store is the property graph capability consumed by the retriever. Each
// record maps a returned field name to a node, a list of nodes, or a
// scalar value. Node values are always *model.GraphNode.
type Store interface {
	StructuredQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)
}

// NodeFromRecord extracts a graph node from a record field, returning nil
// when the field is absent or not a node.
func NodeFromRecord(record map[string]interface{}, key string) *model.GraphNode {
	v, ok := record[key]
	if !ok || v == nil {
		return nil
	}
	node, ok := v.(*model.GraphNode)
	if !ok {
		return nil
	}
	return node
}

// NodesFromRecord extracts a list of graph nodes from a record field.
// Non-node list elements and absent fields yield an empty slice.
func NodesFromRecord(record map[string]interface{}, key string) []*model.GraphNode {
	v, ok := record[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var nodes []*model.GraphNode
	for _, item := range list {
		if node, ok := item.(*model.GraphNode); ok && node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// StringFromRecord extracts a string from a record field, returning ""
// when the field is absent or not a string.
func StringFromRecord(record map[string]interface{}, key string) string {
	v, ok := record[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
