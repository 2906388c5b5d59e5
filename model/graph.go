package model

// GraphNode represents a node returned by the property graph store.
// Nodes are read-only from the service's perspective.
type GraphNode struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Labels     []string               `json:"labels"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// HasLabel reports whether the node carries the given label.
func (n *GraphNode) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// PrimaryLabel returns the first label of the node, or "Unknown" if the
// node carries no labels.
func (n *GraphNode) PrimaryLabel() string {
	if len(n.Labels) == 0 {
		return "Unknown"
	}
	return n.Labels[0]
}

// GraphResult is one row of a relationship search: an entity node, the
// relationship type, and the related node. RelationType and Related are
// empty when the entity node has no relationships.
type GraphResult struct {
	Entity       *GraphNode `json:"entity"`
	RelationType string     `json:"relationship_type,omitempty"`
	Related      *GraphNode `json:"related,omitempty"`
}
