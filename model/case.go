package model

// CaseRecord is an aggregate view over a Case node and its related nodes,
// assembled on demand per query. Optional relations are nil when the graph
// holds no matching hop.
type CaseRecord struct {
	Case      *GraphNode   `json:"case"`
	Judges    []*GraphNode `json:"judges,omitempty"`
	Author    *GraphNode   `json:"author,omitempty"`
	Court     *GraphNode   `json:"court,omitempty"`
	Attorneys []*GraphNode `json:"attorneys,omitempty"`
	Plaintiff *GraphNode   `json:"plaintiff,omitempty"`
	Defendant *GraphNode   `json:"defendant,omitempty"`
	Citations []*GraphNode `json:"citations,omitempty"`
	Opinion   *GraphNode   `json:"opinion,omitempty"`
	Docket    *GraphNode   `json:"docket,omitempty"`
}

// Property returns a string property of the case node, or "Unknown" when
// the case or the property is absent.
func (r *CaseRecord) Property(key string) string {
	if r == nil || r.Case == nil {
		return "Unknown"
	}
	return nodeProperty(r.Case, key)
}

func nodeProperty(n *GraphNode, key string) string {
	if n == nil {
		return "Unknown"
	}
	if v, ok := n.Properties[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "Unknown"
}

// NodeProperty returns a string property of any node with the same
// "Unknown" fallback used throughout case formatting.
func NodeProperty(n *GraphNode, key string) string {
	return nodeProperty(n, key)
}
