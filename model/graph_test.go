package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphNodeHasLabel(t *testing.T) {
	node := &GraphNode{Labels: []string{"Case", "Document"}}

	assert.True(t, node.HasLabel("Case"))
	assert.True(t, node.HasLabel("Document"))
	assert.False(t, node.HasLabel("Judge"))
	assert.False(t, (&GraphNode{}).HasLabel("Case"))
}

func TestGraphNodePrimaryLabel(t *testing.T) {
	assert.Equal(t, "Case", (&GraphNode{Labels: []string{"Case", "Document"}}).PrimaryLabel())
	assert.Equal(t, "Unknown", (&GraphNode{}).PrimaryLabel())
}
