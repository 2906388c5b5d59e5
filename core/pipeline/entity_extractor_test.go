package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	t.Run("Extract entities from case caption", func(t *testing.T) {
		entities := ExtractEntities("Marvin Gerber v. Henry Herskovitz")
		assert.Equal(t, []string{"Marvin", "Gerber", "Henry", "Herskovitz"}, entities)
	})

	t.Run("Extract organization with suffix as one entity", func(t *testing.T) {
		entities := ExtractEntities("Cases against Blue River LLC in Ohio")
		assert.Contains(t, entities, "Blue River LLC")
		assert.NotContains(t, entities, "Blue")
		assert.NotContains(t, entities, "River")
	})

	t.Run("Handle empty query", func(t *testing.T) {
		entities := ExtractEntities("")
		assert.Empty(t, entities)
	})

	t.Run("Handle query without capitalized words", func(t *testing.T) {
		entities := ExtractEntities("what is the statute of limitations for fraud?")
		assert.Empty(t, entities)
	})

	t.Run("Keep duplicates in order of appearance", func(t *testing.T) {
		entities := ExtractEntities("Did Smith sue Jones before Smith retired?")
		assert.Equal(t, []string{"Did", "Smith", "Jones", "Smith"}, entities)
	})

	t.Run("Sentence-leading words are candidates", func(t *testing.T) {
		// Capitalized stopwords are deliberately kept; the graph search
		// simply finds nothing for them.
		entities := ExtractEntities("Who decided Roe?")
		assert.Equal(t, []string{"Who", "Roe"}, entities)
	})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "LLC suffix",
			query:    "Cases against Blue River LLC in Ohio",
			expected: []string{"Cases", "Blue River LLC", "Ohio"},
		},
		{
			name:     "Corporation suffix",
			query:    "Omega Corporation filings",
			expected: []string{"Omega Corporation"},
		},
		{
			// The word boundary after the literal period cannot match
			// before a space, so "Co." suffixes split into single words.
			name:     "Abbreviated suffix splits into words",
			query:    "What cases involve Acme Widget Co. and antitrust law?",
			expected: []string{"What", "Acme", "Widget", "Co"},
		},
		{
			name:     "All-caps words are not matched",
			query:    "USA v. Miller",
			expected: []string{"Miller"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEntities(tt.query))
		})
	}
}
