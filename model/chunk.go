package model

// DocumentChunk represents a scored passage from the vector store.
type DocumentChunk struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Preview returns the first maxLen characters of the chunk content
// followed by an ellipsis marker. Truncation counts runes, so a cut never
// splits a multi-byte character. Content shorter than maxLen is returned
// with the marker appended unchanged, matching the display contract.
func (c *DocumentChunk) Preview(maxLen int) string {
	runes := []rune(c.Content)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return c.Content + "..."
}
