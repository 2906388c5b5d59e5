package vectorstore

import (
	"fmt"
	"strings"

	"github.com/lexgraph/lexgraph/model"
)

// FormatChunks renders scored chunks as numbered, 1-indexed entries:
//
//	Document 1 (Score: 0.8213):
//	<first previewLen characters>...
func FormatChunks(chunks []model.DocumentChunk, previewLen int) string {
	formatted := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		formatted = append(formatted, fmt.Sprintf("Document %d (Score: %.4f):\n%s", i+1, chunk.Score, chunk.Preview(previewLen)))
	}
	return strings.Join(formatted, "\n")
}
