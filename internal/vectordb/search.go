package vectordb

import (
	"fmt"
	"strings"
)

// FormatResults renders search results as human-readable text.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "No results found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. ", i+1))
		if r.Document.Metadata.Icon != "" {
			sb.WriteString(r.Document.Metadata.Icon + " ")
		}
		sb.WriteString(r.Document.Content)
		sb.WriteString(fmt.Sprintf(" (%s, similarity %.2f)\n", r.Document.Metadata.Type, r.Similarity))
	}

	return sb.String()
}
