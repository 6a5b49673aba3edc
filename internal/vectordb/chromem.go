package vectordb

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	chromem "github.com/philippgille/chromem-go"

	"github.com/ziadkadry99/oceanai/internal/embeddings"
)

const collectionName = "ocean"

// ChromemStore implements VectorStore using chromem-go.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   embeddings.Embedder

	mu    sync.Mutex
	types map[string]DocumentType // document ID -> type, for filtered limits
}

// NewChromemStore creates a new in-memory ChromemStore.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemStore{
		db:         db,
		collection: col,
		embedder:   embedder,
		types:      make(map[string]DocumentType),
	}, nil
}

func (s *ChromemStore) AddDocuments(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	chromDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		chromDocs[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: metadataToMap(doc.Metadata),
		}
	}

	if err := s.collection.AddDocuments(ctx, chromDocs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("adding documents: %w", err)
	}

	s.mu.Lock()
	for _, doc := range docs {
		s.types[doc.ID] = doc.Metadata.Type
	}
	s.mu.Unlock()
	return nil
}

func (s *ChromemStore) Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error) {
	// A query without words embeds to the zero vector.
	if len(embeddings.Tokens(query)) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	// chromem-go requires nResults <= collection size.
	if count := s.collection.Count(); limit > count && count > 0 {
		limit = count
	} else if count == 0 {
		return nil, nil
	}

	where := buildWhereClause(filter)
	if where != nil {
		// With a filter the candidate set may be smaller than limit.
		if n := s.countMatching(filter); n < limit {
			limit = n
		}
		if limit == 0 {
			return nil, nil
		}
	}

	results, err := s.collection.Query(ctx, query, limit, where, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	searchResults := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if r.Similarity <= 0 {
			continue
		}
		searchResults = append(searchResults, SearchResult{
			Document: Document{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: mapToMetadata(r.Metadata),
			},
			Similarity: r.Similarity,
		})
	}

	return searchResults, nil
}

func (s *ChromemStore) Count() int {
	return s.collection.Count()
}

// countMatching counts stored documents accepted by filter.
func (s *ChromemStore) countMatching(filter *SearchFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, typ := range s.types {
		if filter.Type == nil || typ == *filter.Type {
			n++
		}
	}
	return n
}

// DocumentID is the canonical ID of the i-th document of a type.
func DocumentID(typ DocumentType, i int) string {
	return string(typ) + "-" + strconv.Itoa(i)
}

// metadataToMap converts DocumentMetadata to a flat map[string]string for chromem.
func metadataToMap(m DocumentMetadata) map[string]string {
	return map[string]string{
		"type":  string(m.Type),
		"icon":  m.Icon,
		"index": strconv.Itoa(m.Index),
	}
}

// mapToMetadata converts a flat map[string]string back to DocumentMetadata.
func mapToMetadata(m map[string]string) DocumentMetadata {
	idx, _ := strconv.Atoi(m["index"])
	return DocumentMetadata{
		Type:  DocumentType(m["type"]),
		Icon:  m["icon"],
		Index: idx,
	}
}

// buildWhereClause converts a SearchFilter to a chromem where clause.
func buildWhereClause(filter *SearchFilter) map[string]string {
	if filter == nil || filter.Type == nil {
		return nil
	}
	return map[string]string{"type": string(*filter.Type)}
}
