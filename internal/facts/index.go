package facts

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/oceanai/internal/embeddings"
	"github.com/ziadkadry99/oceanai/internal/vectordb"
)

// Result is one fact matched by a search.
type Result struct {
	Text       string  `json:"text"`
	Icon       string  `json:"icon,omitempty"`
	Source     string  `json:"source"`
	Similarity float32 `json:"similarity"`
}

// Index answers free-text questions over the facts and gallery slides.
type Index struct {
	store vectordb.VectorStore
}

// NewIndex builds an in-memory index over facts and gallery slides.
func NewIndex(ctx context.Context, facts []string, gallery []Slide) (*Index, error) {
	store, err := vectordb.NewChromemStore(embeddings.NewHashEmbedder(embeddings.DefaultDimensions))
	if err != nil {
		return nil, fmt.Errorf("creating fact store: %w", err)
	}

	docs := make([]vectordb.Document, 0, len(facts)+len(gallery))
	for i, f := range facts {
		docs = append(docs, vectordb.Document{
			ID:       vectordb.DocumentID(vectordb.DocTypeFact, i),
			Content:  f,
			Metadata: vectordb.DocumentMetadata{Type: vectordb.DocTypeFact, Index: i},
		})
	}
	for i, s := range gallery {
		docs = append(docs, vectordb.Document{
			ID:       vectordb.DocumentID(vectordb.DocTypeGallery, i),
			Content:  s.Text,
			Metadata: vectordb.DocumentMetadata{Type: vectordb.DocTypeGallery, Icon: s.Icon, Index: i},
		})
	}
	if err := store.AddDocuments(ctx, docs); err != nil {
		return nil, fmt.Errorf("indexing facts: %w", err)
	}
	return &Index{store: store}, nil
}

// Len returns the number of indexed entries.
func (x *Index) Len() int { return x.store.Count() }

// Search returns up to limit entries most similar to query.
func (x *Index) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	return x.SearchSource(ctx, query, limit, "")
}

// SearchSource is Search restricted to one source ("fact" or "gallery").
// An empty source searches everything.
func (x *Index) SearchSource(ctx context.Context, query string, limit int, source vectordb.DocumentType) ([]Result, error) {
	hits, err := x.hits(ctx, query, limit, source)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(hits))
	for _, h := range hits {
		out = append(out, Result{
			Text:       h.Document.Content,
			Icon:       h.Document.Metadata.Icon,
			Source:     string(h.Document.Metadata.Type),
			Similarity: h.Similarity,
		})
	}
	return out, nil
}

// Text returns the matches of query formatted for a text-only client.
func (x *Index) Text(ctx context.Context, query string, limit int, source vectordb.DocumentType) (string, error) {
	hits, err := x.hits(ctx, query, limit, source)
	if err != nil {
		return "", err
	}
	return vectordb.FormatResults(hits), nil
}

func (x *Index) hits(ctx context.Context, query string, limit int, source vectordb.DocumentType) ([]vectordb.SearchResult, error) {
	var filter *vectordb.SearchFilter
	if source != "" {
		filter = &vectordb.SearchFilter{Type: &source}
	}
	hits, err := x.store.Search(ctx, query, limit, filter)
	if err != nil {
		return nil, fmt.Errorf("searching facts: %w", err)
	}
	return hits, nil
}
