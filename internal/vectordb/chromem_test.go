package vectordb

import (
	"context"
	"strings"
	"testing"

	"github.com/ziadkadry99/oceanai/internal/embeddings"
)

func newTestStore(t *testing.T) *ChromemStore {
	t.Helper()
	store, err := NewChromemStore(embeddings.NewHashEmbedder(128))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}

	docs := []Document{
		{
			ID:       DocumentID(DocTypeFact, 0),
			Content:  "The ocean is home to the largest animal ever: the Blue Whale.",
			Metadata: DocumentMetadata{Type: DocTypeFact, Index: 0},
		},
		{
			ID:       DocumentID(DocTypeFact, 1),
			Content:  "Coral reefs support 25% of marine species despite covering <1% of ocean floor.",
			Metadata: DocumentMetadata{Type: DocTypeFact, Index: 1},
		},
		{
			ID:       DocumentID(DocTypeGallery, 0),
			Content:  "Blue whales are the largest animals ever known to have lived on Earth.",
			Metadata: DocumentMetadata{Type: DocTypeGallery, Icon: "🐋", Index: 0},
		},
	}
	if err := store.AddDocuments(context.Background(), docs); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	return store
}

func TestChromemStore_AddAndSearch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if count := store.Count(); count != 3 {
		t.Errorf("Count: got %d, want 3", count)
	}

	results, err := store.Search(ctx, "blue whale", 2, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Search returned no results")
	}
	if len(results) > 2 {
		t.Errorf("Search returned %d results, expected at most 2", len(results))
	}
	for _, r := range results {
		if !strings.Contains(strings.ToLower(r.Document.Content), "whale") {
			t.Errorf("unexpected top result %q", r.Document.Content)
		}
		if r.Similarity <= 0 {
			t.Error("result has non-positive similarity")
		}
	}
}

func TestChromemStore_SearchWithFilter(t *testing.T) {
	store := newTestStore(t)
	gallery := DocTypeGallery

	results, err := store.Search(context.Background(), "whale", 10, &SearchFilter{Type: &gallery})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	got := results[0].Document
	if got.Metadata.Type != DocTypeGallery || got.Metadata.Icon != "🐋" {
		t.Errorf("metadata = %+v", got.Metadata)
	}

	other := DocumentType("other")
	results, err = store.Search(context.Background(), "whale", 10, &SearchFilter{Type: &other})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for empty type, want 0", len(results))
	}
}

func TestChromemStore_EmptyQuery(t *testing.T) {
	store := newTestStore(t)
	for _, q := range []string{"", "   ", "?!"} {
		results, err := store.Search(context.Background(), q, 5, nil)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q) returned %d results", q, len(results))
		}
	}
}

func TestChromemStore_EmptyStore(t *testing.T) {
	store, err := NewChromemStore(embeddings.NewHashEmbedder(64))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}
	results, err := store.Search(context.Background(), "whale", 5, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
}

func TestFormatResults(t *testing.T) {
	if got := FormatResults(nil); got != "No results found." {
		t.Errorf("FormatResults(nil) = %q", got)
	}
	out := FormatResults([]SearchResult{{
		Document:   Document{Content: "Sharks have been around longer than trees!", Metadata: DocumentMetadata{Type: DocTypeFact}},
		Similarity: 0.5,
	}})
	if !strings.Contains(out, "Sharks") || !strings.Contains(out, "fact") {
		t.Errorf("FormatResults = %q", out)
	}
}
