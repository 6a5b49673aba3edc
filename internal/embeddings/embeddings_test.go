package embeddings

import (
	"context"
	"math"
	"testing"
)

func dot(a, b []float32) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func TestHashEmbedderNormalized(t *testing.T) {
	e := NewHashEmbedder(0)
	if e.Dimensions() != DefaultDimensions {
		t.Fatalf("Dimensions() = %d", e.Dimensions())
	}
	vecs, err := e.Embed(context.Background(), []string{"Blue whales are the largest animals", ""})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if n := math.Sqrt(dot(vecs[0], vecs[0])); math.Abs(n-1) > 1e-5 {
		t.Errorf("norm = %v, want 1", n)
	}
	if n := dot(vecs[1], vecs[1]); n != 0 {
		t.Errorf("empty text norm = %v, want 0", n)
	}
}

func TestHashEmbedderSimilarity(t *testing.T) {
	e := NewHashEmbedder(128)
	vecs, _ := e.Embed(context.Background(), []string{
		"whale",
		"The ocean is home to the largest animal ever: the Blue Whale.",
		"Coral reefs support 25% of marine species.",
	})
	if dot(vecs[0], vecs[1]) <= dot(vecs[0], vecs[2]) {
		t.Error("query should be closer to the whale fact than to the coral fact")
	}

	again, _ := e.Embed(context.Background(), []string{"whale"})
	for i := range again[0] {
		if again[0][i] != vecs[0][i] {
			t.Fatal("embedding is not deterministic")
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("Did you know? Oceans produce 70% of our oxygen!")
	want := []string{"did", "you", "know", "oceans", "produce", "70", "of", "our", "oxygen"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// fixedEmbedder returns the same vectors for any input.
type fixedEmbedder struct {
	dims int
	vecs [][]float32
}

func (f fixedEmbedder) Embed(context.Context, []string) ([][]float32, error) { return f.vecs, nil }
func (f fixedEmbedder) Dimensions() int                                      { return f.dims }
func (f fixedEmbedder) Name() string                                         { return "fixed" }

func TestToChromemFunc(t *testing.T) {
	fn := ToChromemFunc(NewHashEmbedder(32))
	vec, err := fn(context.Background(), "Coral reefs")
	if err != nil {
		t.Fatalf("embedding: %v", err)
	}
	if len(vec) != 32 {
		t.Errorf("len = %d, want 32", len(vec))
	}

	tests := []struct {
		name string
		e    Embedder
	}{
		{"no vectors", fixedEmbedder{dims: 2}},
		{"two vectors", fixedEmbedder{dims: 2, vecs: [][]float32{{1, 0}, {0, 1}}}},
		{"wrong size", fixedEmbedder{dims: 3, vecs: [][]float32{{1, 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToChromemFunc(tt.e)(context.Background(), "x"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
