package embeddings

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"
)

// ToChromemFunc adapts e to the single-text function chromem-go calls for
// documents and queries. A vector of the wrong size is an error, so a
// misconfigured embedder cannot corrupt the collection.
func ToChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vecs, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, fmt.Errorf("%s: embedding text: %w", e.Name(), err)
		}
		if len(vecs) != 1 {
			return nil, fmt.Errorf("%s: got %d vectors for one text", e.Name(), len(vecs))
		}
		if len(vecs[0]) != e.Dimensions() {
			return nil, fmt.Errorf("%s: vector has %d dimensions, want %d", e.Name(), len(vecs[0]), e.Dimensions())
		}
		return vecs[0], nil
	}
}
