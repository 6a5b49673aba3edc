// Package embeddings turns fact and caption text into vectors for the
// search index.
package embeddings

import "context"

// Embedder maps texts to vectors of a fixed size.
type Embedder interface {
	// Embed returns one vector per text, in order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions is the length of every returned vector.
	Dimensions() int

	// Name identifies the embedding scheme in logs and collection metadata.
	Name() string
}
