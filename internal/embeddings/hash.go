package embeddings

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// DefaultDimensions is the vector size used by NewHashEmbedder when 0 is given.
const DefaultDimensions = 256

// HashEmbedder produces deterministic bag-of-words vectors locally, without
// any model or network access. Each lower-cased word and each of its
// character trigrams is hashed into a bucket; the vector is L2-normalized.
type HashEmbedder struct {
	dims int
}

// NewHashEmbedder creates a hashing embedder with dims buckets.
func NewHashEmbedder(dims int) *HashEmbedder {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	return &HashEmbedder{dims: dims}
}

// Dimensions returns the number of hash buckets.
func (h *HashEmbedder) Dimensions() int { return h.dims }

// Name returns "hash".
func (h *HashEmbedder) Name() string { return "hash" }

// Embed never fails; empty or punctuation-only text yields the zero vector.
func (h *HashEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = h.vector(text)
	}
	return out, nil
}

// Tokens splits text into lower-cased words of letters and digits.
func Tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *HashEmbedder) vector(text string) []float32 {
	vec := make([]float32, h.dims)
	for _, tok := range Tokens(text) {
		vec[h.bucket(tok)] += 2
		padded := []rune("^" + tok + "$")
		for i := 0; i+3 <= len(padded); i++ {
			vec[h.bucket(string(padded[i:i+3]))]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}

func (h *HashEmbedder) bucket(s string) int {
	f := fnv.New32a()
	f.Write([]byte(s))
	return int(f.Sum32() % uint32(h.dims))
}
