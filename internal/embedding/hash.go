package embedding

import (
	"math"
	"strings"
)

// DefaultDimension is the vector size used by the hash provider.
const DefaultDimension = 384

// HashProvider is a cheap, deterministic bag-of-characters embedder. It is a
// placeholder for a learned embedding model: it captures enough lexical
// overlap for candidate/job narrowing while requiring no network access.
// Production deployments can swap in a real model behind the same interface.
type HashProvider struct {
	dimension int
}

// NewHashProvider returns a hash provider with the default dimension.
func NewHashProvider() *HashProvider {
	return &HashProvider{dimension: DefaultDimension}
}

// Dimension returns the vector size.
func (p *HashProvider) Dimension() int {
	return p.dimension
}

// Embed accumulates character codes into buckets, weighted down by word
// position, and normalizes to unit length. Empty or whitespace-only text
// produces the zero vector.
func (p *HashProvider) Embed(text string) ([]float64, error) {
	vec := make([]float64, p.dimension)
	words := strings.Fields(strings.ToLower(text))

	for i, word := range words {
		for _, r := range word {
			idx := (int(r) * (i + 1)) % p.dimension
			if idx < 0 {
				idx += p.dimension
			}
			vec[idx] += 1.0 / float64(i+1)
		}
	}

	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	magnitude := math.Sqrt(sumSquares)
	if magnitude == 0 {
		return vec, nil
	}
	for i := range vec {
		vec[i] /= magnitude
	}
	return vec, nil
}
