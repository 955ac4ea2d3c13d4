// Package embedding turns free text into fixed-length vectors for
// similarity search.
package embedding

// Provider generates vector embeddings from text. Implementations must be
// deterministic: equal input yields equal output.
type Provider interface {
	// Embed returns a vector embedding for the given text. Empty text yields
	// the zero vector, not an error; callers must treat a zero vector as
	// "no similarity" rather than dividing by zero.
	Embed(text string) ([]float64, error)

	// Dimension returns the dimensionality of the output vectors.
	Dimension() int
}
