// Package vectorindex provides an in-memory cosine-similarity index used to
// narrow a large candidate pool before full scoring.
package vectorindex

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Namespace separates vector populations inside one index.
type Namespace string

// Namespaces used by the matching pipeline.
const (
	NamespaceCandidates Namespace = "candidates"
	NamespaceJobs       Namespace = "jobs"
)

// ErrDimensionMismatch indicates two vectors of different lengths were
// compared or an upsert did not match the namespace's established dimension.
type ErrDimensionMismatch struct {
	Want int
	Got  int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("vector dimension mismatch: want %d, got %d", e.Want, e.Got)
}

// Result is one nearest-neighbor hit.
type Result struct {
	ID    string
	Score float64
}

type entry struct {
	id     string
	vector []float64
	// order preserves insertion sequence for stable tie-breaking.
	order int
}

// Index is a linear-scan similarity index. Upserts are mutually exclusive;
// TopK reads run concurrently and always observe whole vectors, never torn
// ones, because vectors are copied on write.
type Index struct {
	mu      sync.RWMutex
	entries map[Namespace][]entry
	lookup  map[Namespace]map[string]int
	next    int
}

// New creates an empty index.
func New() *Index {
	return &Index{
		entries: make(map[Namespace][]entry),
		lookup:  make(map[Namespace]map[string]int),
	}
}

// Upsert stores or replaces the vector for id in the namespace. Replacing a
// vector keeps the original insertion order so tie-breaking stays stable.
func (ix *Index) Upsert(ns Namespace, id string, vector []float64) error {
	if len(vector) == 0 {
		return &ErrDimensionMismatch{Want: 1, Got: 0}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if existing := ix.entries[ns]; len(existing) > 0 {
		if want := len(existing[0].vector); want != len(vector) {
			return &ErrDimensionMismatch{Want: want, Got: len(vector)}
		}
	}

	copied := make([]float64, len(vector))
	copy(copied, vector)

	if ix.lookup[ns] == nil {
		ix.lookup[ns] = make(map[string]int)
	}
	if pos, ok := ix.lookup[ns][id]; ok {
		ix.entries[ns][pos].vector = copied
		return nil
	}

	ix.lookup[ns][id] = len(ix.entries[ns])
	ix.entries[ns] = append(ix.entries[ns], entry{id: id, vector: copied, order: ix.next})
	ix.next++
	return nil
}

// Len returns the number of vectors stored in the namespace.
func (ix *Index) Len(ns Namespace) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries[ns])
}

// TopK returns up to k entries ordered by descending cosine similarity to
// the query. Ties break on insertion order. A zero-magnitude query or stored
// vector scores 0.
func (ix *Index) TopK(ns Namespace, query []float64, k int) ([]Result, error) {
	if k <= 0 {
		return nil, nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stored := ix.entries[ns]
	if len(stored) == 0 {
		return nil, nil
	}
	if want := len(stored[0].vector); want != len(query) {
		return nil, &ErrDimensionMismatch{Want: want, Got: len(query)}
	}

	type scored struct {
		Result
		order int
	}
	results := make([]scored, 0, len(stored))
	for _, e := range stored {
		results = append(results, scored{
			Result: Result{ID: e.id, Score: Cosine(query, e.vector)},
			order:  e.order,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].order < results[j].order
	})

	if k > len(results) {
		k = len(results)
	}
	out := make([]Result, k)
	for i := 0; i < k; i++ {
		out[i] = results[i].Result
	}
	return out, nil
}

// Cosine computes the cosine similarity of two equal-length vectors.
// Vectors with zero magnitude score 0, as do mismatched lengths; the index
// rejects mismatches with ErrDimensionMismatch before getting here.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	magnitude := math.Sqrt(normA) * math.Sqrt(normB)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude
}
