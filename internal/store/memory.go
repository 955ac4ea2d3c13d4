package store

import (
	"context"
	"sync"

	"github.com/andras/talent-sonar/internal/embedding"
	"github.com/andras/talent-sonar/internal/types"
	"github.com/andras/talent-sonar/internal/vectorindex"
)

// Memory is a map-backed Repository with an embedded similarity index.
// It backs tests and demo runs; production deployments use Postgres behind
// the same interface.
type Memory struct {
	mu       sync.RWMutex
	embedder embedding.Provider
	index    *vectorindex.Index

	candidates map[string]*types.Candidate
	jobs       map[string]*types.Job
	matches    map[string]*types.Match
	// matchOrder preserves insertion order for MatchesForJob.
	matchOrder []string
}

// NewMemory creates an empty in-memory repository using the given embedder.
func NewMemory(embedder embedding.Provider) *Memory {
	return &Memory{
		embedder:   embedder,
		index:      vectorindex.New(),
		candidates: make(map[string]*types.Candidate),
		jobs:       make(map[string]*types.Job),
		matches:    make(map[string]*types.Match),
	}
}

// AddCandidate validates the candidate, embeds its search text, and stores it.
func (m *Memory) AddCandidate(ctx context.Context, c *types.Candidate) error {
	if err := types.ValidateCandidate(c); err != nil {
		return &ErrDataIntegrity{Entity: "candidate", Cause: err}
	}

	vec, err := m.embedder.Embed(types.CandidateSearchText(c))
	if err != nil {
		return err
	}
	c.Embedding = vec

	if err := m.index.Upsert(vectorindex.NamespaceCandidates, c.ID, vec); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates[c.ID] = c
	return nil
}

// GetCandidate returns the candidate or ErrCandidateNotFound.
func (m *Memory) GetCandidate(_ context.Context, id string) (*types.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.candidates[id]
	if !ok {
		return nil, &ErrCandidateNotFound{CandidateID: id}
	}
	return c, nil
}

// ListCandidates returns all stored candidates in unspecified order.
func (m *Memory) ListCandidates(_ context.Context) ([]*types.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*types.Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		out = append(out, c)
	}
	return out, nil
}

// AddJob validates the job, embeds its search text, and stores it.
func (m *Memory) AddJob(ctx context.Context, j *types.Job) error {
	if err := types.ValidateJob(j); err != nil {
		return &ErrDataIntegrity{Entity: "job", Cause: err}
	}

	vec, err := m.embedder.Embed(types.JobSearchText(j))
	if err != nil {
		return err
	}
	j.Embedding = vec

	if err := m.index.Upsert(vectorindex.NamespaceJobs, j.ID, vec); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[j.ID] = j
	return nil
}

// GetJob returns the job or ErrJobNotFound.
func (m *Memory) GetJob(_ context.Context, id string) (*types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, &ErrJobNotFound{JobID: id}
	}
	return j, nil
}

// ListJobs returns all stored jobs in unspecified order.
func (m *Memory) ListJobs(_ context.Context) ([]*types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*types.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

// FindSimilarCandidates queries the candidate namespace of the index.
func (m *Memory) FindSimilarCandidates(_ context.Context, embeddingVec []float64, limit int) ([]string, error) {
	results, err := m.index.TopK(vectorindex.NamespaceCandidates, embeddingVec, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids, nil
}

// SaveMatch validates and stores a match snapshot.
func (m *Memory) SaveMatch(_ context.Context, match *types.Match) error {
	if err := types.ValidateMatch(match); err != nil {
		return &ErrDataIntegrity{Entity: "match", Cause: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.matches[match.ID]; !exists {
		m.matchOrder = append(m.matchOrder, match.ID)
	}
	m.matches[match.ID] = match
	return nil
}

// GetMatch returns the match or ErrMatchNotFound.
func (m *Memory) GetMatch(_ context.Context, id string) (*types.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	match, ok := m.matches[id]
	if !ok {
		return nil, &ErrMatchNotFound{MatchID: id}
	}
	return match, nil
}

// MatchesForJob returns matches for the job in the order they were saved.
func (m *Memory) MatchesForJob(_ context.Context, jobID string) ([]*types.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*types.Match
	for _, id := range m.matchOrder {
		if match := m.matches[id]; match != nil && match.JobID == jobID {
			out = append(out, match)
		}
	}
	return out, nil
}

// UpdateMatchStatus applies a status transition to a stored match.
func (m *Memory) UpdateMatchStatus(_ context.Context, id string, status types.MatchStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	match, ok := m.matches[id]
	if !ok {
		return &ErrMatchNotFound{MatchID: id}
	}
	return types.UpdateMatchStatus(match, status)
}
