// Package store provides the repository abstraction that owns candidate,
// job, and match records. The matching core borrows read-only snapshots from
// a Repository for the duration of one ranking request.
package store

import (
	"context"
	"fmt"

	"github.com/andras/talent-sonar/internal/types"
)

// Repository is the persistence collaborator injected into the matching
// pipeline and the outreach drafter. Writes validate entity invariants;
// reads hand out records that callers must not mutate.
type Repository interface {
	// AddCandidate validates and stores a candidate, generating its
	// embedding from the candidate's search text.
	AddCandidate(ctx context.Context, c *types.Candidate) error
	GetCandidate(ctx context.Context, id string) (*types.Candidate, error)
	ListCandidates(ctx context.Context) ([]*types.Candidate, error)

	// AddJob validates and stores a job, generating its embedding from the
	// job's search text.
	AddJob(ctx context.Context, j *types.Job) error
	GetJob(ctx context.Context, id string) (*types.Job, error)
	ListJobs(ctx context.Context) ([]*types.Job, error)

	// FindSimilarCandidates returns candidate ids ordered by descending
	// cosine similarity to the embedding.
	FindSimilarCandidates(ctx context.Context, embedding []float64, limit int) ([]string, error)

	SaveMatch(ctx context.Context, m *types.Match) error
	GetMatch(ctx context.Context, id string) (*types.Match, error)
	MatchesForJob(ctx context.Context, jobID string) ([]*types.Match, error)
	UpdateMatchStatus(ctx context.Context, id string, status types.MatchStatus) error
}

// ErrJobNotFound indicates the job id could not be resolved.
type ErrJobNotFound struct {
	JobID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrCandidateNotFound indicates the candidate id could not be resolved.
type ErrCandidateNotFound struct {
	CandidateID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.CandidateID)
}

// ErrMatchNotFound indicates the match id could not be resolved.
type ErrMatchNotFound struct {
	MatchID string
}

func (e *ErrMatchNotFound) Error() string {
	return fmt.Sprintf("match not found: %s", e.MatchID)
}

// ErrDataIntegrity indicates a record failed its invariant checks at write
// time. Reads never re-validate; rejecting bad writes here is what lets the
// matching core assume validated input.
type ErrDataIntegrity struct {
	Entity string
	Cause  error
}

func (e *ErrDataIntegrity) Error() string {
	return fmt.Sprintf("%s failed validation: %v", e.Entity, e.Cause)
}

func (e *ErrDataIntegrity) Unwrap() error {
	return e.Cause
}
