package matching

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andras/talent-sonar/internal/embedding"
	"github.com/andras/talent-sonar/internal/store"
	"github.com/andras/talent-sonar/internal/types"
)

// stubReasoner returns canned explanations, or fails every call.
type stubReasoner struct {
	fail    bool
	replies []string
	calls   int
}

func (s *stubReasoner) ReasonBatch(_ context.Context, prompts []string) ([]string, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("generation unavailable")
	}
	if s.replies != nil {
		return s.replies, nil
	}
	out := make([]string, len(prompts))
	for i := range out {
		out[i] = "Looks like a strong fit."
	}
	return out, nil
}

func seededRepo(t *testing.T) *store.Memory {
	t.Helper()
	repo := store.NewMemory(embedding.NewHashProvider())
	require.NoError(t, store.SeedDemoData(context.Background(), repo))
	return repo
}

func TestEngine_MatchRanksSeededCandidates(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, &stubReasoner{}, nil)

	result, err := engine.Match(context.Background(), "job_1", DefaultOptions())
	require.NoError(t, err)

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "job_1", result.JobID)
	assert.Equal(t, 2, result.TotalCandidatesEvaluated)

	// John Smith holds every required full-stack skill; he must lead.
	assert.Equal(t, "candidate_1", result.Matches[0].CandidateID)
	assert.True(t, sort.SliceIsSorted(result.Matches, func(i, j int) bool {
		return result.Matches[i].OverallScore > result.Matches[j].OverallScore
	}))
}

func TestEngine_MatchHonorsMinScore(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)

	opts := DefaultOptions()
	opts.MinScore = 0.99
	result, err := engine.Match(context.Background(), "job_2", opts)
	require.NoError(t, err)

	for _, m := range result.Matches {
		assert.GreaterOrEqual(t, m.OverallScore, opts.MinScore)
	}
}

func TestEngine_MatchHonorsMaxResults(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)

	opts := DefaultOptions()
	opts.MaxResults = 1
	opts.MinScore = 0
	result, err := engine.Match(context.Background(), "job_1", opts)
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, 2, result.TotalCandidatesEvaluated)
}

func TestEngine_ExcludesUnavailableCandidates(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	busy, err := repo.GetCandidate(ctx, "candidate_1")
	require.NoError(t, err)
	busy.AvailabilityStatus = types.NotAvailable
	require.NoError(t, repo.AddCandidate(ctx, busy))

	engine := NewEngine(repo, nil, nil)
	opts := DefaultOptions()
	opts.MinScore = 0
	result, err := engine.Match(ctx, "job_1", opts)
	require.NoError(t, err)

	for _, m := range result.Matches {
		assert.NotEqual(t, "candidate_1", m.CandidateID)
	}
}

func TestEngine_SourceFilters(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)
	ctx := context.Background()

	opts := DefaultOptions()
	opts.MinScore = 0
	opts.IncludeExternal = false
	result, err := engine.Match(ctx, "job_1", opts)
	require.NoError(t, err)
	for _, m := range result.Matches {
		assert.Equal(t, types.MatchInternal, m.MatchType)
	}

	opts = DefaultOptions()
	opts.MinScore = 0
	opts.IncludeInternal = false
	result, err = engine.Match(ctx, "job_1", opts)
	require.NoError(t, err)
	for _, m := range result.Matches {
		assert.Equal(t, types.MatchExternal, m.MatchType)
	}
}

func TestEngine_InvalidOptions(t *testing.T) {
	engine := NewEngine(seededRepo(t), nil, nil)
	ctx := context.Background()

	var invalid *ErrInvalidInput

	opts := DefaultOptions()
	opts.MaxResults = 0
	_, err := engine.Match(ctx, "job_1", opts)
	require.ErrorAs(t, err, &invalid)

	opts = DefaultOptions()
	opts.MinScore = 1.5
	_, err = engine.Match(ctx, "job_1", opts)
	require.ErrorAs(t, err, &invalid)

	opts = DefaultOptions()
	opts.IncludeInternal = false
	opts.IncludeExternal = false
	_, err = engine.Match(ctx, "job_1", opts)
	require.ErrorAs(t, err, &invalid)
}

func TestEngine_UnknownJob(t *testing.T) {
	engine := NewEngine(seededRepo(t), nil, nil)

	_, err := engine.Match(context.Background(), "no_such_job", DefaultOptions())
	var notFound *store.ErrJobNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no_such_job", notFound.JobID)
}

func TestEngine_ReasonerFailureFallsBack(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, &stubReasoner{fail: true}, nil)

	result, err := engine.Match(context.Background(), "job_1", DefaultOptions())
	require.NoError(t, err, "reasoning failure must not fail the request")

	for _, m := range result.Matches {
		assert.NotEmpty(t, m.Reasoning, "fallback reasoning must be present")
	}
}

func TestEngine_BlankReasoningsFallBackIndividually(t *testing.T) {
	repo := seededRepo(t)
	reasoner := &stubReasoner{replies: []string{"LLM says great fit.", ""}}
	engine := NewEngine(repo, reasoner, nil)

	opts := DefaultOptions()
	opts.MinScore = 0
	result, err := engine.Match(context.Background(), "job_1", opts)
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)

	assert.Equal(t, "LLM says great fit.", result.Matches[0].Reasoning)
	assert.NotEmpty(t, result.Matches[1].Reasoning)
	assert.NotEqual(t, "LLM says great fit.", result.Matches[1].Reasoning)
}

func TestEngine_NilReasonerUsesFallback(t *testing.T) {
	engine := NewEngine(seededRepo(t), nil, nil)

	result, err := engine.Match(context.Background(), "job_1", DefaultOptions())
	require.NoError(t, err)
	for _, m := range result.Matches {
		assert.NotEmpty(t, m.Reasoning)
	}
}

func TestEngine_MatchesArePersisted(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)
	ctx := context.Background()

	result, err := engine.Match(ctx, "job_1", DefaultOptions())
	require.NoError(t, err)

	saved, err := repo.MatchesForJob(ctx, "job_1")
	require.NoError(t, err)
	assert.Len(t, saved, len(result.Matches))
}

func TestEngine_ScoresAreIdempotent(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)
	ctx := context.Background()

	first, err := engine.Match(ctx, "job_1", DefaultOptions())
	require.NoError(t, err)
	second, err := engine.Match(ctx, "job_1", DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, len(first.Matches), len(second.Matches))
	for i := range first.Matches {
		assert.Equal(t, first.Matches[i].CandidateID, second.Matches[i].CandidateID)
		assert.Equal(t, first.Matches[i].OverallScore, second.Matches[i].OverallScore)
	}
}

func TestEngine_WeightedSkillsOption(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)
	ctx := context.Background()

	opts := DefaultOptions()
	opts.MinScore = 0
	opts.WeightedSkills = true
	result, err := engine.Match(ctx, "job_1", opts)
	require.NoError(t, err)

	for _, m := range result.Matches {
		assert.GreaterOrEqual(t, m.OverallScore, 0.0)
		assert.LessOrEqual(t, m.OverallScore, 1.0)
		assert.LessOrEqual(t, m.Confidence, 1.0)
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	repo := seededRepo(t)
	engine := NewEngine(repo, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Match(ctx, "job_1", DefaultOptions())
	assert.Error(t, err)
}
