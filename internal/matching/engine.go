package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andras/talent-sonar/internal/store"
	"github.com/andras/talent-sonar/internal/types"
)

// Engine defaults.
const (
	defaultPoolSize   = 50
	defaultWorkers    = 4
	defaultMaxResults = 20
	defaultMinScore   = 0.3
)

// Engine runs the matching pipeline for one job at a time: similarity search
// narrows the candidate pool, scoring evaluates each pooled candidate, and
// the reasoner explains the survivors.
type Engine struct {
	repo     store.Repository
	reasoner Reasoner
	logger   *zap.Logger
	weights  Weights
	poolSize int
	workers  int
}

// NewEngine creates an engine with production defaults. reasoner may be nil,
// in which case every match gets a deterministic explanation.
func NewEngine(repo store.Repository, reasoner Reasoner, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		repo:     repo,
		reasoner: reasoner,
		logger:   logger,
		weights:  DefaultWeights(),
		poolSize: defaultPoolSize,
		workers:  defaultWorkers,
	}
}

// SetWeights overrides the scoring weights for subsequent requests.
func (e *Engine) SetWeights(w Weights) { e.weights = w }

// SetPoolSize overrides how many candidates similarity search pre-selects.
func (e *Engine) SetPoolSize(n int) {
	if n > 0 {
		e.poolSize = n
	}
}

// Options control one matching request.
type Options struct {
	MaxResults      int
	MinScore        float64
	IncludeInternal bool
	IncludeExternal bool
	// WeightedSkills switches the skill aggregate from the unweighted mean
	// to the requirement-weighted mean.
	WeightedSkills bool
}

// DefaultOptions returns the standard request parameters.
func DefaultOptions() Options {
	return Options{
		MaxResults:      defaultMaxResults,
		MinScore:        defaultMinScore,
		IncludeInternal: true,
		IncludeExternal: true,
	}
}

func (o Options) validate() error {
	if o.MaxResults <= 0 {
		return &ErrInvalidInput{Field: "max_results", Reason: "must be positive"}
	}
	if o.MinScore < 0 || o.MinScore > 1 {
		return &ErrInvalidInput{Field: "min_score", Reason: "must be within [0,1]"}
	}
	if !o.IncludeInternal && !o.IncludeExternal {
		return &ErrInvalidInput{Field: "include_internal/include_external", Reason: "at least one candidate source must be included"}
	}
	return nil
}

// Result is the outcome of one matching request. Matches are sorted by
// descending overall score and already persisted.
type Result struct {
	JobID                    string         `json:"job_id"`
	Matches                  []*types.Match `json:"matches"`
	TotalCandidatesEvaluated int            `json:"total_candidates_evaluated"`
	ProcessingTime           time.Duration  `json:"processing_time"`
}

// Match ranks candidates for the given job. The pipeline is: similarity
// pool, per-candidate scoring fanned out across workers, threshold filter,
// sort, truncate, explain, persist.
func (e *Engine) Match(ctx context.Context, jobID string, opts Options) (*Result, error) {
	start := time.Now()

	if err := opts.validate(); err != nil {
		return nil, err
	}

	job, err := e.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	pool, err := e.candidatePool(ctx, job, opts)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("candidate pool assembled",
		zap.String("job_id", jobID),
		zap.Int("pool_size", len(pool)))

	matches, err := e.scorePool(ctx, pool, job, opts)
	if err != nil {
		return nil, err
	}
	evaluated := len(matches)

	// Threshold, then rank. The sort is stable so equal scores keep pool
	// order, which follows similarity order.
	filtered := matches[:0]
	for _, m := range matches {
		if m.OverallScore >= opts.MinScore {
			filtered = append(filtered, m)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].OverallScore > filtered[j].OverallScore
	})
	if len(filtered) > opts.MaxResults {
		filtered = filtered[:opts.MaxResults]
	}

	e.explain(ctx, filtered, pool, job)

	for _, m := range filtered {
		if err := e.repo.SaveMatch(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to persist match for candidate %s: %w", m.CandidateID, err)
		}
	}

	e.logger.Info("matching complete",
		zap.String("job_id", jobID),
		zap.Int("evaluated", evaluated),
		zap.Int("returned", len(filtered)),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		JobID:                    jobID,
		Matches:                  filtered,
		TotalCandidatesEvaluated: evaluated,
		ProcessingTime:           time.Since(start),
	}, nil
}

// candidatePool pre-selects candidates by embedding similarity and applies
// the source and availability filters. Candidates that vanished between the
// similarity index and the repository are skipped with a warning.
func (e *Engine) candidatePool(ctx context.Context, job *types.Job, opts Options) ([]*types.Candidate, error) {
	ids, err := e.repo.FindSimilarCandidates(ctx, job.Embedding, e.poolSize)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	pool := make([]*types.Candidate, 0, len(ids))
	for _, id := range ids {
		c, err := e.repo.GetCandidate(ctx, id)
		if err != nil {
			e.logger.Warn("skipping unfetchable candidate",
				zap.String("candidate_id", id), zap.Error(err))
			continue
		}
		if c.IsInternal && !opts.IncludeInternal {
			continue
		}
		if !c.IsInternal && !opts.IncludeExternal {
			continue
		}
		if c.AvailabilityStatus == types.NotAvailable {
			continue
		}
		pool = append(pool, c)
	}
	return pool, nil
}

// scorePool evaluates every pooled candidate concurrently. Output order
// mirrors pool order regardless of scheduling.
func (e *Engine) scorePool(ctx context.Context, pool []*types.Candidate, job *types.Job, opts Options) ([]*types.Match, error) {
	matches := make([]*types.Match, len(pool))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range pool {
		i, c := i, c
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			m := BuildMatch(c, job, e.weights)
			if opts.WeightedSkills {
				e.reweight(m, job)
			}
			matches[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

// reweight recomputes the overall score and confidence using the
// requirement-weighted skill aggregate.
func (e *Engine) reweight(m *types.Match, job *types.Job) {
	skills := SkillScoreWeighted(m.SkillMatches, job.Requirements)
	m.OverallScore = OverallScore(skills, m.ExperienceScore, m.LocationScore, m.AvailabilityScore, e.weights)
	m.Confidence = m.OverallScore + confidenceBonus
	if m.Confidence > 1.0 {
		m.Confidence = 1.0
	}
}

// explain fills in the reasoning text for each final match, degrading to
// deterministic explanations when the reasoner fails or returns blanks.
func (e *Engine) explain(ctx context.Context, matches []*types.Match, pool []*types.Candidate, job *types.Job) {
	byID := make(map[string]*types.Candidate, len(pool))
	for _, c := range pool {
		byID[c.ID] = c
	}

	var generated []string
	if e.reasoner != nil && len(matches) > 0 {
		prompts := make([]string, len(matches))
		for i, m := range matches {
			prompts[i] = reasoningPrompt(byID[m.CandidateID], job, m)
		}
		out, err := e.reasoner.ReasonBatch(ctx, prompts)
		if err != nil {
			e.logger.Warn("reasoning generation failed, using fallback explanations", zap.Error(err))
		} else {
			generated = out
		}
	}

	for i, m := range matches {
		if i < len(generated) && generated[i] != "" {
			m.Reasoning = generated[i]
			continue
		}
		m.Reasoning = fallbackReasoning(byID[m.CandidateID], job, m)
	}
}
