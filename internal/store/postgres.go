package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andras/talent-sonar/internal/embedding"
	"github.com/andras/talent-sonar/internal/types"
	"github.com/andras/talent-sonar/internal/vectorindex"
)

// Postgres is a pgx-backed Repository. Structured fields (skills,
// experience, requirements, skill matches) live in jsonb columns; embeddings
// in float8[] so similarity search can load them without re-embedding.
type Postgres struct {
	pool     *pgxpool.Pool
	embedder embedding.Provider
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string, embedder embedding.Provider) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool, embedder: embedder}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// AddCandidate validates the candidate, embeds its search text, and upserts it.
func (p *Postgres) AddCandidate(ctx context.Context, c *types.Candidate) error {
	if err := types.ValidateCandidate(c); err != nil {
		return &ErrDataIntegrity{Entity: "candidate", Cause: err}
	}

	vec, err := p.embedder.Embed(types.CandidateSearchText(c))
	if err != nil {
		return err
	}
	c.Embedding = vec

	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO candidates (id, doc, embedding, is_internal, availability)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET doc = $2, embedding = $3, is_internal = $4, availability = $5, updated_at = NOW()`,
		c.ID, doc, c.Embedding, c.IsInternal, string(c.AvailabilityStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", c.ID, err)
	}
	return nil
}

// GetCandidate returns the candidate or ErrCandidateNotFound.
func (p *Postgres) GetCandidate(ctx context.Context, id string) (*types.Candidate, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM candidates WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrCandidateNotFound{CandidateID: id}
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var c types.Candidate
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	return &c, nil
}

// ListCandidates returns all candidates ordered by creation time.
func (p *Postgres) ListCandidates(ctx context.Context) ([]*types.Candidate, error) {
	rows, err := p.pool.Query(ctx, `SELECT doc FROM candidates ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []*types.Candidate
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		var c types.Candidate
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// AddJob validates the job, embeds its search text, and upserts it.
func (p *Postgres) AddJob(ctx context.Context, j *types.Job) error {
	if err := types.ValidateJob(j); err != nil {
		return &ErrDataIntegrity{Entity: "job", Cause: err}
	}

	vec, err := p.embedder.Embed(types.JobSearchText(j))
	if err != nil {
		return err
	}
	j.Embedding = vec

	doc, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO jobs (id, doc, embedding, status)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET doc = $2, embedding = $3, status = $4, updated_at = NOW()`,
		j.ID, doc, j.Embedding, string(j.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to save job %s: %w", j.ID, err)
	}
	return nil
}

// GetJob returns the job or ErrJobNotFound.
func (p *Postgres) GetJob(ctx context.Context, id string) (*types.Job, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM jobs WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrJobNotFound{JobID: id}
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}

	var j types.Job
	if err := json.Unmarshal(doc, &j); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", id, err)
	}
	return &j, nil
}

// ListJobs returns all jobs ordered by creation time.
func (p *Postgres) ListJobs(ctx context.Context) ([]*types.Job, error) {
	rows, err := p.pool.Query(ctx, `SELECT doc FROM jobs ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var out []*types.Job
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		var j types.Job
		if err := json.Unmarshal(doc, &j); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job: %w", err)
		}
		out = append(out, &j)
	}
	return out, rows.Err()
}

// FindSimilarCandidates loads stored embeddings and ranks them by cosine
// similarity in process. A linear scan matches the reference-scale contract;
// swapping in pgvector later only changes this method.
func (p *Postgres) FindSimilarCandidates(ctx context.Context, embeddingVec []float64, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := p.pool.Query(ctx, `SELECT id, embedding FROM candidates ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate embeddings: %w", err)
	}
	defer rows.Close()

	type scored struct {
		id    string
		score float64
	}
	var results []scored
	for rows.Next() {
		var id string
		var vec []float64
		if err := rows.Scan(&id, &vec); err != nil {
			return nil, fmt.Errorf("failed to scan embedding: %w", err)
		}
		if len(vec) != len(embeddingVec) {
			return nil, &vectorindex.ErrDimensionMismatch{Want: len(vec), Got: len(embeddingVec)}
		}
		results = append(results, scored{id: id, score: vectorindex.Cosine(embeddingVec, vec)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if limit > len(results) {
		limit = len(results)
	}
	ids := make([]string, limit)
	for i := 0; i < limit; i++ {
		ids[i] = results[i].id
	}
	return ids, nil
}

// SaveMatch validates and upserts a match snapshot.
func (p *Postgres) SaveMatch(ctx context.Context, m *types.Match) error {
	if err := types.ValidateMatch(m); err != nil {
		return &ErrDataIntegrity{Entity: "match", Cause: err}
	}

	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO matches (id, job_id, candidate_id, doc, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET doc = $4, status = $5`,
		m.ID, m.JobID, m.CandidateID, doc, string(m.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to save match %s: %w", m.ID, err)
	}
	return nil
}

// GetMatch returns the match or ErrMatchNotFound.
func (p *Postgres) GetMatch(ctx context.Context, id string) (*types.Match, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM matches WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrMatchNotFound{MatchID: id}
		}
		return nil, fmt.Errorf("failed to get match %s: %w", id, err)
	}

	var m types.Match
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", id, err)
	}
	return &m, nil
}

// MatchesForJob returns matches for a job in save order.
func (p *Postgres) MatchesForJob(ctx context.Context, jobID string) ([]*types.Match, error) {
	rows, err := p.pool.Query(ctx, `SELECT doc FROM matches WHERE job_id = $1 ORDER BY created_at ASC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for job %s: %w", jobID, err)
	}
	defer rows.Close()

	var out []*types.Match
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		var m types.Match
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// UpdateMatchStatus loads the match, applies the transition, and persists it.
func (p *Postgres) UpdateMatchStatus(ctx context.Context, id string, status types.MatchStatus) error {
	m, err := p.GetMatch(ctx, id)
	if err != nil {
		return err
	}
	if err := types.UpdateMatchStatus(m, status); err != nil {
		return err
	}

	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`UPDATE matches SET doc = $1, status = $2 WHERE id = $3`,
		doc, string(m.Status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", id, err)
	}
	return nil
}

// Schema is the DDL for the Postgres repository, applied by `talent_sonar seed --init`.
const Schema = `
CREATE TABLE IF NOT EXISTS candidates (
    id           TEXT PRIMARY KEY,
    doc          JSONB NOT NULL,
    embedding    FLOAT8[] NOT NULL,
    is_internal  BOOLEAN NOT NULL DEFAULT FALSE,
    availability TEXT NOT NULL DEFAULT 'available',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
    id         TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    embedding  FLOAT8[] NOT NULL,
    status     TEXT NOT NULL DEFAULT 'open',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS matches (
    id           TEXT PRIMARY KEY,
    job_id       TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
    candidate_id TEXT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
    doc          JSONB NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_matches_job ON matches(job_id);
`

// InitSchema creates the tables if they do not exist.
func (p *Postgres) InitSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
