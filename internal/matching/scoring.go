package matching

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andras/talent-sonar/internal/types"
)

// Weights control how component sub-scores combine into the overall score.
type Weights struct {
	Skills       float64
	Experience   float64
	Location     float64
	Availability float64
}

// DefaultWeights is the production weighting. Skills dominate; availability
// is a small nudge.
func DefaultWeights() Weights {
	return Weights{
		Skills:       0.5,
		Experience:   0.25,
		Location:     0.15,
		Availability: 0.10,
	}
}

// confidenceBonus is added on top of the overall score to form confidence,
// capped at 1.0.
const confidenceBonus = 0.1

// ExperienceScore compares the candidate's total years of experience against
// the years the job's seniority band expects. Full coverage earns 1.0, with
// partial credit down to 0.3 below half coverage. A band expecting 0 years is
// always fully satisfied.
func ExperienceScore(c *types.Candidate, j *types.Job) float64 {
	required := j.ExperienceLevel.RequiredYears()
	if required <= 0 {
		return 1.0
	}

	years := types.TotalExperienceYears(c)
	switch {
	case years >= required:
		return 1.0
	case years >= required*0.7:
		return 0.8
	case years >= required*0.5:
		return 0.6
	default:
		return 0.3
	}
}

// LocationScore compares candidate and job locations case-insensitively.
// "remote" on either side scores nearly full; a location mismatch is a
// penalty, not a disqualifier.
func LocationScore(c *types.Candidate, j *types.Job) float64 {
	candidateLoc := strings.ToLower(strings.TrimSpace(c.Location))
	jobLoc := strings.ToLower(strings.TrimSpace(j.Location))

	switch {
	case candidateLoc == jobLoc:
		return 1.0
	case strings.Contains(candidateLoc, "remote"), strings.Contains(jobLoc, "remote"):
		return 0.9
	default:
		return 0.5
	}
}

// AvailabilityScore maps the candidate's availability to a score. Unknown
// statuses score a neutral 0.5.
func AvailabilityScore(c *types.Candidate) float64 {
	switch c.AvailabilityStatus {
	case types.Available:
		return 1.0
	case types.PartiallyAvailable:
		return 0.7
	case types.NotAvailable:
		return 0.1
	default:
		return 0.5
	}
}

// OverallScore combines the component sub-scores under the given weights and
// clamps the result to [0,1].
func OverallScore(skills, experience, location, availability float64, w Weights) float64 {
	score := skills*w.Skills + experience*w.Experience + location*w.Location + availability*w.Availability
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// matchTypeFor classifies the candidate relative to the hiring company.
func matchTypeFor(c *types.Candidate) types.MatchType {
	if c.IsInternal {
		return types.MatchInternal
	}
	return types.MatchExternal
}

// BuildMatch evaluates one candidate against one job and produces a complete
// match snapshot, minus the reasoning text which the engine fills in. The
// snapshot is deterministic for a given candidate/job pair and weights.
func BuildMatch(c *types.Candidate, j *types.Job, w Weights) *types.Match {
	skillMatches := ScoreSkills(c, j)
	skills := SkillScore(skillMatches)
	experience := ExperienceScore(c, j)
	location := LocationScore(c, j)
	availability := AvailabilityScore(c)

	overall := OverallScore(skills, experience, location, availability, w)
	confidence := overall + confidenceBonus
	if confidence > 1.0 {
		confidence = 1.0
	}

	return &types.Match{
		ID:                uuid.NewString(),
		CandidateID:       c.ID,
		JobID:             j.ID,
		OverallScore:      overall,
		SkillMatches:      skillMatches,
		ExperienceScore:   experience,
		LocationScore:     location,
		AvailabilityScore: availability,
		Confidence:        confidence,
		MatchType:         matchTypeFor(c),
		CreatedAt:         time.Now(),
		Status:            types.MatchPending,
	}
}
