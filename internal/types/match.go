package types

import (
	"fmt"
	"math"
	"time"
)

// SkillMatch is the per-requirement result of comparing one candidate skill
// against one job requirement. Produced fresh for every (candidate, job)
// evaluation and never persisted on its own.
type SkillMatch struct {
	SkillName      string           `json:"skill_name"`
	CandidateLevel ProficiencyLevel `json:"candidate_level"`
	RequiredLevel  ProficiencyLevel `json:"required_level"`
	Score          float64          `json:"score"`
	IsMatch        bool             `json:"is_match"`
}

// MatchType classifies the relationship of the candidate to the company.
type MatchType string

// Match types.
const (
	MatchInternal  MatchType = "internal"
	MatchExternal  MatchType = "external"
	MatchReturning MatchType = "returning_candidate"
)

// MatchStatus is the review lifecycle of a match.
type MatchStatus string

// Match statuses.
const (
	MatchPending   MatchStatus = "pending"
	MatchReviewed  MatchStatus = "reviewed"
	MatchContacted MatchStatus = "contacted"
	MatchRejected  MatchStatus = "rejected"
)

// Match is the scored pairing of one candidate and one job. The scoring
// fields are an immutable snapshot taken at creation; only Status may change
// afterwards, via UpdateMatchStatus.
type Match struct {
	ID                string       `json:"id"`
	CandidateID       string       `json:"candidate_id"`
	JobID             string       `json:"job_id"`
	OverallScore      float64      `json:"overall_score"`
	SkillMatches      []SkillMatch `json:"skill_matches"`
	ExperienceScore   float64      `json:"experience_score"`
	LocationScore     float64      `json:"location_score"`
	AvailabilityScore float64      `json:"availability_score"`
	Reasoning         string       `json:"reasoning"`
	Confidence        float64      `json:"confidence"`
	MatchType         MatchType    `json:"match_type"`
	CreatedAt         time.Time    `json:"created_at"`
	Status            MatchStatus  `json:"status"`
}

// ValidateMatch checks the match invariants: both ids present and all
// aggregate scores within [0,1].
func ValidateMatch(m *Match) error {
	if m.CandidateID == "" || m.JobID == "" {
		return fmt.Errorf("match requires candidate and job ids")
	}
	if m.OverallScore < 0 || m.OverallScore > 1 || math.IsNaN(m.OverallScore) {
		return fmt.Errorf("overall score %v outside [0,1]", m.OverallScore)
	}
	if m.Confidence < 0 || m.Confidence > 1 || math.IsNaN(m.Confidence) {
		return fmt.Errorf("confidence %v outside [0,1]", m.Confidence)
	}
	return nil
}

// MatchedSkills returns the requirements the candidate satisfies.
func MatchedSkills(m *Match) []SkillMatch {
	var matched []SkillMatch
	for _, sm := range m.SkillMatches {
		if sm.IsMatch {
			matched = append(matched, sm)
		}
	}
	return matched
}

// MissingSkills returns the requirements the candidate falls short on.
func MissingSkills(m *Match) []SkillMatch {
	var missing []SkillMatch
	for _, sm := range m.SkillMatches {
		if !sm.IsMatch {
			missing = append(missing, sm)
		}
	}
	return missing
}

// IsHighQuality reports whether the match clears the review shortlist bar.
func IsHighQuality(m *Match) bool {
	return m.OverallScore >= 0.7 && m.Confidence >= 0.8
}

// MatchSummary renders a one-line human summary of the match.
func MatchSummary(m *Match) string {
	return fmt.Sprintf("%d%% match (%d/%d skills matched)",
		int(math.Round(m.OverallScore*100)), len(MatchedSkills(m)), len(m.SkillMatches))
}

// ErrInvalidTransition indicates a match status change outside the sanctioned
// lifecycle.
type ErrInvalidTransition struct {
	From MatchStatus
	To   MatchStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid match status transition %s -> %s", e.From, e.To)
}

var validTransitions = map[MatchStatus][]MatchStatus{
	MatchPending:   {MatchReviewed, MatchContacted, MatchRejected},
	MatchReviewed:  {MatchContacted, MatchRejected},
	MatchContacted: {MatchRejected},
	MatchRejected:  {},
}

// UpdateMatchStatus applies an explicit status transition. It is the only
// sanctioned mutation of a match after creation.
func UpdateMatchStatus(m *Match, next MatchStatus) error {
	for _, allowed := range validTransitions[m.Status] {
		if next == allowed {
			m.Status = next
			return nil
		}
	}
	return &ErrInvalidTransition{From: m.Status, To: next}
}
