package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatch() *Match {
	return &Match{
		ID:           "match_1",
		CandidateID:  "candidate_1",
		JobID:        "job_1",
		OverallScore: 0.82,
		Confidence:   0.92,
		SkillMatches: []SkillMatch{
			{SkillName: "JavaScript", CandidateLevel: LevelExpert, RequiredLevel: LevelAdvanced, Score: 1.0, IsMatch: true},
			{SkillName: "React", CandidateLevel: LevelAdvanced, RequiredLevel: LevelAdvanced, Score: 1.0, IsMatch: true},
			{SkillName: "TypeScript", CandidateLevel: LevelNone, RequiredLevel: LevelIntermediate, Score: 0, IsMatch: false},
		},
		MatchType: MatchInternal,
		Status:    MatchPending,
	}
}

func TestValidateMatch(t *testing.T) {
	require.NoError(t, ValidateMatch(sampleMatch()))

	m := sampleMatch()
	m.CandidateID = ""
	assert.Error(t, ValidateMatch(m))

	m = sampleMatch()
	m.OverallScore = 1.3
	assert.Error(t, ValidateMatch(m))

	m = sampleMatch()
	m.Confidence = -0.1
	assert.Error(t, ValidateMatch(m))
}

func TestMatchedAndMissingSkills(t *testing.T) {
	m := sampleMatch()

	matched := MatchedSkills(m)
	require.Len(t, matched, 2)
	assert.Equal(t, "JavaScript", matched[0].SkillName)

	missing := MissingSkills(m)
	require.Len(t, missing, 1)
	assert.Equal(t, "TypeScript", missing[0].SkillName)
}

func TestIsHighQuality(t *testing.T) {
	m := sampleMatch()
	assert.True(t, IsHighQuality(m))

	m.OverallScore = 0.69
	assert.False(t, IsHighQuality(m))

	m.OverallScore = 0.9
	m.Confidence = 0.7
	assert.False(t, IsHighQuality(m))
}

func TestMatchSummary(t *testing.T) {
	assert.Equal(t, "82% match (2/3 skills matched)", MatchSummary(sampleMatch()))
}

func TestUpdateMatchStatus_ValidTransitions(t *testing.T) {
	m := sampleMatch()
	require.NoError(t, UpdateMatchStatus(m, MatchReviewed))
	assert.Equal(t, MatchReviewed, m.Status)

	require.NoError(t, UpdateMatchStatus(m, MatchContacted))
	require.NoError(t, UpdateMatchStatus(m, MatchRejected))
}

func TestUpdateMatchStatus_RejectsInvalidTransitions(t *testing.T) {
	m := sampleMatch()
	m.Status = MatchRejected

	err := UpdateMatchStatus(m, MatchContacted)
	assert.Error(t, err)
	assert.Equal(t, MatchRejected, m.Status)
}

func TestUpdateMatchStatus_ScoresUntouched(t *testing.T) {
	m := sampleMatch()
	before := m.OverallScore
	require.NoError(t, UpdateMatchStatus(m, MatchReviewed))
	assert.Equal(t, before, m.OverallScore)
}
