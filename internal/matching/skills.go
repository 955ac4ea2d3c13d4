// Package matching implements the candidate-to-job scoring pipeline: skill
// gap analysis, component sub-scores, weighted aggregation, and the ranked
// matching engine that ties them to a repository.
package matching

import (
	"strings"

	"github.com/andras/talent-sonar/internal/types"
)

// findSkill resolves a job requirement against the candidate's skill list.
// Lookup is case-insensitive and tolerates partial names in either direction,
// so "React" matches "React.js" and "Node.js" matches "Node".
func findSkill(skills []types.Skill, name string) (types.Skill, bool) {
	want := strings.ToLower(name)
	for _, s := range skills {
		have := strings.ToLower(s.Name)
		if have == want {
			return s, true
		}
	}
	for _, s := range skills {
		have := strings.ToLower(s.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return s, true
		}
	}
	return types.Skill{}, false
}

// scoreSkillGap maps the ordinal distance between required and held
// proficiency to a score. Meeting or exceeding the requirement is a full
// score; each missing level costs steeply.
func scoreSkillGap(gap int) float64 {
	switch {
	case gap <= 0:
		return 1.0
	case gap == 1:
		return 0.7
	case gap == 2:
		return 0.4
	default:
		return 0.1
	}
}

// ScoreSkill compares one candidate against one job requirement.
// A candidate without the skill at all scores 0 and is never a match;
// otherwise IsMatch reflects whether the held level meets the required one.
func ScoreSkill(skills []types.Skill, req types.Requirement) types.SkillMatch {
	sm := types.SkillMatch{
		SkillName:     req.Skill,
		RequiredLevel: req.Level,
	}

	skill, ok := findSkill(skills, req.Skill)
	if !ok {
		sm.CandidateLevel = types.LevelNone
		return sm
	}

	sm.CandidateLevel = skill.Level
	gap := req.Level.Ordinal() - skill.Level.Ordinal()
	sm.Score = scoreSkillGap(gap)
	sm.IsMatch = skill.Level.Meets(req.Level)
	return sm
}

// ScoreSkills evaluates every requirement of the job against the candidate's
// skills, in requirement order.
func ScoreSkills(c *types.Candidate, j *types.Job) []types.SkillMatch {
	out := make([]types.SkillMatch, 0, len(j.Requirements))
	for _, req := range j.Requirements {
		out = append(out, ScoreSkill(c.Skills, req))
	}
	return out
}

// SkillScore aggregates per-requirement scores with an unweighted mean.
// A job with no requirements scores 0.
func SkillScore(skillMatches []types.SkillMatch) float64 {
	if len(skillMatches) == 0 {
		return 0.0
	}
	total := 0.0
	for _, sm := range skillMatches {
		total += sm.Score
	}
	return total / float64(len(skillMatches))
}

// SkillScoreWeighted aggregates per-requirement scores weighted by each
// requirement's declared importance. Requirement order must align with the
// skill match slice; falls back to the unweighted mean when weights are
// absent or misaligned.
func SkillScoreWeighted(skillMatches []types.SkillMatch, requirements []types.Requirement) float64 {
	if len(skillMatches) == 0 {
		return 0.0
	}
	if len(requirements) != len(skillMatches) {
		return SkillScore(skillMatches)
	}

	totalWeight := 0.0
	weighted := 0.0
	for i, sm := range skillMatches {
		w := float64(requirements[i].Weight)
		if w <= 0 {
			w = 1
		}
		weighted += sm.Score * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return SkillScore(skillMatches)
	}
	return weighted / totalWeight
}
