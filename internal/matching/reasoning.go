package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/andras/talent-sonar/internal/types"
)

// Reasoner produces recruiter-facing explanations for scored matches.
// Implementations receive one prompt per match and return one explanation per
// prompt, in order; an empty string signals the caller should fall back to a
// deterministic explanation. The LLM-backed implementation lives in the llm
// package.
type Reasoner interface {
	ReasonBatch(ctx context.Context, prompts []string) ([]string, error)
}

// reasoningPrompt renders the prompt for one match explanation.
func reasoningPrompt(c *types.Candidate, j *types.Job, m *types.Match) string {
	var sb strings.Builder
	sb.WriteString("You are a technical recruiter. In 2-3 sentences, explain why this candidate ")
	sb.WriteString("is or is not a good fit for the job. Be specific about skills and experience.\n\n")
	fmt.Fprintf(&sb, "Job: %s (%s)\n", j.Title, j.Department)
	fmt.Fprintf(&sb, "Candidate: %s\n", types.FullName(c))
	fmt.Fprintf(&sb, "Overall match score: %d%%\n", int(m.OverallScore*100))

	matched := types.MatchedSkills(m)
	if len(matched) > 0 {
		names := make([]string, len(matched))
		for i, sm := range matched {
			names[i] = sm.SkillName
		}
		fmt.Fprintf(&sb, "Matched skills: %s\n", strings.Join(names, ", "))
	}
	missing := types.MissingSkills(m)
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, sm := range missing {
			names[i] = sm.SkillName
		}
		fmt.Fprintf(&sb, "Missing or below-level skills: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&sb, "Experience score: %d%%, location score: %d%%, availability score: %d%%\n",
		int(m.ExperienceScore*100), int(m.LocationScore*100), int(m.AvailabilityScore*100))
	return sb.String()
}

// fallbackReasoning renders a deterministic explanation from the score
// components. Used when no reasoner is configured or the reasoner degrades.
func fallbackReasoning(c *types.Candidate, j *types.Job, m *types.Match) string {
	matched := types.MatchedSkills(m)
	total := len(m.SkillMatches)

	var parts []string
	parts = append(parts, fmt.Sprintf("%s scores %d%% for %s, matching %d of %d required skills",
		types.FullName(c), int(m.OverallScore*100), j.Title, len(matched), total))

	if missing := types.MissingSkills(m); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, sm := range missing {
			names[i] = sm.SkillName
		}
		parts = append(parts, fmt.Sprintf("gaps remain in %s", strings.Join(names, ", ")))
	}

	switch {
	case m.ExperienceScore >= 1.0:
		parts = append(parts, "experience fully meets the seniority bar")
	case m.ExperienceScore >= 0.6:
		parts = append(parts, "experience is close to the seniority bar")
	default:
		parts = append(parts, "experience falls short of the seniority bar")
	}

	return strings.Join(parts, "; ") + "."
}
