package outreach

import (
	"fmt"
	"strings"

	"github.com/andras/talent-sonar/internal/types"
)

func firstName(c *types.Candidate) string {
	return strings.Fields(types.FullName(c))[0]
}

func candidateKind(c *types.Candidate) string {
	if c.IsInternal {
		return "Internal Employee"
	}
	return "External Candidate"
}

func subjectPrompt(c *types.Candidate, j *types.Job, tone Tone, base string) string {
	return fmt.Sprintf(`Create a compelling email subject line for this scenario:
- Candidate: %s (%s)
- Job: %s
- Tone: %s
- Base idea: %s

Make it personalized and engaging. Return only the subject line.`,
		types.FullName(c), candidateKind(c), j.Title, tone, base)
}

func bodyPrompt(m *types.Match, c *types.Candidate, j *types.Job, req DraftRequest, tone Tone) string {
	var sb strings.Builder
	sb.WriteString("Write a personalized outreach email for this candidate:\n\n")

	fmt.Fprintf(&sb, "CANDIDATE INFO:\n- Name: %s\n- Type: %s\n", types.FullName(c), candidateKind(c))
	if c.CurrentRole != "" {
		fmt.Fprintf(&sb, "- Current Role: %s\n", c.CurrentRole)
	}
	if c.Department != "" {
		fmt.Fprintf(&sb, "- Department: %s\n", c.Department)
	}
	if names := topMatchedSkillNames(m); len(names) > 0 {
		fmt.Fprintf(&sb, "- Top Skills: %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&sb, "\nJOB INFO:\n- Title: %s\n- Department: %s\n- Location: %s\n", j.Title, j.Department, j.Location)
	if c.IsInternal {
		sb.WriteString("- Type: Internal Transfer/Promotion\n")
	} else {
		sb.WriteString("- Type: New Position\n")
	}

	fmt.Fprintf(&sb, "\nMATCH INFO:\n- Overall Score: %d%%\n- Reasoning: %s\n", int(m.OverallScore*100), m.Reasoning)

	fmt.Fprintf(&sb, "\nREQUIREMENTS:\n- Tone: %s\n- Length: 150-200 words\n- Include specific skills match\n", tone)
	if c.IsInternal {
		sb.WriteString("- Mention career growth opportunity\n")
	} else {
		sb.WriteString("- Reference previous interaction\n")
	}
	if req.IncludeCompensation {
		sb.WriteString("- Mention competitive compensation\n")
	} else {
		sb.WriteString("- Do not mention compensation\n")
	}
	sb.WriteString("- End with clear call to action\n")

	if req.CustomMessage != "" {
		fmt.Fprintf(&sb, "\nCUSTOM MESSAGE TO INCLUDE: %s\n", req.CustomMessage)
	}

	sb.WriteString("\nWrite the email body only (no subject line).")
	return sb.String()
}

func alternativeSubjectsPrompt(c *types.Candidate, j *types.Job, tone Tone) string {
	kind := "External"
	if c.IsInternal {
		kind = "Internal"
	}
	return fmt.Sprintf(`Generate 3 alternative email subject lines for:
- Candidate: %s (%s)
- Job: %s
- Tone: %s

Make each subject line unique and engaging. Return as a simple list, one per line.`,
		types.FullName(c), kind, j.Title, tone)
}

// fallbackSubject renders the template subject for a tone and candidate kind.
func fallbackSubject(c *types.Candidate, j *types.Job, tone Tone) string {
	switch tone {
	case ToneFriendly:
		if c.IsInternal {
			return fmt.Sprintf("Hi %s, interesting opportunity in %s", firstName(c), j.Department)
		}
		return fmt.Sprintf("Hi %s, we'd love to reconnect about a %s role", firstName(c), j.Title)
	case ToneEnthusiastic:
		if c.IsInternal {
			return fmt.Sprintf("Amazing %s opportunity perfect for your skills!", j.Title)
		}
		return fmt.Sprintf("Your dream %s role awaits - let's chat!", j.Title)
	default:
		if c.IsInternal {
			return fmt.Sprintf("Professional opportunity: %s role in %s", j.Title, j.Department)
		}
		return fmt.Sprintf("Exciting opportunity: %s position at our company", j.Title)
	}
}

// fallbackBody renders the template email body. Internal candidates get the
// career-growth framing, external candidates the reconnect framing.
func fallbackBody(m *types.Match, c *types.Candidate, j *types.Job, req DraftRequest) string {
	name := firstName(c)
	skills := strings.Join(topMatchedSkillNames(m), ", ")
	if skills == "" {
		skills = "your field"
	}

	custom := ""
	if req.CustomMessage != "" {
		custom = req.CustomMessage + "\n\n"
	}

	if c.IsInternal {
		return fmt.Sprintf(`Hi %s,

I hope this message finds you well. I wanted to reach out about an exciting %s opportunity in our %s department that I believe aligns perfectly with your skills and career aspirations.

Based on your background, particularly your expertise in %s, you would be an excellent fit for this role. This position offers a great opportunity for career growth and the chance to take on new challenges.

%sI'd love to discuss this opportunity with you in more detail. Are you available for a brief conversation this week?

Best regards,
[Your Name]`, name, j.Title, j.Department, skills, custom)
	}

	return fmt.Sprintf(`Hi %s,

I hope you're doing well. We were impressed by your background when we previously connected, and I wanted to reach out about a %s position that has opened up at our company.

Your experience with %s makes you a strong candidate for this role. We believe this could be an excellent opportunity that aligns with your career goals.

%sI'd love to reconnect and discuss how this role might be a great fit for you. Would you be open to a brief conversation?

Looking forward to hearing from you,
[Your Name]`, name, j.Title, skills, custom)
}

func fallbackAlternativeSubjects(j *types.Job) []string {
	return []string{
		fmt.Sprintf("%s opportunity - perfect match for your skills", j.Title),
		fmt.Sprintf("Let's discuss this %s role", j.Title),
		fmt.Sprintf("Your expertise + our %s position = great fit", j.Title),
	}
}
