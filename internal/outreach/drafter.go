// Package outreach drafts personalized recruiting messages for scored
// matches. Generation is LLM-backed with deterministic templates standing in
// whenever the model is unavailable, so drafting never fails outright.
package outreach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andras/talent-sonar/internal/llm"
	"github.com/andras/talent-sonar/internal/store"
	"github.com/andras/talent-sonar/internal/types"
)

// Tone selects the register of the drafted message.
type Tone string

// Supported tones.
const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneEnthusiastic Tone = "enthusiastic"
)

func (t Tone) valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneEnthusiastic:
		return true
	}
	return false
}

// ErrUnknownTone indicates a tone outside the supported set.
type ErrUnknownTone struct {
	Tone string
}

func (e *ErrUnknownTone) Error() string {
	return fmt.Sprintf("unknown tone: %s", e.Tone)
}

// DraftRequest asks for one outreach draft for an existing match.
type DraftRequest struct {
	MatchID             string `json:"match_id" validate:"required"`
	Tone                Tone   `json:"tone,omitempty"`
	IncludeCompensation bool   `json:"include_compensation,omitempty"`
	CustomMessage       string `json:"custom_message,omitempty"`
}

// Message is a drafted outreach email.
type Message struct {
	ID                      string    `json:"id"`
	MatchID                 string    `json:"match_id"`
	Subject                 string    `json:"subject"`
	Body                    string    `json:"body"`
	Tone                    Tone      `json:"tone"`
	PersonalizationElements []string  `json:"personalization_elements"`
	CreatedAt               time.Time `json:"created_at"`
}

// DraftResponse bundles the drafted message with alternative subject lines.
type DraftResponse struct {
	Message             Message  `json:"message"`
	AlternativeSubjects []string `json:"alternative_subjects"`
}

// Drafter produces outreach drafts from stored matches. client may be nil,
// in which case every component uses its deterministic template.
type Drafter struct {
	repo   store.Repository
	client llm.Client
	logger *zap.Logger
}

// NewDrafter creates a drafter.
func NewDrafter(repo store.Repository, client llm.Client, logger *zap.Logger) *Drafter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Drafter{repo: repo, client: client, logger: logger}
}

// Draft loads the match and its candidate and job, then assembles the
// message. Subject, body, and alternative subjects degrade independently to
// templates when generation fails.
func (d *Drafter) Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error) {
	tone := req.Tone
	if tone == "" {
		tone = ToneProfessional
	}
	if !tone.valid() {
		return nil, &ErrUnknownTone{Tone: string(tone)}
	}

	match, err := d.repo.GetMatch(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}
	candidate, err := d.repo.GetCandidate(ctx, match.CandidateID)
	if err != nil {
		return nil, err
	}
	job, err := d.repo.GetJob(ctx, match.JobID)
	if err != nil {
		return nil, err
	}

	subject := d.generateSubject(ctx, candidate, job, tone)
	body := d.generateBody(ctx, match, candidate, job, req, tone)
	alternatives := d.generateAlternativeSubjects(ctx, candidate, job, tone)

	return &DraftResponse{
		Message: Message{
			ID:                      uuid.NewString(),
			MatchID:                 match.ID,
			Subject:                 subject,
			Body:                    body,
			Tone:                    tone,
			PersonalizationElements: personalizationElements(match, candidate, job),
			CreatedAt:               time.Now(),
		},
		AlternativeSubjects: alternatives,
	}, nil
}

func (d *Drafter) generateSubject(ctx context.Context, c *types.Candidate, j *types.Job, tone Tone) string {
	base := fallbackSubject(c, j, tone)
	if d.client == nil {
		return base
	}

	subject, err := d.client.GenerateContent(ctx, subjectPrompt(c, j, tone, base), llm.TierLite)
	if err != nil || strings.TrimSpace(subject) == "" {
		d.logger.Warn("subject generation fell back to template", zap.Error(err))
		return base
	}
	return strings.TrimSpace(subject)
}

func (d *Drafter) generateBody(ctx context.Context, m *types.Match, c *types.Candidate, j *types.Job, req DraftRequest, tone Tone) string {
	if d.client == nil {
		return fallbackBody(m, c, j, req)
	}

	body, err := d.client.GenerateContent(ctx, bodyPrompt(m, c, j, req, tone), llm.TierAdvanced)
	if err != nil || strings.TrimSpace(body) == "" {
		d.logger.Warn("body generation fell back to template", zap.Error(err))
		return fallbackBody(m, c, j, req)
	}
	return strings.TrimSpace(body)
}

func (d *Drafter) generateAlternativeSubjects(ctx context.Context, c *types.Candidate, j *types.Job, tone Tone) []string {
	if d.client == nil {
		return fallbackAlternativeSubjects(j)
	}

	raw, err := d.client.GenerateContent(ctx, alternativeSubjectsPrompt(c, j, tone), llm.TierLite)
	if err != nil {
		d.logger.Warn("alternative subjects fell back to templates", zap.Error(err))
		return fallbackAlternativeSubjects(j)
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
		if len(out) == 3 {
			break
		}
	}
	if len(out) == 0 {
		return fallbackAlternativeSubjects(j)
	}
	return out
}

// topMatchedSkillNames lists up to three matched skill names for
// personalization.
func topMatchedSkillNames(m *types.Match) []string {
	matched := types.MatchedSkills(m)
	names := make([]string, 0, 3)
	for _, sm := range matched {
		names = append(names, sm.SkillName)
		if len(names) == 3 {
			break
		}
	}
	return names
}

func personalizationElements(m *types.Match, c *types.Candidate, j *types.Job) []string {
	var elements []string

	if names := topMatchedSkillNames(m); len(names) > 0 {
		elements = append(elements, "Matched skills: "+strings.Join(names, ", "))
	}
	if years := types.TotalExperienceYears(c); years > 0 {
		elements = append(elements, fmt.Sprintf("%.1f years experience", years))
	}
	if c.IsInternal {
		elements = append(elements, "Internal candidate")
	} else {
		elements = append(elements, "External candidate")
	}
	if strings.EqualFold(c.Location, j.Location) {
		elements = append(elements, "Location match")
	}
	return elements
}
