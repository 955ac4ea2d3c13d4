package outreach

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andras/talent-sonar/internal/embedding"
	"github.com/andras/talent-sonar/internal/llm"
	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/store"
	"github.com/andras/talent-sonar/internal/types"
)

// repoWithMatch seeds the demo data and produces one persisted match for
// job_1, returning the repository and the match id.
func repoWithMatch(t *testing.T) (*store.Memory, string) {
	t.Helper()
	ctx := context.Background()
	repo := store.NewMemory(embedding.NewHashProvider())
	require.NoError(t, store.SeedDemoData(ctx, repo))

	engine := matching.NewEngine(repo, nil, nil)
	result, err := engine.Match(ctx, "job_1", matching.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, result.Matches)
	return repo, result.Matches[0].ID
}

func TestDraft_WithLLM(t *testing.T) {
	repo, matchID := repoWithMatch(t)
	mock := &llm.MockClient{Replies: []string{
		"Your next role in Engineering",
		"Hi John, we think you would thrive in this position. Let's talk.",
		"Subject A\nSubject B\nSubject C",
	}}
	drafter := NewDrafter(repo, mock, nil)

	resp, err := drafter.Draft(context.Background(), DraftRequest{MatchID: matchID})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Message.ID)
	assert.Equal(t, matchID, resp.Message.MatchID)
	assert.Equal(t, "Your next role in Engineering", resp.Message.Subject)
	assert.Contains(t, resp.Message.Body, "thrive")
	assert.Equal(t, ToneProfessional, resp.Message.Tone)
	assert.Equal(t, []string{"Subject A", "Subject B", "Subject C"}, resp.AlternativeSubjects)
	assert.NotEmpty(t, resp.Message.PersonalizationElements)
}

func TestDraft_AllGenerationFailsUsesTemplates(t *testing.T) {
	repo, matchID := repoWithMatch(t)
	mock := &llm.MockClient{Err: errors.New("model offline")}
	drafter := NewDrafter(repo, mock, nil)

	resp, err := drafter.Draft(context.Background(), DraftRequest{MatchID: matchID})
	require.NoError(t, err, "LLM failure must not fail drafting")

	assert.NotEmpty(t, resp.Message.Subject)
	assert.NotEmpty(t, resp.Message.Body)
	assert.Len(t, resp.AlternativeSubjects, 3)
	// The matched candidate is internal, so the template references growth.
	assert.Contains(t, resp.Message.Body, "career growth")
}

func TestDraft_NilClientUsesTemplates(t *testing.T) {
	repo, matchID := repoWithMatch(t)
	drafter := NewDrafter(repo, nil, nil)

	resp, err := drafter.Draft(context.Background(), DraftRequest{MatchID: matchID})
	require.NoError(t, err)
	assert.Contains(t, resp.Message.Subject, "Senior Full-Stack Developer")
	assert.Contains(t, resp.Message.Body, "Hi John")
}

func TestDraft_CustomMessageIncluded(t *testing.T) {
	repo, matchID := repoWithMatch(t)
	drafter := NewDrafter(repo, nil, nil)

	resp, err := drafter.Draft(context.Background(), DraftRequest{
		MatchID:       matchID,
		CustomMessage: "We met at the Budapest Go meetup.",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Message.Body, "We met at the Budapest Go meetup.")
}

func TestDraft_Tones(t *testing.T) {
	repo, matchID := repoWithMatch(t)
	drafter := NewDrafter(repo, nil, nil)
	ctx := context.Background()

	friendly, err := drafter.Draft(ctx, DraftRequest{MatchID: matchID, Tone: ToneFriendly})
	require.NoError(t, err)
	assert.Equal(t, ToneFriendly, friendly.Message.Tone)
	assert.Contains(t, friendly.Message.Subject, "Hi John")

	enthusiastic, err := drafter.Draft(ctx, DraftRequest{MatchID: matchID, Tone: ToneEnthusiastic})
	require.NoError(t, err)
	assert.Contains(t, enthusiastic.Message.Subject, "!")
}

func TestDraft_UnknownTone(t *testing.T) {
	repo, matchID := repoWithMatch(t)
	drafter := NewDrafter(repo, nil, nil)

	_, err := drafter.Draft(context.Background(), DraftRequest{MatchID: matchID, Tone: "sarcastic"})
	var unknown *ErrUnknownTone
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sarcastic", unknown.Tone)
}

func TestDraft_UnknownMatch(t *testing.T) {
	repo, _ := repoWithMatch(t)
	drafter := NewDrafter(repo, nil, nil)

	_, err := drafter.Draft(context.Background(), DraftRequest{MatchID: "ghost"})
	var notFound *store.ErrMatchNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestPersonalizationElements(t *testing.T) {
	m := &types.Match{
		SkillMatches: []types.SkillMatch{
			{SkillName: "Go", IsMatch: true},
			{SkillName: "Kubernetes", IsMatch: false},
		},
	}
	c := &types.Candidate{FirstName: "A", LastName: "B", Location: "Budapest", IsInternal: true}
	j := &types.Job{Location: "budapest"}

	elements := personalizationElements(m, c, j)
	assert.Contains(t, elements, "Matched skills: Go")
	assert.Contains(t, elements, "Internal candidate")
	assert.Contains(t, elements, "Location match")
}
