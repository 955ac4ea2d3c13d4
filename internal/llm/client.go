package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// generationTemperature keeps reasoning and drafting output stable across
// runs of the same prompt.
const generationTemperature = 0.1

// Client is the text-generation collaborator used by match reasoning and
// outreach drafting.
type Client interface {
	// GenerateContent returns plain text for the prompt at the given tier.
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON returns a JSON document for the prompt, with any markdown
	// fencing already stripped.
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// Gemini implements Client on the Gemini API.
type Gemini struct {
	client *genai.Client
	config *Config
}

var _ Client = (*Gemini)(nil)

// NewClient connects to Gemini with the given tier configuration. A nil
// config gets the defaults.
func NewClient(ctx context.Context, config *Config, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, config: config}, nil
}

// GenerateContent generates plain text at the given tier.
func (g *Gemini) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return g.generate(ctx, prompt, tier, false)
}

// GenerateJSON generates JSON output at the given tier. The model is asked
// for a JSON MIME type, and the reply is de-fenced before returning because
// models wrap JSON in markdown fences even when told not to.
func (g *Gemini) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := g.generate(ctx, prompt, tier, true)
	if err != nil {
		return "", err
	}
	return stripCodeFence(text), nil
}

func (g *Gemini) generate(ctx context.Context, prompt string, tier ModelTier, wantJSON bool) (string, error) {
	name := g.config.Model(tier)
	if name == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := g.client.GenerativeModel(name)
	model.SetTemperature(generationTemperature)
	if wantJSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return responseText(resp)
}

// Close releases the underlying API connection.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// responseText joins the text parts of the first candidate. A reply without
// any text part is an error, never an empty success.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return sb.String(), nil
}

// stripCodeFence unwraps a reply fenced as ```json ... ``` (or a bare ```
// fence) down to its body. Unfenced replies pass through trimmed.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := text[3:]
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		// The rest of the opening fence line is a language tag, not content.
		tag := strings.TrimSpace(body[:idx])
		if !strings.ContainsAny(tag, " {") {
			body = body[idx+1:]
		}
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
