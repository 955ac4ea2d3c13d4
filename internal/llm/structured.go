package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andras/talent-sonar/internal/schemas"
)

// GenerateStructured asks the client for JSON output, validates it against
// the given JSON Schema, and unmarshals it into out. The schema check runs
// before unmarshaling so malformed model output surfaces as a validation
// error with field paths instead of a decode panic downstream.
func GenerateStructured(ctx context.Context, client Client, prompt, schema string, tier ModelTier, out any) error {
	raw, err := client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return fmt.Errorf("structured generation failed: %w", err)
	}

	if err := schemas.ValidateJSONString(schema, raw); err != nil {
		return fmt.Errorf("structured output rejected: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode structured output: %w", err)
	}
	return nil
}
