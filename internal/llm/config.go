// Package llm wraps the Gemini API behind a small client interface with
// tiered model selection, so callers pick a cost bracket per task instead of
// hard-coding model names.
package llm

// ModelTier selects a capability bracket rather than a concrete model.
type ModelTier string

const (
	// TierLite serves short, formulaic generations such as subject lines.
	TierLite ModelTier = "lite"
	// TierStandard serves match reasoning and structured output.
	TierStandard ModelTier = "standard"
	// TierAdvanced serves long-form outreach drafting.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig spreads the three tiers across the Gemini 2.5 family.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// Model resolves the model name for a tier. An unconfigured tier degrades to
// standard, then lite; an empty string means nothing is configured at all.
func (c *Config) Model(tier ModelTier) string {
	if m, ok := c.Models[tier]; ok {
		return m
	}
	for _, fallback := range []ModelTier{TierStandard, TierLite} {
		if m, ok := c.Models[fallback]; ok {
			return m
		}
	}
	return ""
}
