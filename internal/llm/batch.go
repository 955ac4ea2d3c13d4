package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Batch generation parameters. The provider rate-limits aggressively on the
// free tier, so prompts go out in small batches with a pause between them.
const (
	defaultBatchSize  = 5
	defaultBatchDelay = time.Second
)

// Generator runs prompt batches through a Client at a fixed tier. It
// satisfies the matching engine's reasoner contract: one reply per prompt, in
// order, with empty strings standing in for prompts whose batch failed.
type Generator struct {
	client    Client
	tier      ModelTier
	logger    *zap.Logger
	batchSize int
	delay     time.Duration
}

// NewGenerator creates a batch generator with production defaults.
func NewGenerator(client Client, tier ModelTier, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client:    client,
		tier:      tier,
		logger:    logger,
		batchSize: defaultBatchSize,
		delay:     defaultBatchDelay,
	}
}

// SetBatchDelay overrides the inter-batch pause. Tests set it to zero.
func (g *Generator) SetBatchDelay(d time.Duration) { g.delay = d }

// ReasonBatch generates one reply per prompt. A failing prompt degrades its
// whole batch to empty strings rather than failing the request; only context
// cancellation aborts the run.
func (g *Generator) ReasonBatch(ctx context.Context, prompts []string) ([]string, error) {
	out := make([]string, len(prompts))

	for start := 0; start < len(prompts); start += g.batchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.delay):
			}
		}

		end := start + g.batchSize
		if end > len(prompts) {
			end = len(prompts)
		}

		for i := start; i < end; i++ {
			text, err := g.client.GenerateContent(ctx, prompts[i], g.tier)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				g.logger.Warn("batch generation degraded",
					zap.Int("batch_start", start),
					zap.Error(err))
				// Blank out the rest of this batch and move on.
				for j := i; j < end; j++ {
					out[j] = ""
				}
				break
			}
			out[i] = text
		}
	}
	return out, nil
}
