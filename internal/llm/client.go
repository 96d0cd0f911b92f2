package llm

import (
	"context"
)

// LLMClient is the single capability every check delegates semantic judgment
// to: prompt in, free text out. Structured-output parsing happens upstream.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type EmbedderClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type RerankerClient interface {
	Rank(ctx context.Context, query string, documents []string) ([]int, error)
}
