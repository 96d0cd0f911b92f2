// Package oracle adapts an LLM client into the judgment service the checks
// consult. All oracle fallibility — network errors, non-JSON answers,
// malformed JSON — is absorbed here, once: a failed query yields no verdict,
// and a check that gets no verdict emits no issue.
package oracle

import (
	"context"
	"log"

	"github.com/worldcrafter/lorecheck/internal/core/common"
	"github.com/worldcrafter/lorecheck/internal/llm"
)

type Oracle struct {
	LLM llm.LLMClient
}

func New(client llm.LLMClient) *Oracle {
	return &Oracle{LLM: client}
}

// Ask submits a prompt and parses the reply into a verdict of type T.
// The second return value reports whether a verdict was obtained; when it is
// false the caller must treat the query as answerless, not as a negative
// finding. Failures are logged and never escalated.
func Ask[T any](ctx context.Context, o *Oracle, prompt string) (T, bool) {
	var zero T

	response, err := o.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Warning: oracle query failed: %v", err)
		return zero, false
	}

	verdict, err := common.ParseJSON[T](response)
	if err != nil {
		log.Printf("Warning: oracle returned no usable verdict: %v", err)
		return zero, false
	}

	return verdict, true
}
