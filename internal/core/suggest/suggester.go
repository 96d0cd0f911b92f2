// Package suggest proposes relationships the author has not written yet:
// entity pairs with no existing relationship, ranked by embedding similarity
// of their lore. Clustering over the existing relationship graph prunes
// pairs that live in unrelated corners of the world.
package suggest

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/llm"
)

type Suggestion struct {
	ID        string  `json:"id"`
	SourceID  string  `json:"sourceId"`
	TargetID  string  `json:"targetId"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

type Suggester struct {
	Embedder llm.EmbedderClient
	Reranker llm.RerankerClient // optional; nil skips the rerank pass
}

func NewSuggester(embedder llm.EmbedderClient, reranker llm.RerankerClient) *Suggester {
	return &Suggester{
		Embedder: embedder,
		Reranker: reranker,
	}
}

// Suggest returns up to limit candidate relationships. Entities whose
// embedding call fails are skipped with a warning; pairs already linked, and
// pairs whose endpoints belong to different clusters, are excluded.
func (s *Suggester) Suggest(ctx context.Context, snap *model.Snapshot, limit int) ([]Suggestion, error) {
	if s.Embedder == nil {
		return nil, fmt.Errorf("configured provider does not support embeddings")
	}
	if limit <= 0 {
		limit = 10
	}

	linked := map[string]bool{}
	for _, r := range snap.Relationships {
		linked[r.PairKey()] = true
	}
	labels := clusterLabels(snap.Entities, snap.Relationships)

	vectors := map[string][]float32{}
	var embedded []model.Entity
	for _, e := range snap.Entities {
		text := e.Name
		if e.Description != "" {
			text += ": " + e.Description
		}
		vec, err := s.Embedder.Embed(ctx, text)
		if err != nil || len(vec) == 0 {
			log.Printf("Warning: failed to embed entity %q: %v", e.Name, err)
			continue
		}
		vectors[e.ID] = vec
		embedded = append(embedded, e)
	}

	var suggestions []Suggestion
	for i := 0; i < len(embedded); i++ {
		for j := i + 1; j < len(embedded); j++ {
			a, b := embedded[i], embedded[j]

			pair := model.Relationship{SourceID: a.ID, TargetID: b.ID}
			if linked[pair.PairKey()] {
				continue
			}
			la, aClustered := labels[a.ID]
			lb, bClustered := labels[b.ID]
			if aClustered && bClustered && la != lb {
				continue
			}

			score := cosine(vectors[a.ID], vectors[b.ID])
			suggestions = append(suggestions, Suggestion{
				ID:        uuid.New().String(),
				SourceID:  a.ID,
				TargetID:  b.ID,
				Score:     score,
				Rationale: fmt.Sprintf("%s and %s share similar lore (similarity %.2f)", a.Name, b.Name, score),
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if s.Reranker != nil && len(suggestions) > 1 {
		suggestions = s.rerank(ctx, suggestions)
	}

	return suggestions, nil
}

func (s *Suggester) rerank(ctx context.Context, suggestions []Suggestion) []Suggestion {
	docs := make([]string, len(suggestions))
	for i, sg := range suggestions {
		docs[i] = sg.Rationale
	}

	indices, err := s.Reranker.Rank(ctx, "Which pairs most plausibly share a meaningful narrative relationship?", docs)
	if err != nil || len(indices) == 0 {
		return suggestions
	}

	reordered := make([]Suggestion, 0, len(suggestions))
	taken := make([]bool, len(suggestions))
	for _, idx := range indices {
		if idx >= 0 && idx < len(suggestions) && !taken[idx] {
			reordered = append(reordered, suggestions[idx])
			taken[idx] = true
		}
	}
	for i, sg := range suggestions {
		if !taken[i] {
			reordered = append(reordered, sg)
		}
	}
	return reordered
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
