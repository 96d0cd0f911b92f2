package suggest

import (
	"sort"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

const maxPropagationIterations = 20

// clusterLabels groups connected entities by label propagation over the
// relationship graph, treated as undirected with parallel relationships
// adding weight. Only entities with at least one relationship receive a
// label; isolated entities stay unlabeled. Tie-breaking is lexicographic so
// repeated runs over the same snapshot cluster identically.
func clusterLabels(entities []model.Entity, relationships []model.Relationship) map[string]string {
	known := make(map[string]bool, len(entities))
	for _, e := range entities {
		known[e.ID] = true
	}

	adj := map[string]map[string]int{}
	for _, r := range relationships {
		if !known[r.SourceID] || !known[r.TargetID] || r.SourceID == r.TargetID {
			continue
		}
		if adj[r.SourceID] == nil {
			adj[r.SourceID] = map[string]int{}
		}
		if adj[r.TargetID] == nil {
			adj[r.TargetID] = map[string]int{}
		}
		adj[r.SourceID][r.TargetID]++
		adj[r.TargetID][r.SourceID]++
	}

	var ids []string
	labels := map[string]string{}
	for id := range adj {
		ids = append(ids, id)
		labels[id] = id
	}
	sort.Strings(ids)

	for iter := 0; iter < maxPropagationIterations; iter++ {
		changed := 0

		for _, u := range ids {
			counts := map[string]int{}
			max := 0
			for v, weight := range adj[u] {
				counts[labels[v]] += weight
				if counts[labels[v]] > max {
					max = counts[labels[v]]
				}
			}

			var candidates []string
			for label, count := range counts {
				if count == max {
					candidates = append(candidates, label)
				}
			}
			sort.Strings(candidates)
			best := candidates[len(candidates)-1]

			if labels[u] != best {
				labels[u] = best
				changed++
			}
		}

		if changed == 0 {
			break
		}
	}

	return labels
}
