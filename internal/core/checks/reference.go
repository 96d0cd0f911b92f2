package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
)

// CheckReferences extracts candidate entity names from each description and
// reports the ones that match nothing in the store. Best-effort by nature:
// the oracle may extract non-entity proper nouns, and aliases of real
// entities will not match. Both failure modes are accepted.
func (c *Checker) CheckReferences(ctx context.Context, snap *model.Snapshot) []model.Issue {
	issues := []model.Issue{}
	for _, e := range snap.Entities {
		if e.Description == "" {
			continue
		}

		prompt := fmt.Sprintf(c.prompt(c.Prompts.Reference, defaultReferencePrompt), e.Description)

		extracted, ok := oracle.Ask[model.ExtractedNames](ctx, c.Oracle, prompt)
		if !ok {
			continue
		}

		var orphaned []string
		seen := map[string]bool{}
		for _, name := range extracted.Names {
			name = strings.TrimSpace(name)
			if name == "" || seen[strings.ToLower(name)] {
				continue
			}
			seen[strings.ToLower(name)] = true
			if !snap.HasEntityNamed(name) {
				orphaned = append(orphaned, name)
			}
		}
		if len(orphaned) == 0 {
			continue
		}

		issues = append(issues, model.Issue{
			ID:       fmt.Sprintf("reference-%s", e.ID),
			Severity: model.SeverityLow,
			Category: model.CategoryReference,
			Title:    fmt.Sprintf("Unresolved references in %q", e.Name),
			Description: fmt.Sprintf("The description of %q mentions %s, which match no entity in the world.",
				e.Name, strings.Join(orphaned, ", ")),
			AffectedEntities: []model.EntityRef{e.Ref()},
			SuggestedFix:     "Create the missing entities or reword the description.",
		})
	}

	return issues
}
