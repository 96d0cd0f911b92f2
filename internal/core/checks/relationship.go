package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
)

// CheckRelationships groups relationships by unordered entity pair and asks
// the oracle whether the accumulated relation types contradict each other.
// Single-relationship groups are never queried: one type has nothing to
// contradict. Groups with an endpoint missing from the snapshot are skipped
// so issues never reference entities outside it.
func (c *Checker) CheckRelationships(ctx context.Context, snap *model.Snapshot) []model.Issue {
	var keys []string
	groups := map[string][]model.Relationship{}
	for _, r := range snap.Relationships {
		k := r.PairKey()
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r)
	}

	issues := []model.Issue{}
	for _, k := range keys {
		group := groups[k]
		if len(group) < 2 {
			continue
		}

		src, okSrc := snap.EntityByID(group[0].SourceID)
		tgt, okTgt := snap.EntityByID(group[0].TargetID)
		if !okSrc || !okTgt {
			continue
		}

		var types []string
		for _, r := range group {
			types = append(types, "- "+r.RelationType)
		}

		prompt := fmt.Sprintf(c.prompt(c.Prompts.Relationship, defaultRelationshipPrompt),
			src.Name, tgt.Name, strings.Join(types, "\n"))

		verdict, ok := oracle.Ask[model.RelationVerdict](ctx, c.Oracle, prompt)
		if !ok || !verdict.Contradictory {
			continue
		}

		description := verdict.Explanation
		if description == "" {
			description = fmt.Sprintf("%q and %q are linked by contradictory relationship types.", src.Name, tgt.Name)
		}

		issues = append(issues, model.Issue{
			ID:               "relationship-" + strings.ReplaceAll(k, "|", "-"),
			Severity:         model.ParseSeverity(verdict.Severity, model.SeverityMedium),
			Category:         model.CategoryRelationship,
			Title:            fmt.Sprintf("Conflicting relationships between %q and %q", src.Name, tgt.Name),
			Description:      description,
			AffectedEntities: []model.EntityRef{src.Ref(), tgt.Ref()},
			SuggestedFix:     verdict.SuggestedFix,
		})
	}

	return issues
}
