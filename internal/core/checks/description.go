package checks

import (
	"context"
	"fmt"

	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
)

// CheckDescriptions asks the oracle to flag contradictions inside each
// entity's own description. No cross-entity comparison happens here. An
// entity can yield several findings; the per-entity counter keeps their ids
// unique.
func (c *Checker) CheckDescriptions(ctx context.Context, snap *model.Snapshot) []model.Issue {
	issues := []model.Issue{}
	for _, e := range snap.Entities {
		if e.Description == "" {
			continue
		}

		prompt := fmt.Sprintf(c.prompt(c.Prompts.Description, defaultDescriptionPrompt),
			e.Name, e.Type, e.Description)

		verdict, ok := oracle.Ask[model.ContradictionFindings](ctx, c.Oracle, prompt)
		if !ok {
			continue
		}

		for i, finding := range verdict.Contradictions {
			issues = append(issues, model.Issue{
				ID:               fmt.Sprintf("description-%s-%d", e.ID, i+1),
				Severity:         model.ParseSeverity(finding.Severity, model.SeverityMedium),
				Category:         model.CategoryDescription,
				Title:            fmt.Sprintf("Contradiction within the description of %q", e.Name),
				Description:      finding.Detail,
				AffectedEntities: []model.EntityRef{e.Ref()},
				SuggestedFix:     finding.SuggestedFix,
			})
		}
	}

	return issues
}
