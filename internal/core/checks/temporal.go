package checks

import (
	"context"
	"fmt"

	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
)

const promptDateLayout = "2006-01-02 15:04"

// CheckDates finds dated events whose descriptions reference other dated
// events in a way the dates cannot support. An event mentioning a date-less
// event is skipped silently: without a second date there is nothing to judge.
func (c *Checker) CheckDates(ctx context.Context, snap *model.Snapshot) []model.Issue {
	var dated []model.Entity
	for _, e := range snap.Entities {
		if e.Type == model.TypeEvent && e.Date != nil {
			dated = append(dated, e)
		}
	}

	issues := []model.Issue{}
	for _, a := range dated {
		if a.Description == "" {
			continue
		}
		for _, b := range dated {
			if a.ID == b.ID || !a.Mentions(b.Name) {
				continue
			}

			prompt := fmt.Sprintf(c.prompt(c.Prompts.Temporal, defaultTemporalPrompt),
				a.Name, a.Date.Format(promptDateLayout),
				b.Name, b.Date.Format(promptDateLayout),
				a.Description)

			verdict, ok := oracle.Ask[model.ConsistencyVerdict](ctx, c.Oracle, prompt)
			if !ok || verdict.Consistent {
				continue
			}

			description := verdict.Explanation
			if description == "" {
				description = fmt.Sprintf("The description of %q references %q, but their dates (%s and %s) appear inconsistent with that reference.",
					a.Name, b.Name, a.Date.Format(promptDateLayout), b.Date.Format(promptDateLayout))
			}

			issues = append(issues, model.Issue{
				ID:               fmt.Sprintf("date-%s-%s", a.ID, b.ID),
				Severity:         model.ParseSeverity(verdict.Severity, model.SeverityMedium),
				Category:         model.CategoryDate,
				Title:            fmt.Sprintf("Date conflict between %q and %q", a.Name, b.Name),
				Description:      description,
				AffectedEntities: []model.EntityRef{a.Ref(), b.Ref()},
				SuggestedFix:     verdict.SuggestedFix,
			})
		}
	}

	return issues
}
