// Package checks implements the consistency pipeline: five independent
// passes over a world snapshot, each emitting issues, aggregated into a
// report. Checks run strictly in sequence and oracle queries are awaited one
// at a time; there is no parallelism and no caching of verdicts.
package checks

import (
	"context"

	"github.com/worldcrafter/lorecheck/internal/config"
	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
)

type Checker struct {
	Oracle  *oracle.Oracle
	Prompts config.CheckPrompts
}

func NewChecker(o *oracle.Oracle, prompts config.CheckPrompts) *Checker {
	return &Checker{
		Oracle:  o,
		Prompts: prompts,
	}
}

// Run executes all checks against the snapshot and aggregates their issues.
// Category order is fixed: date, location, description, reference,
// relationship. Within a category, issues follow each check's own iteration
// order over the snapshot.
func (c *Checker) Run(ctx context.Context, snap *model.Snapshot) *model.Report {
	issues := []model.Issue{}

	issues = append(issues, c.CheckDates(ctx, snap)...)
	issues = append(issues, c.CheckLocations(snap)...)
	issues = append(issues, c.CheckDescriptions(ctx, snap)...)
	issues = append(issues, c.CheckReferences(ctx, snap)...)
	issues = append(issues, c.CheckRelationships(ctx, snap)...)

	return model.NewReport(issues)
}

func (c *Checker) prompt(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
