package checks

import (
	"fmt"
	"sort"
	"time"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

// travelWindow is the minimum believable gap between a character appearing
// in two different locations. Adjacent appearances strictly closer than this
// with differing locations are flagged.
const travelWindow = 24 * time.Hour

type timelineEntry struct {
	event model.Entity
	at    time.Time
}

// CheckLocations builds a chronological timeline per character from the
// events that mention them and flags adjacent appearances in different
// locations less than 24 hours apart. Purely mechanical: no oracle involved.
func (c *Checker) CheckLocations(snap *model.Snapshot) []model.Issue {
	var placed []model.Entity
	for _, e := range snap.Entities {
		if e.Type == model.TypeEvent && e.Date != nil && e.Location != "" {
			placed = append(placed, e)
		}
	}

	issues := []model.Issue{}
	for _, ch := range snap.Entities {
		if ch.Type != model.TypeCharacter {
			continue
		}

		var timeline []timelineEntry
		for _, ev := range placed {
			if ev.Mentions(ch.Name) {
				timeline = append(timeline, timelineEntry{event: ev, at: ev.Date.Time})
			}
		}
		if len(timeline) < 2 {
			continue
		}

		sort.SliceStable(timeline, func(i, j int) bool {
			return timeline[i].at.Before(timeline[j].at)
		})

		for i := 1; i < len(timeline); i++ {
			prev, next := timeline[i-1], timeline[i]
			gap := next.at.Sub(prev.at)
			if gap >= travelWindow || prev.event.Location == next.event.Location {
				continue
			}

			issues = append(issues, model.Issue{
				ID:       fmt.Sprintf("location-%s-%s-%s", ch.ID, prev.event.ID, next.event.ID),
				Severity: model.SeverityMedium,
				Category: model.CategoryLocation,
				Title:    fmt.Sprintf("%s is in two places within a day", ch.Name),
				Description: fmt.Sprintf("%s appears in %q during %q and in %q during %q only %.1f hours later.",
					ch.Name, prev.event.Location, prev.event.Name, next.event.Location, next.event.Name, gap.Hours()),
				AffectedEntities: []model.EntityRef{ch.Ref(), prev.event.Ref(), next.event.Ref()},
				SuggestedFix:     fmt.Sprintf("Adjust the date of %q or %q, or reconcile their locations.", prev.event.Name, next.event.Name),
			})
		}
	}

	return issues
}
