package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

func TestCheckLocationsFlagsImpossibleTravel(t *testing.T) {
	checker := newTestChecker(&MockLLM{})

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
			{ID: "eventA", Type: model.TypeEvent, Name: "The Vigil", Date: at("2024-06-01T00:00:00Z"), Location: "Tower",
				Description: "Aria keeps watch through the night."},
			{ID: "eventB", Type: model.TypeEvent, Name: "The Ambush", Date: at("2024-06-01T05:00:00Z"), Location: "Forest",
				Description: "Aria is caught off guard."},
		},
	}

	issues := checker.CheckLocations(snap)

	require.Len(t, issues, 1)
	assert.Equal(t, model.CategoryLocation, issues[0].Category)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)
	assert.Contains(t, issues[0].Description, "5.0 hours")
	require.Len(t, issues[0].AffectedEntities, 3)
	assert.Equal(t, "aria", issues[0].AffectedEntities[0].ID)
	assert.Equal(t, "eventA", issues[0].AffectedEntities[1].ID)
	assert.Equal(t, "eventB", issues[0].AffectedEntities[2].ID)
}

func TestCheckLocationsExactly24HoursIsFine(t *testing.T) {
	checker := newTestChecker(&MockLLM{})

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
			{ID: "e1", Type: model.TypeEvent, Name: "Departure", Date: at("2024-06-01T08:00:00Z"), Location: "Tower", Description: "Aria sets out."},
			{ID: "e2", Type: model.TypeEvent, Name: "Arrival", Date: at("2024-06-02T08:00:00Z"), Location: "Forest", Description: "Aria arrives."},
		},
	}

	// Strictly-less-than-24 is the trigger; a full day is enough to travel.
	assert.Empty(t, checker.CheckLocations(snap))
}

func TestCheckLocationsJustUnder24HoursTriggers(t *testing.T) {
	checker := newTestChecker(&MockLLM{})

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
			{ID: "e1", Type: model.TypeEvent, Name: "Departure", Date: at("2024-06-01T08:00:00Z"), Location: "Tower", Description: "Aria sets out."},
			{ID: "e2", Type: model.TypeEvent, Name: "Arrival", Date: at("2024-06-02T07:59:24Z"), Location: "Forest", Description: "Aria arrives."},
		},
	}

	assert.Len(t, checker.CheckLocations(snap), 1)
}

func TestCheckLocationsSameLocationIsFine(t *testing.T) {
	checker := newTestChecker(&MockLLM{})

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
			{ID: "e1", Type: model.TypeEvent, Name: "Morning Watch", Date: at("2024-06-01T08:00:00Z"), Location: "Tower", Description: "Aria on duty."},
			{ID: "e2", Type: model.TypeEvent, Name: "Evening Watch", Date: at("2024-06-01T20:00:00Z"), Location: "Tower", Description: "Aria still on duty."},
		},
	}

	assert.Empty(t, checker.CheckLocations(snap))
}

func TestCheckLocationsSortsOutOfOrderEvents(t *testing.T) {
	checker := newTestChecker(&MockLLM{})

	// The later event comes first in the snapshot; the timeline must be
	// sorted before adjacent pairs are compared.
	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
			{ID: "e2", Type: model.TypeEvent, Name: "The Ambush", Date: at("2024-06-01T05:00:00Z"), Location: "Forest", Description: "Aria is caught."},
			{ID: "e1", Type: model.TypeEvent, Name: "The Vigil", Date: at("2024-06-01T00:00:00Z"), Location: "Tower", Description: "Aria keeps watch."},
		},
	}

	issues := checker.CheckLocations(snap)
	require.Len(t, issues, 1)
	assert.Equal(t, "e1", issues[0].AffectedEntities[1].ID)
	assert.Equal(t, "e2", issues[0].AffectedEntities[2].ID)
}

func TestCheckLocationsShortTimelines(t *testing.T) {
	checker := newTestChecker(&MockLLM{})

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
			{ID: "solo", Type: model.TypeCharacter, Name: "Bram"},
			{ID: "e1", Type: model.TypeEvent, Name: "The Vigil", Date: at("2024-06-01T00:00:00Z"), Location: "Tower", Description: "Aria keeps watch."},
		},
	}

	// Timelines with zero or one entries produce nothing.
	assert.Empty(t, checker.CheckLocations(snap))
}
