package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

func TestCheckDatesMentionedEventConflict(t *testing.T) {
	// Scenario: "The Great Battle" claims a narrative relation to "The Peace
	// Treaty" which happens five days later. Stub oracle always flags it.
	mock := &MockLLM{Response: `{"consistent": false, "severity": "high", "explanation": "The battle cannot follow a treaty signed afterwards."}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "event1", Type: model.TypeEvent, Name: "The Great Battle", Date: at("2024-01-15T00:00:00Z"), Location: "Northern Plains",
				Description: "Fought in the aftermath of The Peace Treaty collapsing."},
			{ID: "event2", Type: model.TypeEvent, Name: "The Peace Treaty", Date: at("2024-01-20T00:00:00Z"), Location: "Capital City",
				Description: "Signed in the great hall."},
		},
	}

	issues := checker.CheckDates(context.Background(), snap)

	require.Len(t, issues, 1)
	assert.Equal(t, model.CategoryDate, issues[0].Category)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)
	require.Len(t, issues[0].AffectedEntities, 2)
	assert.Equal(t, "event1", issues[0].AffectedEntities[0].ID)
	assert.Equal(t, "event2", issues[0].AffectedEntities[1].ID)
	assert.Equal(t, "date-event1-event2", issues[0].ID)
	// event2's description mentions nothing, so only one pair was judged.
	assert.Len(t, mock.Prompts, 1)
}

func TestCheckDatesConsistentVerdictEmitsNothing(t *testing.T) {
	mock := &MockLLM{Response: `{"consistent": true}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "e1", Type: model.TypeEvent, Name: "The Siege", Date: at("2024-03-01T00:00:00Z"), Description: "Began after The Muster."},
			{ID: "e2", Type: model.TypeEvent, Name: "The Muster", Date: at("2024-02-20T00:00:00Z"), Description: "Armies gather."},
		},
	}

	assert.Empty(t, checker.CheckDates(context.Background(), snap))
	assert.Len(t, mock.Prompts, 1)
}

func TestCheckDatesSkipsMentionOfUndatedEvent(t *testing.T) {
	mock := &MockLLM{Response: `{"consistent": false}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "e1", Type: model.TypeEvent, Name: "The Siege", Date: at("2024-03-01T00:00:00Z"), Description: "Began after The Muster."},
			{ID: "e2", Type: model.TypeEvent, Name: "The Muster", Description: "Armies gather, date unknown."},
		},
	}

	// The mentioned event has no date: nothing to judge, no oracle call.
	assert.Empty(t, checker.CheckDates(context.Background(), snap))
	assert.Empty(t, mock.Prompts)
}

func TestCheckDatesSeverityDefaultsToMedium(t *testing.T) {
	mock := &MockLLM{Response: `{"consistent": false}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "e1", Type: model.TypeEvent, Name: "The Siege", Date: at("2024-03-01T00:00:00Z"), Description: "Began after The Muster."},
			{ID: "e2", Type: model.TypeEvent, Name: "The Muster", Date: at("2024-03-05T00:00:00Z")},
		},
	}

	issues := checker.CheckDates(context.Background(), snap)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)
}

func TestCheckDatesOracleFailureAbsorbed(t *testing.T) {
	mock := &MockLLM{Err: errors.New("connection refused")}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "e1", Type: model.TypeEvent, Name: "The Siege", Date: at("2024-03-01T00:00:00Z"), Description: "Began after The Muster."},
			{ID: "e2", Type: model.TypeEvent, Name: "The Muster", Date: at("2024-02-20T00:00:00Z")},
		},
	}

	assert.Empty(t, checker.CheckDates(context.Background(), snap))
}

func TestCheckDatesNoEvents(t *testing.T) {
	mock := &MockLLM{Response: `{"consistent": false}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "c1", Type: model.TypeCharacter, Name: "Aria", Description: "A wandering mage."},
		},
	}

	assert.Empty(t, checker.CheckDates(context.Background(), snap))
	assert.Empty(t, mock.Prompts)
}
