package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

func TestCheckDescriptionsMultipleFindingsPerEntity(t *testing.T) {
	mock := &MockLLM{Response: `{"contradictions": [
		{"detail": "Described as both an orphan and as living with her parents.", "severity": "high"},
		{"detail": "Her eye color changes mid-paragraph."}
	]}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria", Description: "An orphan who lives with her parents. Green eyes. Brown eyes."},
		},
	}

	issues := checker.CheckDescriptions(context.Background(), snap)

	require.Len(t, issues, 2)
	assert.Equal(t, "description-aria-1", issues[0].ID)
	assert.Equal(t, "description-aria-2", issues[1].ID)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)
	assert.Equal(t, model.SeverityMedium, issues[1].Severity)
	for _, issue := range issues {
		assert.Equal(t, model.CategoryDescription, issue.Category)
		require.Len(t, issue.AffectedEntities, 1)
		assert.Equal(t, "aria", issue.AffectedEntities[0].ID)
	}
}

func TestCheckDescriptionsCleanEntity(t *testing.T) {
	mock := &MockLLM{Response: `{"contradictions": []}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria", Description: "A wandering mage."},
		},
	}

	assert.Empty(t, checker.CheckDescriptions(context.Background(), snap))
	assert.Len(t, mock.Prompts, 1)
}

func TestCheckDescriptionsSkipsEmptyDescriptions(t *testing.T) {
	mock := &MockLLM{Response: `{"contradictions": [{"detail": "x"}]}`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria"},
		},
	}

	assert.Empty(t, checker.CheckDescriptions(context.Background(), snap))
	assert.Empty(t, mock.Prompts)
}

func TestCheckDescriptionsMalformedVerdictAbsorbed(t *testing.T) {
	mock := &MockLLM{Response: `I could not find any contradictions, great writing!`}
	checker := newTestChecker(mock)

	snap := &model.Snapshot{
		Entities: []model.Entity{
			{ID: "aria", Type: model.TypeCharacter, Name: "Aria", Description: "A wandering mage."},
		},
	}

	assert.Empty(t, checker.CheckDescriptions(context.Background(), snap))
}
