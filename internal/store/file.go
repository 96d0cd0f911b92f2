package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

// FileSource reads a snapshot exported as JSON: {"entities": [...],
// "relationships": [...]}. Missing keys are treated as empty collections —
// partial data still yields a report — but a file that is not valid JSON is
// a load error.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file '%s': %w", f.Path, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file '%s': %w", f.Path, err)
	}

	if snap.Entities == nil {
		snap.Entities = []model.Entity{}
	}
	if snap.Relationships == nil {
		snap.Relationships = []model.Relationship{}
	}

	return &snap, nil
}
