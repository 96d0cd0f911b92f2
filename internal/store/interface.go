package store

import (
	"context"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

// SnapshotSource produces the immutable world snapshot a check run operates
// on. How the snapshot is obtained (file export, graph query) is the
// source's concern; the pipeline only sees the result.
type SnapshotSource interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}
