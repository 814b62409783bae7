package snapshot

import (
	"context"

	"github.com/pitwall/simqueue/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pitwall/simqueue/internal/repositories/snapshot Repository

// Repository defines the interface for snapshot persistence. The whole state
// lives under a single named key shared by every client.
type Repository interface {
	// Save writes a full snapshot, replacing the previous one
	Save(ctx context.Context, input *SaveInput) error

	// Load reads the current snapshot, ErrSnapshotNotFound if none was written
	Load(ctx context.Context, input *LoadInput) (*models.Snapshot, error)
}
