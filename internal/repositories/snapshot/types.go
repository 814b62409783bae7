package snapshot

import "github.com/pitwall/simqueue/internal/models"

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	Snapshot *models.Snapshot
}

// LoadInput contains parameters for loading a snapshot
type LoadInput struct{}
