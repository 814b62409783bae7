package queue

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	snapshotRepo "github.com/pitwall/simqueue/internal/repositories/snapshot"
)

// DefaultSyncInterval is how often the coordinator polls the store
const DefaultSyncInterval = 5 * time.Second

// Sync replaces in-memory participants and simulators with the persisted
// snapshot wholesale. Last writer wins: a local change not yet persisted by
// this process and absent from the snapshot is silently dropped. This is the
// accepted eventual-consistency tradeoff of sharing one snapshot key.
func (s *service) Sync(ctx context.Context) error {
	snap, err := s.snapshotRepo.Load(ctx, &snapshotRepo.LoadInput{})
	if err != nil {
		// Nothing written yet, keep the current state
		if errors.Is(err, snapshotRepo.ErrSnapshotNotFound) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Participants != nil {
		s.participants = snap.Participants
	}
	if snap.Simulators != nil {
		s.simulators = snap.Simulators
	}

	// Keep IDs monotonic across the records we just adopted
	nextID := int64(1)
	for _, p := range s.participants {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	s.nextID = nextID

	return nil
}

// CoordinatorConfig holds configuration for the sync coordinator
type CoordinatorConfig struct {
	// Service is the engine to reconcile
	Service Service

	// Clock drives the poll ticker
	Clock clockwork.Clock

	// Interval between polls, DefaultSyncInterval when zero
	Interval time.Duration
}

// Coordinator periodically reconciles the engine against the persisted
// snapshot so changes made by other clients become visible
type Coordinator struct {
	service  Service
	clock    clockwork.Clock
	interval time.Duration
}

// NewCoordinator creates a new sync coordinator
func NewCoordinator(cfg *CoordinatorConfig) (*Coordinator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Service == nil {
		return nil, ErrNilService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	return &Coordinator{
		service:  cfg.Service,
		clock:    cfg.Clock,
		interval: interval,
	}, nil
}

// Run polls the store until the context is cancelled. The ticker is stopped
// on return so shutdown does not leak timers.
func (c *Coordinator) Run(ctx context.Context) {
	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := c.service.Sync(ctx); err != nil {
				log.Warn().Err(err).Msg("snapshot sync failed")
			}
		}
	}
}
