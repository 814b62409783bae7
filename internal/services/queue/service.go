package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/pitwall/simqueue/internal/common/uuid"
	"github.com/pitwall/simqueue/internal/models"
	snapshotRepo "github.com/pitwall/simqueue/internal/repositories/snapshot"
)

const (
	defaultSimulatorCount  = 3
	defaultLeaderboardSize = 10
)

// service implements the Service interface. Canonical state lives in memory;
// every mutation writes a full snapshot so other clients sharing the store
// eventually see it.
type service struct {
	simulatorCount  int
	leaderboardSize int

	snapshotRepo snapshotRepo.Repository
	clock        clockwork.Clock
	uuidGen      uuid.UUID

	// mu serializes commands and sync ticks. Both entity updates of a
	// command are applied before the lock is released, so no caller can
	// observe an intermediate state.
	mu           sync.Mutex
	participants []*models.Participant
	simulators   []*models.Simulator
	nextID       int64
}

// New creates a new queue service with an empty queue and a fresh fleet
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	simCount := cfg.SimulatorCount
	if simCount <= 0 {
		simCount = defaultSimulatorCount
	}

	boardSize := cfg.LeaderboardSize
	if boardSize <= 0 {
		boardSize = defaultLeaderboardSize
	}

	return &service{
		simulatorCount:  simCount,
		leaderboardSize: boardSize,
		snapshotRepo:    cfg.SnapshotRepo,
		clock:           cfg.Clock,
		uuidGen:         cfg.UUIDGenerator,
		participants:    []*models.Participant{},
		simulators:      newFleet(simCount),
		nextID:          1,
	}, nil
}

// newFleet creates the fixed simulator slots, identities 1..count
func newFleet(count int) []*models.Simulator {
	sims := make([]*models.Simulator, 0, count)
	for i := 1; i <= count; i++ {
		sims = append(sims, &models.Simulator{
			ID:     int64(i),
			Name:   fmt.Sprintf("Simulator %d", i),
			Status: models.SimulatorStatusIdle,
		})
	}
	return sims
}

// persistLocked writes a full snapshot after a mutation. A store failure is
// logged and swallowed: the in-memory change already took effect and the
// command is still considered successful, at the cost of a durability gap
// until the next successful write.
func (s *service) persistLocked(ctx context.Context) {
	snap := &models.Snapshot{
		Participants: s.participants,
		Simulators:   s.simulators,
		LastUpdated:  s.clock.Now(),
	}

	if err := s.snapshotRepo.Save(ctx, &snapshotRepo.SaveInput{Snapshot: snap}); err != nil {
		log.Warn().Err(err).Msg("snapshot write failed, in-memory state is ahead of the store")
	}
}

func (s *service) findParticipantLocked(id int64) *models.Participant {
	for _, p := range s.participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *service) findSimulatorLocked(id int64) *models.Simulator {
	for _, sim := range s.simulators {
		if sim.ID == id {
			return sim
		}
	}
	return nil
}

// ListParticipants returns records, optionally limited to one status
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participants := make([]*models.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		if input.Status != "" && p.Status != input.Status {
			continue
		}
		participants = append(participants, p)
	}

	return &ListParticipantsOutput{Participants: participants}, nil
}

// ListSimulators returns the simulator fleet
func (s *service) ListSimulators(ctx context.Context, input *ListSimulatorsInput) (*ListSimulatorsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sims := make([]*models.Simulator, len(s.simulators))
	copy(sims, s.simulators)

	return &ListSimulatorsOutput{Simulators: sims}, nil
}

// Stats returns unique-player counts per status and the global best lap
func (s *service) Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := make(map[models.PlayerKey]struct{})
	byStatus := map[models.ParticipantStatus]map[models.PlayerKey]struct{}{
		models.ParticipantStatusWaiting:   {},
		models.ParticipantStatusPlaying:   {},
		models.ParticipantStatusCompleted: {},
	}

	for _, p := range s.participants {
		key := p.Key()
		total[key] = struct{}{}
		byStatus[p.Status][key] = struct{}{}
	}

	return &StatsOutput{
		TotalPlayers:     len(total),
		WaitingPlayers:   len(byStatus[models.ParticipantStatusWaiting]),
		PlayingPlayers:   len(byStatus[models.ParticipantStatusPlaying]),
		CompletedPlayers: len(byStatus[models.ParticipantStatusCompleted]),
		BestLapTime:      s.globalBestLocked(),
	}, nil
}

// Reset clears all records and reinitializes the fleet. This is the only
// operation that ever removes participant records.
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.participants = []*models.Participant{}
	s.simulators = newFleet(s.simulatorCount)
	s.nextID = 1
	s.persistLocked(ctx)

	log.Info().Msg("queue state reset")

	return &ResetOutput{}, nil
}
