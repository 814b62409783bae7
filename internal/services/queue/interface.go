package queue

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/pitwall/simqueue/internal/services/queue Service

// Service defines the interface for the participant, simulator and timing
// operations of the queue engine
type Service interface {
	// CheckIn creates a new waiting record for a ticket and name
	CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error)

	// EditField changes a participant's name or ticket number
	EditField(ctx context.Context, input *EditFieldInput) (*EditFieldOutput, error)

	// ListParticipants returns records, optionally limited to one status
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// ListSimulators returns the simulator fleet
	ListSimulators(ctx context.Context, input *ListSimulatorsInput) (*ListSimulatorsOutput, error)

	// GroupedByPlayer aggregates all records by player identity
	GroupedByPlayer(ctx context.Context, input *GroupedByPlayerInput) (*GroupedByPlayerOutput, error)

	// FilterPlayers applies the operator's search and status filters
	FilterPlayers(ctx context.Context, input *FilterPlayersInput) (*FilterPlayersOutput, error)

	// StartSession assigns a waiting participant to an idle simulator
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// CompleteSession ends a simulator's session and frees the slot
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error)

	// RecordLapTime stores a lap time, keeping the record's minimum
	RecordLapTime(ctx context.Context, input *RecordLapTimeInput) (*RecordLapTimeOutput, error)

	// GlobalBest returns the best lap across all records
	GlobalBest(ctx context.Context, input *GlobalBestInput) (*GlobalBestOutput, error)

	// Leaderboard returns the top players ordered by best lap
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// Stats returns unique-player counts per status
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)

	// Reset clears all records and reinitializes the fleet
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Sync replaces in-memory state with the persisted snapshot
	Sync(ctx context.Context) error
}
