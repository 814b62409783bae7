package queue

import (
	"github.com/jonboulle/clockwork"

	"github.com/pitwall/simqueue/internal/common/uuid"
	"github.com/pitwall/simqueue/internal/models"
	snapshotRepo "github.com/pitwall/simqueue/internal/repositories/snapshot"
)

// EditableField identifies a participant field the operator may edit
type EditableField string

const (
	// FieldName edits the participant name
	FieldName EditableField = "name"

	// FieldTicketNumber edits the ticket number
	FieldTicketNumber EditableField = "ticketNumber"
)

// LapTimeOutcome reports what happened to a submitted lap time
type LapTimeOutcome string

const (
	// LapTimeRecorded indicates a first lap time was stored for the record
	LapTimeRecorded LapTimeOutcome = "recorded"

	// LapTimeImproved indicates the submitted time beat the previous best
	LapTimeImproved LapTimeOutcome = "improved"

	// LapTimeNotImproved indicates the previous best was kept
	LapTimeNotImproved LapTimeOutcome = "not_improved"
)

// Config holds configuration for the queue service
type Config struct {
	// Number of simulator slots created at startup
	SimulatorCount int

	// Maximum number of leaderboard entries returned by default
	LeaderboardSize int

	// Repository dependencies
	SnapshotRepo snapshotRepo.Repository

	// Service dependencies
	Clock         clockwork.Clock
	UUIDGenerator uuid.UUID
}

// CheckInInput contains parameters for checking in a participant
type CheckInInput struct {
	// TicketNumber is the physical ticket identifier
	TicketNumber string

	// Name is the participant name
	Name string
}

// CheckInOutput contains the result of a check-in
type CheckInOutput struct {
	// Participant is the newly created waiting record
	Participant *models.Participant
}

// EditFieldInput contains parameters for editing a participant field
type EditFieldInput struct {
	// ParticipantID identifies the record to edit
	ParticipantID int64

	// Field selects the field to change
	Field EditableField

	// Value is the new field value
	Value string
}

// EditFieldOutput contains the result of an edit
type EditFieldOutput struct {
	Participant *models.Participant
}

// ListParticipantsInput contains parameters for listing participant records
type ListParticipantsInput struct {
	// Status limits the listing to one status, empty for all records
	Status models.ParticipantStatus
}

// ListParticipantsOutput contains the result of listing participant records
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// ListSimulatorsInput contains parameters for listing the simulator fleet
type ListSimulatorsInput struct{}

// ListSimulatorsOutput contains the simulator fleet
type ListSimulatorsOutput struct {
	Simulators []*models.Simulator
}

// GroupedByPlayerInput contains parameters for grouping records by player
type GroupedByPlayerInput struct{}

// GroupedByPlayerOutput contains one group per player identity
type GroupedByPlayerOutput struct {
	Players []*models.PlayerGroup
}

// FilterPlayersInput contains the operator's search and filter settings
type FilterPlayersInput struct {
	// TicketSearch is a case-insensitive substring match on ticket numbers
	TicketSearch string

	// NameSearch is a case-insensitive substring match on names
	NameSearch string

	// ShowAll disables the status filters
	ShowAll bool

	// Status filters, OR'd together when ShowAll is false
	ShowWaiting   bool
	ShowPlaying   bool
	ShowCompleted bool

	// WithoutLapTime keeps only players with no recorded lap
	WithoutLapTime bool
}

// FilterPlayersOutput contains the players matching the filters
type FilterPlayersOutput struct {
	Players []*models.PlayerGroup
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// SimulatorID is the slot chosen by the operator
	SimulatorID int64

	// ParticipantID is the waiting record chosen by the operator
	ParticipantID int64
}

// StartSessionOutput contains the entities after the session started
type StartSessionOutput struct {
	Simulator   *models.Simulator
	Participant *models.Participant
}

// CompleteSessionInput contains parameters for completing a session
type CompleteSessionInput struct {
	SimulatorID int64
}

// CompleteSessionOutput contains the result of completing a session
type CompleteSessionOutput struct {
	// ParticipantID identifies the completed record so the caller can run
	// the lap-time capture flow
	ParticipantID int64

	Participant *models.Participant
}

// RecordLapTimeInput contains the raw lap time components as entered by the
// operator. Each component is parsed as a non-negative integer; missing or
// invalid values count as zero.
type RecordLapTimeInput struct {
	ParticipantID int64

	Minutes      string
	Seconds      string
	Milliseconds string
}

// RecordLapTimeOutput contains the result of recording a lap time
type RecordLapTimeOutput struct {
	// Outcome reports whether the time was stored
	Outcome LapTimeOutcome

	// LapTime is the record's best lap after the operation
	LapTime float64
}

// GlobalBestInput contains parameters for querying the global best lap
type GlobalBestInput struct{}

// GlobalBestOutput contains the global best lap, nil when none was recorded
type GlobalBestOutput struct {
	LapTime *float64
}

// LeaderboardInput contains parameters for building the leaderboard
type LeaderboardInput struct {
	// Limit truncates the leaderboard, the configured size when zero
	Limit int
}

// LeaderboardOutput contains the leaderboard, best lap first
type LeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// StatsInput contains parameters for the stats summary
type StatsInput struct{}

// StatsOutput contains unique-player counts and the global best lap
type StatsOutput struct {
	TotalPlayers     int
	WaitingPlayers   int
	PlayingPlayers   int
	CompletedPlayers int
	BestLapTime      *float64
}

// ResetInput contains parameters for a full state reset
type ResetInput struct{}

// ResetOutput contains the result of a full state reset
type ResetOutput struct{}
