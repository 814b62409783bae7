package models

import (
	"time"
)

// ParticipantStatus represents the current state of a participant record
type ParticipantStatus string

const (
	// ParticipantStatusWaiting indicates the participant is in the walk-up queue
	ParticipantStatusWaiting ParticipantStatus = "waiting"

	// ParticipantStatusPlaying indicates the participant is on a simulator
	ParticipantStatusPlaying ParticipantStatus = "playing"

	// ParticipantStatusCompleted indicates the participant finished their session
	ParticipantStatusCompleted ParticipantStatus = "completed"
)

// Participant represents one check-in record. A player may accumulate many
// records over time; records are never deleted individually.
type Participant struct {
	// ID is unique and assigned monotonically at check-in
	ID int64 `json:"id"`

	// TicketNumber identifies the physical queue ticket
	TicketNumber string `json:"ticketNumber"`

	// Name is the player name bound to the ticket number
	Name string `json:"name"`

	// Status is the current state of this record
	Status ParticipantStatus `json:"status"`

	// QueueTime is when the record was created, set exactly once
	QueueTime *time.Time `json:"queueTime"`

	// PlayTime is when the record was assigned a simulator, set exactly once
	PlayTime *time.Time `json:"playTime"`

	// CompletedTime is when the session ended, set exactly once
	CompletedTime *time.Time `json:"completedTime"`

	// LapTime is the best lap for this record in seconds; it only ever decreases
	LapTime *float64 `json:"lapTime"`

	// GameSession is an opaque token distinguishing repeated play instances
	GameSession string `json:"gameSession"`
}

// IsActive reports whether the record counts against ticket uniqueness
func (p *Participant) IsActive() bool {
	return p.Status == ParticipantStatusWaiting || p.Status == ParticipantStatusPlaying
}

// Key returns the player identity this record belongs to
func (p *Participant) Key() PlayerKey {
	return PlayerKey{TicketNumber: p.TicketNumber, Name: p.Name}
}
