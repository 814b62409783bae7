package models

import (
	"time"
)

// PlayerKey identifies a person across their check-in records. Grouping uses
// the pair as a value type rather than a concatenated string so tickets and
// names containing separators cannot collide.
type PlayerKey struct {
	// TicketNumber is the physical ticket identifier
	TicketNumber string

	// Name is the player name bound to the ticket
	Name string
}

// PlayerGroup aggregates all records belonging to one player identity
type PlayerGroup struct {
	// Key is the player identity
	Key PlayerKey

	// Records holds the player's records sorted by queue time ascending
	Records []*Participant

	// BestLapTime is the minimum lap time across the records, nil if none
	BestLapTime *float64

	// OverallStatus is derived with priority playing > waiting > completed
	OverallStatus ParticipantStatus

	// TotalGames is the number of records in the group
	TotalGames int

	// CompletedGames is the number of completed records in the group
	CompletedGames int

	// FirstSignupTime is the queue time of the oldest record
	FirstSignupTime *time.Time

	// LastActivity is the completion time of the newest record, or its queue time
	LastActivity *time.Time
}
