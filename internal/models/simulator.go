package models

import (
	"time"
)

// SimulatorStatus represents the current state of a simulator slot
type SimulatorStatus string

const (
	// SimulatorStatusIdle indicates the simulator is free
	SimulatorStatusIdle SimulatorStatus = "idle"

	// SimulatorStatusBusy indicates the simulator has an active session
	SimulatorStatusBusy SimulatorStatus = "busy"
)

// Simulator represents one racing simulator slot. The fleet is created once
// at process start and cycles between idle and busy.
type Simulator struct {
	// ID is the stable identity of the slot
	ID int64 `json:"id"`

	// Name is the display name of the slot
	Name string `json:"name"`

	// Status is the current state of the slot
	Status SimulatorStatus `json:"status"`

	// CurrentPlayer is the participant record occupying the slot, set iff busy
	CurrentPlayer *Participant `json:"currentPlayer"`

	// StartTime is when the current session started, set iff busy
	StartTime *time.Time `json:"startTime"`
}
