package models

import (
	"time"
)

// Snapshot is the complete serialized state shared between clients through
// the persistence store. Timestamps serialize as ISO-8601 strings; absent
// fields stay null.
type Snapshot struct {
	// Participants holds every check-in record
	Participants []*Participant `json:"participants"`

	// Simulators holds the simulator fleet
	Simulators []*Simulator `json:"simulators"`

	// LastUpdated is when the snapshot was written
	LastUpdated time.Time `json:"lastUpdated"`
}
