package models

// LeaderboardEntry holds one player's best record on the leaderboard
type LeaderboardEntry struct {
	// RecordID is the ID of the record holding the player's best lap
	RecordID int64

	// TicketNumber is the player's ticket identifier
	TicketNumber string

	// Name is the player's name
	Name string

	// LapTime is the player's best lap in seconds
	LapTime float64

	// AttemptsWithTime is how many of the player's records carry a lap time
	AttemptsWithTime int
}
