package queue

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// RecordLapTime stores a lap time for a record, keeping the minimum ever
// entered. A slower candidate leaves the stored time untouched and the
// outcome tells the caller which message to show.
func (s *service) RecordLapTime(ctx context.Context, input *RecordLapTimeInput) (*RecordLapTimeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	minutes := parseComponent(input.Minutes)
	seconds := parseComponent(input.Seconds)
	milliseconds := parseComponent(input.Milliseconds)

	if seconds >= 60 || milliseconds >= 1000 {
		return nil, ErrValidation
	}

	candidate := float64(minutes)*60 + float64(seconds) + float64(milliseconds)/1000
	if candidate == 0 {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participant := s.findParticipantLocked(input.ParticipantID)
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	outcome := LapTimeNotImproved
	switch {
	case participant.LapTime == nil:
		participant.LapTime = &candidate
		outcome = LapTimeRecorded
	case candidate < *participant.LapTime:
		participant.LapTime = &candidate
		outcome = LapTimeImproved
	}

	s.persistLocked(ctx)

	if outcome != LapTimeNotImproved {
		log.Info().
			Int64("participant_id", participant.ID).
			Float64("lap_time", candidate).
			Msg("lap time stored")
	}

	return &RecordLapTimeOutput{Outcome: outcome, LapTime: *participant.LapTime}, nil
}

// parseComponent parses one lap time component; missing, malformed or
// negative input counts as zero
func parseComponent(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatLapTime renders a lap time in seconds as "M:SS.mmm"
func FormatLapTime(lapTime float64) string {
	minutes := int(lapTime) / 60
	seconds := lapTime - float64(minutes)*60
	return fmt.Sprintf("%d:%06.3f", minutes, seconds)
}

// FormatDelta renders the gap to the best lap as "+M:SS.mmm", or "+S.ssss"
// when under a minute. Equal or missing operands render as empty.
func FormatDelta(lapTime, best *float64) string {
	if lapTime == nil || best == nil || *lapTime == *best {
		return ""
	}

	delta := *lapTime - *best
	minutes := int(delta) / 60
	seconds := delta - float64(minutes)*60
	if minutes > 0 {
		return fmt.Sprintf("+%d:%06.3f", minutes, seconds)
	}
	return fmt.Sprintf("+%.3fs", seconds)
}

// FormatPlayDuration renders the elapsed session time as "M:SS" for the
// display clock. Pure read, safe to call every tick.
func FormatPlayDuration(start *time.Time, now time.Time) string {
	if start == nil {
		return ""
	}

	total := int(now.Sub(*start).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
