package queue

import (
	"context"
	"sort"

	"github.com/pitwall/simqueue/internal/models"
)

// GlobalBest returns the minimum lap time across all records, nil when no
// lap has been recorded yet
func (s *service) GlobalBest(ctx context.Context, input *GlobalBestInput) (*GlobalBestOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GlobalBestOutput{LapTime: s.globalBestLocked()}, nil
}

func (s *service) globalBestLocked() *float64 {
	var best *float64
	for _, p := range s.participants {
		if p.LapTime == nil {
			continue
		}
		if best == nil || *p.LapTime < *best {
			value := *p.LapTime
			best = &value
		}
	}
	return best
}

// Leaderboard returns the top players ordered by best lap ascending, at most
// one entry per player identity. Ties on lap time break toward the lower
// record ID so the ordering is stable across clients.
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.leaderboardSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	best := make(map[models.PlayerKey]*models.LeaderboardEntry)
	for _, p := range s.participants {
		if p.LapTime == nil {
			continue
		}

		key := p.Key()
		entry, ok := best[key]
		if !ok {
			best[key] = &models.LeaderboardEntry{
				RecordID:     p.ID,
				TicketNumber: p.TicketNumber,
				Name:         p.Name,
				LapTime:      *p.LapTime,
			}
			continue
		}

		if *p.LapTime < entry.LapTime || (*p.LapTime == entry.LapTime && p.ID < entry.RecordID) {
			entry.RecordID = p.ID
			entry.LapTime = *p.LapTime
		}
	}

	// Attempt counts cover every timed record, not just the best one
	for _, p := range s.participants {
		if p.LapTime == nil {
			continue
		}
		best[p.Key()].AttemptsWithTime++
	}

	entries := make([]*models.LeaderboardEntry, 0, len(best))
	for _, entry := range best {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LapTime == entries[j].LapTime {
			return entries[i].RecordID < entries[j].RecordID
		}
		return entries[i].LapTime < entries[j].LapTime
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &LeaderboardOutput{Entries: entries}, nil
}
