package queue

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pitwall/simqueue/internal/models"
)

// CheckIn creates a new waiting record for a ticket and name. A ticket is
// bound to the first name it was used with: re-use under a different name is
// a conflict, and a player cannot hold two active records at once.
func (s *service) CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	ticket := strings.TrimSpace(input.TicketNumber)
	name := strings.TrimSpace(input.Name)
	if ticket == "" || name == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.participants {
		if p.TicketNumber != ticket {
			continue
		}

		// Completed history may reuse a ticket, but only with its original name
		if p.Name != name {
			return nil, ErrTicketConflict
		}

		switch p.Status {
		case models.ParticipantStatusWaiting:
			return nil, ErrAlreadyQueued
		case models.ParticipantStatusPlaying:
			return nil, ErrAlreadyPlaying
		}
	}

	now := s.clock.Now()
	participant := &models.Participant{
		ID:           s.nextID,
		TicketNumber: ticket,
		Name:         name,
		Status:       models.ParticipantStatusWaiting,
		QueueTime:    &now,
		GameSession:  s.uuidGen.NewUUID(),
	}
	s.nextID++

	s.participants = append(s.participants, participant)
	s.persistLocked(ctx)

	log.Info().
		Int64("participant_id", participant.ID).
		Str("ticket", ticket).
		Msg("participant checked in")

	return &CheckInOutput{Participant: participant}, nil
}

// EditField changes a participant's name or ticket number in place
func (s *service) EditField(ctx context.Context, input *EditFieldInput) (*EditFieldOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	value := strings.TrimSpace(input.Value)
	if value == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participant := s.findParticipantLocked(input.ParticipantID)
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	switch input.Field {
	case FieldName:
		participant.Name = value
	case FieldTicketNumber:
		for _, other := range s.participants {
			if other.ID != participant.ID && other.TicketNumber == value {
				return nil, ErrTicketConflict
			}
		}
		participant.TicketNumber = value
	default:
		return nil, ErrUnknownField
	}

	s.persistLocked(ctx)

	return &EditFieldOutput{Participant: participant}, nil
}

// GroupedByPlayer aggregates all records by player identity
func (s *service) GroupedByPlayer(ctx context.Context, input *GroupedByPlayerInput) (*GroupedByPlayerOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GroupedByPlayerOutput{Players: s.groupPlayersLocked()}, nil
}

// FilterPlayers applies the operator's search and status filters on top of
// the per-player grouping
func (s *service) FilterPlayers(ctx context.Context, input *FilterPlayersInput) (*FilterPlayersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticketSearch := strings.ToLower(strings.TrimSpace(input.TicketSearch))
	nameSearch := strings.ToLower(strings.TrimSpace(input.NameSearch))

	players := make([]*models.PlayerGroup, 0)
	for _, group := range s.groupPlayersLocked() {
		if !input.ShowAll && !statusShown(input, group.OverallStatus) {
			continue
		}
		if input.WithoutLapTime && group.BestLapTime != nil {
			continue
		}
		if ticketSearch != "" && !strings.Contains(strings.ToLower(group.Key.TicketNumber), ticketSearch) {
			continue
		}
		if nameSearch != "" && !strings.Contains(strings.ToLower(group.Key.Name), nameSearch) {
			continue
		}
		players = append(players, group)
	}

	return &FilterPlayersOutput{Players: players}, nil
}

func statusShown(input *FilterPlayersInput, status models.ParticipantStatus) bool {
	switch status {
	case models.ParticipantStatusWaiting:
		return input.ShowWaiting
	case models.ParticipantStatusPlaying:
		return input.ShowPlaying
	case models.ParticipantStatusCompleted:
		return input.ShowCompleted
	default:
		return false
	}
}

// groupPlayersLocked builds one group per player identity, preserving the
// first-seen order of players
func (s *service) groupPlayersLocked() []*models.PlayerGroup {
	groups := make(map[models.PlayerKey]*models.PlayerGroup)
	order := make([]models.PlayerKey, 0)

	for _, p := range s.participants {
		key := p.Key()
		group, ok := groups[key]
		if !ok {
			group = &models.PlayerGroup{Key: key}
			groups[key] = group
			order = append(order, key)
		}
		group.Records = append(group.Records, p)
	}

	players := make([]*models.PlayerGroup, 0, len(order))
	for _, key := range order {
		group := groups[key]

		sort.SliceStable(group.Records, func(i, j int) bool {
			a, b := group.Records[i], group.Records[j]
			if a.QueueTime == nil || b.QueueTime == nil || a.QueueTime.Equal(*b.QueueTime) {
				return a.ID < b.ID
			}
			return a.QueueTime.Before(*b.QueueTime)
		})

		hasWaiting := false
		hasPlaying := false
		for _, r := range group.Records {
			switch r.Status {
			case models.ParticipantStatusWaiting:
				hasWaiting = true
			case models.ParticipantStatusPlaying:
				hasPlaying = true
			case models.ParticipantStatusCompleted:
				group.CompletedGames++
			}

			if r.LapTime != nil && (group.BestLapTime == nil || *r.LapTime < *group.BestLapTime) {
				best := *r.LapTime
				group.BestLapTime = &best
			}
		}

		// A player in any playing record counts as playing, then waiting,
		// then completed
		switch {
		case hasPlaying:
			group.OverallStatus = models.ParticipantStatusPlaying
		case hasWaiting:
			group.OverallStatus = models.ParticipantStatusWaiting
		default:
			group.OverallStatus = models.ParticipantStatusCompleted
		}

		group.TotalGames = len(group.Records)
		group.FirstSignupTime = group.Records[0].QueueTime

		last := group.Records[len(group.Records)-1]
		if last.CompletedTime != nil {
			group.LastActivity = last.CompletedTime
		} else {
			group.LastActivity = last.QueueTime
		}

		players = append(players, group)
	}

	return players
}
