package queue

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/pitwall/simqueue/internal/models"
)

// StartSession assigns a waiting participant to an idle simulator. The
// operator picks the participant; the scheduler only validates eligibility.
// Simulator and participant are updated under one lock acquisition, so no
// intermediate state is observable.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sim := s.findSimulatorLocked(input.SimulatorID)
	if sim == nil {
		return nil, ErrSimulatorNotFound
	}

	if sim.Status != models.SimulatorStatusIdle {
		return nil, ErrSimulatorNotIdle
	}

	participant := s.findParticipantLocked(input.ParticipantID)
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	if participant.Status != models.ParticipantStatusWaiting {
		return nil, ErrParticipantNotWaiting
	}

	now := s.clock.Now()

	sim.Status = models.SimulatorStatusBusy
	sim.CurrentPlayer = participant
	sim.StartTime = &now

	participant.Status = models.ParticipantStatusPlaying
	participant.PlayTime = &now

	s.persistLocked(ctx)

	log.Info().
		Int64("simulator_id", sim.ID).
		Int64("participant_id", participant.ID).
		Msg("session started")

	return &StartSessionOutput{Simulator: sim, Participant: participant}, nil
}

// CompleteSession ends a simulator's session, frees the slot and marks the
// participant completed. The returned participant ID lets the caller run the
// lap-time capture flow.
func (s *service) CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sim := s.findSimulatorLocked(input.SimulatorID)
	if sim == nil {
		return nil, ErrSimulatorNotFound
	}

	if sim.CurrentPlayer == nil {
		return nil, ErrNoActiveSession
	}

	participantID := sim.CurrentPlayer.ID

	sim.Status = models.SimulatorStatusIdle
	sim.CurrentPlayer = nil
	sim.StartTime = nil

	participant := s.findParticipantLocked(participantID)
	if participant != nil {
		now := s.clock.Now()
		participant.Status = models.ParticipantStatusCompleted
		participant.CompletedTime = &now
	}

	s.persistLocked(ctx)

	log.Info().
		Int64("simulator_id", sim.ID).
		Int64("participant_id", participantID).
		Msg("session completed")

	return &CompleteSessionOutput{ParticipantID: participantID, Participant: participant}, nil
}
