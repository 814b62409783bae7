package queue

import (
	"github.com/pitwall/simqueue/internal/models"
)

func (s *QueueServiceTestSuite) TestStartSession() {
	alice := s.checkIn("A1", "Alice")

	out, err := s.svc.StartSession(s.ctx, &StartSessionInput{
		SimulatorID:   1,
		ParticipantID: alice.ID,
	})
	s.Require().NoError(err)

	s.Equal(models.SimulatorStatusBusy, out.Simulator.Status)
	s.Require().NotNil(out.Simulator.CurrentPlayer)
	s.Equal(alice.ID, out.Simulator.CurrentPlayer.ID)
	s.Require().NotNil(out.Simulator.StartTime)
	s.Equal(s.testTime, *out.Simulator.StartTime)

	s.Equal(models.ParticipantStatusPlaying, out.Participant.Status)
	s.Require().NotNil(out.Participant.PlayTime)
	s.Equal(s.testTime, *out.Participant.PlayTime)
}

func (s *QueueServiceTestSuite) TestStartSessionOnBusySimulator() {
	alice := s.checkIn("A1", "Alice")
	bob := s.checkIn("B2", "Bob")

	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 1, ParticipantID: alice.ID})
	s.Require().NoError(err)

	_, err = s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 1, ParticipantID: bob.ID})
	s.ErrorIs(err, ErrSimulatorNotIdle)

	// A rejected start leaves both entities untouched
	s.Equal(models.ParticipantStatusWaiting, bob.Status)
	s.Nil(bob.PlayTime)

	sims, err := s.svc.ListSimulators(s.ctx, &ListSimulatorsInput{})
	s.Require().NoError(err)
	s.Equal(alice.ID, sims.Simulators[0].CurrentPlayer.ID)
}

func (s *QueueServiceTestSuite) TestStartSessionParticipantNotWaiting() {
	alice := s.checkIn("A1", "Alice")
	s.runSession(1, alice)

	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 2, ParticipantID: alice.ID})
	s.ErrorIs(err, ErrParticipantNotWaiting)

	sims, err := s.svc.ListSimulators(s.ctx, &ListSimulatorsInput{})
	s.Require().NoError(err)
	s.Equal(models.SimulatorStatusIdle, sims.Simulators[1].Status)
	s.Nil(sims.Simulators[1].CurrentPlayer)
}

func (s *QueueServiceTestSuite) TestStartSessionUnknownEntities() {
	alice := s.checkIn("A1", "Alice")

	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 42, ParticipantID: alice.ID})
	s.ErrorIs(err, ErrSimulatorNotFound)

	_, err = s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 1, ParticipantID: 42})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *QueueServiceTestSuite) TestCompleteSession() {
	alice := s.checkIn("A1", "Alice")
	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 1, ParticipantID: alice.ID})
	s.Require().NoError(err)

	out, err := s.svc.CompleteSession(s.ctx, &CompleteSessionInput{SimulatorID: 1})
	s.Require().NoError(err)
	s.Equal(alice.ID, out.ParticipantID)

	s.Equal(models.ParticipantStatusCompleted, alice.Status)
	s.Require().NotNil(alice.CompletedTime)
	s.Equal(s.testTime, *alice.CompletedTime)

	sims, err := s.svc.ListSimulators(s.ctx, &ListSimulatorsInput{})
	s.Require().NoError(err)
	s.Equal(models.SimulatorStatusIdle, sims.Simulators[0].Status)
	s.Nil(sims.Simulators[0].CurrentPlayer)
	s.Nil(sims.Simulators[0].StartTime)
}

func (s *QueueServiceTestSuite) TestCompleteSessionWithoutActiveSession() {
	_, err := s.svc.CompleteSession(s.ctx, &CompleteSessionInput{SimulatorID: 1})
	s.ErrorIs(err, ErrNoActiveSession)

	_, err = s.svc.CompleteSession(s.ctx, &CompleteSessionInput{SimulatorID: 42})
	s.ErrorIs(err, ErrSimulatorNotFound)
}

func (s *QueueServiceTestSuite) TestSimulatorFleetIsIndependent() {
	alice := s.checkIn("A1", "Alice")
	bob := s.checkIn("B2", "Bob")

	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 1, ParticipantID: alice.ID})
	s.Require().NoError(err)
	_, err = s.svc.StartSession(s.ctx, &StartSessionInput{SimulatorID: 3, ParticipantID: bob.ID})
	s.Require().NoError(err)

	_, err = s.svc.CompleteSession(s.ctx, &CompleteSessionInput{SimulatorID: 1})
	s.Require().NoError(err)

	sims, err := s.svc.ListSimulators(s.ctx, &ListSimulatorsInput{})
	s.Require().NoError(err)
	s.Equal(models.SimulatorStatusIdle, sims.Simulators[0].Status)
	s.Equal(models.SimulatorStatusIdle, sims.Simulators[1].Status)
	s.Equal(models.SimulatorStatusBusy, sims.Simulators[2].Status)
	s.Equal(models.ParticipantStatusPlaying, bob.Status)
}
