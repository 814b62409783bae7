package queue

func (s *QueueServiceTestSuite) TestGlobalBest() {
	out, err := s.svc.GlobalBest(s.ctx, &GlobalBestInput{})
	s.Require().NoError(err)
	s.Nil(out.LapTime)

	alice := s.checkIn("A1", "Alice")
	s.recordLap(alice, "1", "30", "0")
	bob := s.checkIn("B2", "Bob")
	s.recordLap(bob, "1", "20", "0")

	out, err = s.svc.GlobalBest(s.ctx, &GlobalBestInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out.LapTime)
	s.Equal(80.0, *out.LapTime)
}

func (s *QueueServiceTestSuite) TestLeaderboardOneEntryPerPlayer() {
	// Alice improves over two runs
	first := s.checkIn("A1", "Alice")
	s.runSession(1, first)
	s.recordLap(first, "1", "30", "0")

	second := s.checkIn("A1", "Alice")
	s.runSession(1, second)
	s.recordLap(second, "1", "20", "0")

	bob := s.checkIn("B2", "Bob")
	s.recordLap(bob, "1", "25", "0")

	// Cara has no lap time and stays off the board
	s.checkIn("C3", "Cara")

	out, err := s.svc.Leaderboard(s.ctx, &LeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)

	s.Equal("Alice", out.Entries[0].Name)
	s.Equal(80.0, out.Entries[0].LapTime)
	s.Equal(second.ID, out.Entries[0].RecordID)
	s.Equal(2, out.Entries[0].AttemptsWithTime)

	s.Equal("Bob", out.Entries[1].Name)
	s.Equal(85.0, out.Entries[1].LapTime)
	s.Equal(1, out.Entries[1].AttemptsWithTime)
}

func (s *QueueServiceTestSuite) TestLeaderboardTieBreaksOnLowerRecordID() {
	alice := s.checkIn("A1", "Alice")
	s.recordLap(alice, "1", "20", "0")

	bob := s.checkIn("B2", "Bob")
	s.recordLap(bob, "1", "20", "0")

	out, err := s.svc.Leaderboard(s.ctx, &LeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal(alice.ID, out.Entries[0].RecordID)
	s.Equal(bob.ID, out.Entries[1].RecordID)
}

func (s *QueueServiceTestSuite) TestLeaderboardTruncates() {
	tickets := []struct {
		ticket  string
		name    string
		seconds string
	}{
		{"A1", "Alice", "30"},
		{"B2", "Bob", "20"},
		{"C3", "Cara", "25"},
	}
	for _, t := range tickets {
		p := s.checkIn(t.ticket, t.name)
		s.recordLap(p, "1", t.seconds, "0")
	}

	out, err := s.svc.Leaderboard(s.ctx, &LeaderboardInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("Bob", out.Entries[0].Name)
	s.Equal("Cara", out.Entries[1].Name)
}
