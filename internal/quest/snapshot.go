package quest

// RoomState pairs a room definition with its per-session flags.
type RoomState struct {
	Room    Room
	Solved  bool
	Visited bool
}

// Snapshot is a read-only copy of the full session state, taken after a
// transition for the presentation layer to render. Mutating a snapshot
// has no effect on the session.
type Snapshot struct {
	Mode   Mode
	Screen Screen

	// Linear position.
	CurrentIndex int
	TotalRiddles int

	// Dungeon position.
	CurrentRoomID string
	Rooms         []RoomState

	CurrentRiddle *Riddle

	Score        int
	Lives        int
	Streak       int
	PerfectRun   bool
	CorrectCount int

	PendingAnswer     *int
	AwaitingAdvance   bool
	LastAnswerCorrect *bool

	GameOver bool
	Victory  bool

	Achievements []Achievement
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:            s.mode,
		Screen:          s.screen,
		Score:           s.score,
		Lives:           s.lives,
		Streak:          s.streak,
		PerfectRun:      s.perfectRun,
		CorrectCount:    s.correctCount,
		AwaitingAdvance: s.awaitingAdvance,
		GameOver:        s.gameOver,
		Victory:         s.completed,
	}

	if s.pendingAnswer >= 0 {
		pending := s.pendingAnswer
		snap.PendingAnswer = &pending
	}
	if s.answered {
		last := s.lastCorrect
		snap.LastAnswerCorrect = &last
	}

	if riddle, ok := s.currentRiddle(); ok {
		r := riddle
		snap.CurrentRiddle = &r
	}

	switch s.mode {
	case ModeLinear:
		snap.CurrentIndex = s.current
		snap.TotalRiddles = s.catalog.Len()
	case ModeDungeon:
		snap.CurrentRoomID = s.currentRoom
		rooms := s.graph.Rooms()
		snap.Rooms = make([]RoomState, len(rooms))
		for i, room := range rooms {
			snap.Rooms[i] = RoomState{
				Room:    room,
				Solved:  s.solved[room.ID],
				Visited: s.visited[room.ID],
			}
		}
		snap.TotalRiddles = len(rooms) - 1
	}

	snap.Achievements = make([]Achievement, len(s.achievements))
	copy(snap.Achievements, s.achievements)

	return snap
}
