package quest

// Session is the mutable state of one game run. It has a single writer:
// every transition reads the current state and produces the next one as
// one synchronous step. Out-of-sequence calls (answering twice, moving
// to an unconnected room, advancing with nothing pending) are silent
// no-ops rather than errors: unreachable through a correctly rendered
// interface, but harmless for direct use.
type Session struct {
	mode    Mode
	catalog *Catalog
	graph   *Graph
	rules   []Rule

	screen          Screen
	current         int
	currentRoom     string
	visited         map[string]bool
	solved          map[string]bool
	score           int
	lives           int
	streak          int
	perfectRun      bool
	correctCount    int
	pendingAnswer   int
	awaitingAdvance bool
	answered        bool
	lastCorrect     bool
	gameOver        bool
	completed       bool

	achievements []Achievement
}

// NewLinearSession starts a fresh linear run over the catalog.
func NewLinearSession(catalog *Catalog, rules []Rule) *Session {
	s := &Session{mode: ModeLinear, catalog: catalog, rules: rules}
	s.initAchievements()
	s.resetProgress()
	return s
}

// NewDungeonSession starts a fresh dungeon run over the graph.
func NewDungeonSession(graph *Graph, rules []Rule) *Session {
	s := &Session{mode: ModeDungeon, graph: graph, rules: rules}
	s.initAchievements()
	s.resetProgress()
	return s
}

func (s *Session) initAchievements() {
	s.achievements = make([]Achievement, len(s.rules))
	for i, r := range s.rules {
		s.achievements[i] = Achievement{ID: r.ID, Title: r.Title, Description: r.Description}
	}
}

// resetProgress reinstates session-start defaults for every gameplay
// field. Achievement unlocks are deliberately left alone.
func (s *Session) resetProgress() {
	s.screen = ScreenMenu
	s.current = 0
	s.score = 0
	s.lives = StartingLives
	s.streak = 0
	s.perfectRun = true
	s.correctCount = 0
	s.pendingAnswer = -1
	s.awaitingAdvance = false
	s.answered = false
	s.lastCorrect = false
	s.gameOver = false
	s.completed = false
	if s.mode == ModeDungeon {
		s.currentRoom = s.graph.Start()
		s.visited = map[string]bool{s.currentRoom: true}
		s.solved = make(map[string]bool)
	}
}

// currentRiddle resolves the riddle the session is facing, if any. The
// treasure room and a finished linear run have none.
func (s *Session) currentRiddle() (Riddle, bool) {
	switch s.mode {
	case ModeLinear:
		if s.current >= s.catalog.Len() {
			return Riddle{}, false
		}
		return s.catalog.Riddle(s.current), true
	case ModeDungeon:
		room, ok := s.graph.Room(s.currentRoom)
		if !ok || room.Riddle == nil {
			return Riddle{}, false
		}
		return *room.Riddle, true
	}
	return Riddle{}, false
}

// SubmitAnswer records an answer for the current riddle, applies the
// scoring policy, and runs the achievement evaluator. A wrong answer
// that drains the last life ends the game in this same step. Returns
// the achievement ids newly unlocked by this transition.
func (s *Session) SubmitAnswer(optionIndex int) []string {
	if s.gameOver || s.awaitingAdvance {
		return nil
	}
	riddle, ok := s.currentRiddle()
	if !ok {
		return nil
	}
	if s.mode == ModeDungeon && s.solved[s.currentRoom] {
		return nil
	}
	if optionIndex < 0 || optionIndex >= len(riddle.Options) {
		return nil
	}

	correct := optionIndex == riddle.CorrectAnswer
	s.pendingAnswer = optionIndex
	s.awaitingAdvance = true
	s.answered = true
	s.lastCorrect = correct

	p := applyAnswer(progress{
		Score:      s.score,
		Lives:      s.lives,
		Streak:     s.streak,
		PerfectRun: s.perfectRun,
	}, correct, riddle.Points)
	s.score = p.Score
	s.lives = p.Lives
	s.streak = p.Streak
	s.perfectRun = p.PerfectRun

	if correct {
		s.correctCount++
		if s.mode == ModeDungeon {
			s.solved[s.currentRoom] = true
		}
	} else if s.lives == 0 {
		s.gameOver = true
	}

	return s.evaluate()
}

// Advance acknowledges the answer result and moves to the next riddle.
// Past the final riddle it ends the game in victory. Linear mode only;
// a no-op unless an answer is pending acknowledgement.
func (s *Session) Advance() []string {
	if s.mode != ModeLinear || s.gameOver || !s.awaitingAdvance {
		return nil
	}
	s.pendingAnswer = -1
	s.awaitingAdvance = false
	s.answered = false
	s.lastCorrect = false

	if s.current+1 < s.catalog.Len() {
		s.current++
		return s.evaluate()
	}
	s.completed = true
	s.gameOver = true
	return s.evaluate()
}

// MoveToRoom walks to the target room. A single step needs an edge from
// the current room; any already-visited room may be jumped to from the
// map regardless of adjacency. Entering the treasure room ends the game
// in victory whatever the lives count. Dungeon mode only.
func (s *Session) MoveToRoom(roomID string) []string {
	if s.mode != ModeDungeon || s.gameOver {
		return nil
	}
	if _, ok := s.graph.Room(roomID); !ok {
		return nil
	}
	if !s.graph.Connected(s.currentRoom, roomID) && !s.visited[roomID] {
		return nil
	}

	s.currentRoom = roomID
	s.visited[roomID] = true
	s.pendingAnswer = -1
	s.awaitingAdvance = false
	s.answered = false
	s.lastCorrect = false

	if roomID == s.graph.Treasure() {
		s.completed = true
		s.gameOver = true
	}
	return s.evaluate()
}

// Reset abandons the current run and starts over with fresh gameplay
// state. Unlocked achievements survive; rooms and riddles do not.
func (s *Session) Reset() {
	screen := s.screen
	s.resetProgress()
	s.screen = screen
}

// SetScreen navigates between UI screens without touching gameplay
// state. Unknown screens are ignored.
func (s *Session) SetScreen(screen Screen) {
	switch screen {
	case ScreenMenu, ScreenPlaying, ScreenAchievements, ScreenLeaderboard, ScreenRules:
		s.screen = screen
	}
}
