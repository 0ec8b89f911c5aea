package quest

// StartingLives is the number of lives a fresh session holds.
const StartingLives = 3

// progress holds the counters the scoring policy operates on.
type progress struct {
	Score      int
	Lives      int
	Streak     int
	PerfectRun bool
}

// applyAnswer is the scoring and streak policy: a correct answer adds
// the riddle's points and extends the streak; a wrong answer costs a
// life, zeroes the streak, and spoils the perfect run. Lives clamp at
// zero; the caller ends the game in the same transition that drained
// them. No partial credit, no time-based scoring.
func applyAnswer(p progress, correct bool, points int) progress {
	if correct {
		p.Score += points
		p.Streak++
		return p
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.Streak = 0
	p.PerfectRun = false
	return p
}
