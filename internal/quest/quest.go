// Package quest implements the game-progress state machine: riddle
// catalogs, the dungeon room graph, scoring, lives, streaks, and
// achievement unlocking. It has no external dependencies and is driven
// synchronously by a single caller.
package quest

// Mode selects which variant a session plays.
type Mode string

const (
	// ModeLinear answers the riddle catalog in fixed order.
	ModeLinear Mode = "linear"
	// ModeDungeon navigates a room graph toward the treasure room.
	ModeDungeon Mode = "dungeon"
)

// Screen is the UI screen the session is currently showing. Only
// ScreenPlaying carries gameplay; the others are navigation targets
// that never touch gameplay state.
type Screen string

const (
	ScreenMenu         Screen = "menu"
	ScreenPlaying      Screen = "playing"
	ScreenAchievements Screen = "achievements"
	ScreenLeaderboard  Screen = "leaderboard"
	ScreenRules        Screen = "rules"
)

// Riddle is a single multiple-choice question. Immutable once defined.
type Riddle struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer int
	Points        int
}

// Room is a node in the dungeon graph. The treasure room carries no
// riddle and ends the game in victory when entered.
type Room struct {
	ID          string
	Name        string
	Description string
	Riddle      *Riddle
	Connections []string
}

// Achievement is a one-way unlockable flag. Unlocked transitions to
// true exactly once and never reverts, including across Reset.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

// Rule maps an achievement to the predicate that unlocks it. Predicates
// are independent of each other and must be monotone: once a rule holds
// it keeps holding for the rest of the run. The evaluator never
// re-locks an unlocked achievement.
type Rule struct {
	ID          string
	Title       string
	Description string
	Holds       func(*Session) bool
}
