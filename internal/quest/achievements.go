package quest

// Achievement ids. A closed set; display metadata (icons, colors)
// belongs to the presentation layer, keyed by these ids.
const (
	AchievementFirst    = "first"
	AchievementStreak3  = "streak3"
	AchievementComplete = "complete"
	AchievementPerfect  = "perfect"
)

// streakThreshold is the run of consecutive correct answers that
// unlocks the streak achievement.
const streakThreshold = 3

// DefaultRules returns the standard rule set for the given mode. The
// first-progress predicate differs per variant: the linear game counts
// correctly answered riddles, the dungeon counts rooms discovered
// beyond the start.
func DefaultRules(mode Mode) []Rule {
	first := func(s *Session) bool { return s.correctCount >= 1 }
	firstDesc := "Ответь на первую загадку"
	if mode == ModeDungeon {
		first = func(s *Session) bool { return len(s.visited) >= 2 }
		firstDesc = "Открой первую комнату подземелья"
	}

	return []Rule{
		{
			ID:          AchievementFirst,
			Title:       "Первый шаг",
			Description: firstDesc,
			Holds:       first,
		},
		{
			ID:          AchievementStreak3,
			Title:       "На разогреве",
			Description: "Правильно ответь на 3 загадки подряд",
			Holds:       func(s *Session) bool { return s.streak >= streakThreshold },
		},
		{
			ID:          AchievementComplete,
			Title:       "Мастер загадок",
			Description: "Пройди все загадки",
			Holds:       func(s *Session) bool { return s.completed },
		},
		{
			ID:          AchievementPerfect,
			Title:       "Безупречность",
			Description: "Ответь на все загадки с первого раза",
			Holds:       func(s *Session) bool { return s.completed && s.perfectRun },
		},
	}
}

// evaluate runs the achievement rules against the current state and
// unlocks every rule whose predicate holds. Idempotent and monotone:
// already-unlocked achievements are skipped and never revert. Returns
// the ids unlocked by this pass so the presentation layer can react.
func (s *Session) evaluate() []string {
	var newly []string
	for i := range s.rules {
		if s.achievements[i].Unlocked {
			continue
		}
		if s.rules[i].Holds(s) {
			s.achievements[i].Unlocked = true
			newly = append(newly, s.rules[i].ID)
		}
	}
	return newly
}
