package quest

import "testing"

func testRiddles() []Riddle {
	return []Riddle{
		{ID: 1, Question: "Что можно увидеть с закрытыми глазами?", Options: []string{"Сны", "Темноту", "Звезды", "Будущее"}, CorrectAnswer: 0, Points: 100},
		{ID: 2, Question: "Что становится влажным, когда сушит?", Options: []string{"Вода", "Полотенце", "Ветер", "Солнце"}, CorrectAnswer: 1, Points: 150},
		{ID: 3, Question: "Что идет, не двигаясь с места?", Options: []string{"Облака", "Время", "Река", "Дорога"}, CorrectAnswer: 1, Points: 200},
		{ID: 4, Question: "Чем больше из неё берёшь, тем больше она становится?", Options: []string{"Яма", "Дыра", "Пустота", "Тень"}, CorrectAnswer: 0, Points: 250},
		{ID: 5, Question: "Что может путешествовать по миру, оставаясь в углу?", Options: []string{"Паук", "Пыль", "Марка", "Тень"}, CorrectAnswer: 2, Points: 300},
	}
}

func linearSession(t *testing.T) *Session {
	t.Helper()
	catalog, err := NewCatalog(testRiddles())
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return NewLinearSession(catalog, DefaultRules(ModeLinear))
}

func unlocked(snap Snapshot, id string) bool {
	for _, a := range snap.Achievements {
		if a.ID == id {
			return a.Unlocked
		}
	}
	return false
}

// wrongOption picks an option index that is not the correct answer.
func wrongOption(r Riddle) int {
	if r.CorrectAnswer == 0 {
		return 1
	}
	return 0
}

func TestLinearPerfectWin(t *testing.T) {
	s := linearSession(t)
	s.SetScreen(ScreenPlaying)

	for i := 0; i < 5; i++ {
		snap := s.Snapshot()
		if snap.CurrentRiddle == nil {
			t.Fatalf("riddle %d: no current riddle", i+1)
		}
		s.SubmitAnswer(snap.CurrentRiddle.CorrectAnswer)
		after := s.Snapshot()
		if after.LastAnswerCorrect == nil || !*after.LastAnswerCorrect {
			t.Fatalf("riddle %d: expected correct answer", i+1)
		}
		s.Advance()
	}

	snap := s.Snapshot()
	if snap.Score != 1000 {
		t.Errorf("score = %d, want 1000", snap.Score)
	}
	if snap.Lives != 3 {
		t.Errorf("lives = %d, want 3", snap.Lives)
	}
	if !snap.GameOver {
		t.Error("expected gameOver")
	}
	if !snap.Victory {
		t.Error("expected victory")
	}
	for _, id := range []string{AchievementFirst, AchievementStreak3, AchievementComplete, AchievementPerfect} {
		if !unlocked(snap, id) {
			t.Errorf("achievement %q not unlocked", id)
		}
	}
}

func TestLinearLossOnThreeWrongAnswers(t *testing.T) {
	s := linearSession(t)

	for i := 0; i < 3; i++ {
		snap := s.Snapshot()
		if snap.GameOver {
			t.Fatalf("game over after %d wrong answers", i)
		}
		s.SubmitAnswer(wrongOption(*snap.CurrentRiddle))
		s.Advance()
	}

	snap := s.Snapshot()
	if snap.Lives != 0 {
		t.Errorf("lives = %d, want 0", snap.Lives)
	}
	if !snap.GameOver {
		t.Error("expected gameOver after losing all lives")
	}
	if snap.Victory {
		t.Error("loss must not count as victory")
	}
	if snap.CurrentIndex >= 4 {
		t.Errorf("lost at riddle index %d, should be before the final riddle", snap.CurrentIndex)
	}
	if unlocked(snap, AchievementPerfect) {
		t.Error("perfect must never unlock after a wrong answer")
	}
	if unlocked(snap, AchievementComplete) {
		t.Error("complete must not unlock on a loss")
	}
}

func TestGameOverInSameStepAsLastLife(t *testing.T) {
	s := linearSession(t)

	for i := 0; i < 2; i++ {
		s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))
		s.Advance()
	}
	if s.Snapshot().GameOver {
		t.Fatal("game over too early")
	}

	// The third wrong answer drains the last life; the same submit must
	// flip gameOver without requiring an advance.
	s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))
	snap := s.Snapshot()
	if snap.Lives != 0 {
		t.Errorf("lives = %d, want 0", snap.Lives)
	}
	if !snap.GameOver {
		t.Error("gameOver must be set in the transition that drained lives")
	}
}

func TestStreakResetsOnWrongAnswer(t *testing.T) {
	s := linearSession(t)

	s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	s.Advance()
	s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	s.Advance()
	if got := s.Snapshot().Streak; got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}

	s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))
	snap := s.Snapshot()
	if snap.Streak != 0 {
		t.Errorf("streak = %d, want 0 after wrong answer", snap.Streak)
	}
	if snap.PerfectRun {
		t.Error("perfectRun must be false after a wrong answer")
	}
	if snap.Score != 250 {
		t.Errorf("score = %d, want 250 (wrong answers never deduct)", snap.Score)
	}
}

func TestSubmitWhileAwaitingAdvanceIsNoOp(t *testing.T) {
	s := linearSession(t)

	s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	before := s.Snapshot()

	s.SubmitAnswer(before.CurrentRiddle.CorrectAnswer)
	after := s.Snapshot()
	if after.Score != before.Score || after.Streak != before.Streak || after.CorrectCount != before.CorrectCount {
		t.Errorf("second submit changed state: score %d→%d streak %d→%d", before.Score, after.Score, before.Streak, after.Streak)
	}
}

func TestAdvanceWithoutPendingAnswerIsNoOp(t *testing.T) {
	s := linearSession(t)
	before := s.Snapshot()

	s.Advance()
	after := s.Snapshot()
	if after.CurrentIndex != before.CurrentIndex {
		t.Errorf("advance without answer moved index %d→%d", before.CurrentIndex, after.CurrentIndex)
	}
}

func TestOutOfRangeOptionIsNoOp(t *testing.T) {
	s := linearSession(t)

	for _, idx := range []int{-1, 4, 99} {
		s.SubmitAnswer(idx)
		snap := s.Snapshot()
		if snap.AwaitingAdvance || snap.Lives != 3 || snap.Score != 0 {
			t.Errorf("option %d: expected untouched state, got %+v", idx, snap)
		}
	}
}

func TestResetPreservesAchievements(t *testing.T) {
	s := linearSession(t)

	s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	s.Advance()
	s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))

	if !unlocked(s.Snapshot(), AchievementFirst) {
		t.Fatal("first achievement should be unlocked")
	}

	s.Reset()
	snap := s.Snapshot()
	if snap.Score != 0 || snap.Lives != 3 || snap.Streak != 0 {
		t.Errorf("after reset: score=%d lives=%d streak=%d, want 0/3/0", snap.Score, snap.Lives, snap.Streak)
	}
	if !snap.PerfectRun {
		t.Error("after reset: perfectRun must be true")
	}
	if snap.GameOver {
		t.Error("after reset: gameOver must be false")
	}
	if snap.CurrentIndex != 0 {
		t.Errorf("after reset: currentIndex = %d, want 0", snap.CurrentIndex)
	}
	if snap.AwaitingAdvance || snap.PendingAnswer != nil || snap.LastAnswerCorrect != nil {
		t.Error("after reset: answer state must be cleared")
	}
	if !unlocked(snap, AchievementFirst) {
		t.Error("after reset: achievement unlocks must survive")
	}
}

func TestAchievementsAreMonotone(t *testing.T) {
	s := linearSession(t)

	// Unlock streak3, then break the streak; the unlock must stick.
	for i := 0; i < 3; i++ {
		s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
		s.Advance()
	}
	if !unlocked(s.Snapshot(), AchievementStreak3) {
		t.Fatal("streak3 should be unlocked after three correct answers")
	}

	s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))
	s.Advance()
	if !unlocked(s.Snapshot(), AchievementStreak3) {
		t.Error("streak3 re-locked after the streak broke")
	}

	s.Reset()
	if !unlocked(s.Snapshot(), AchievementStreak3) {
		t.Error("streak3 re-locked by reset")
	}
}

func TestCompleteUnlocksEvenWithMistakes(t *testing.T) {
	s := linearSession(t)

	// One wrong answer along the way: run completes, perfect does not.
	s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))
	s.Advance()
	for i := 0; i < 4; i++ {
		s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
		s.Advance()
	}

	snap := s.Snapshot()
	if !snap.GameOver || !snap.Victory {
		t.Fatalf("expected a completed run, got gameOver=%v victory=%v", snap.GameOver, snap.Victory)
	}
	if !unlocked(snap, AchievementComplete) {
		t.Error("complete should unlock when the final riddle is passed")
	}
	if unlocked(snap, AchievementPerfect) {
		t.Error("perfect must not unlock after a mistake")
	}
	if snap.Score != 900 {
		t.Errorf("score = %d, want 900", snap.Score)
	}
}

func TestSubmitReturnsNewlyUnlockedIDs(t *testing.T) {
	s := linearSession(t)

	newly := s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	if len(newly) != 1 || newly[0] != AchievementFirst {
		t.Errorf("newly unlocked = %v, want [first]", newly)
	}

	s.Advance()
	newly = s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	if len(newly) != 0 {
		t.Errorf("newly unlocked = %v, want none on repeat evaluation", newly)
	}
}

func TestSetScreenLeavesGameplayUntouched(t *testing.T) {
	s := linearSession(t)
	s.SubmitAnswer(s.Snapshot().CurrentRiddle.CorrectAnswer)
	before := s.Snapshot()

	s.SetScreen(ScreenAchievements)
	s.SetScreen(Screen("bogus"))
	s.SetScreen(ScreenMenu)

	after := s.Snapshot()
	if after.Screen != ScreenMenu {
		t.Errorf("screen = %q, want menu (unknown screens ignored)", after.Screen)
	}
	if after.Score != before.Score || after.CurrentIndex != before.CurrentIndex || !after.AwaitingAdvance {
		t.Error("screen navigation mutated gameplay state")
	}
}

func TestSubmitAfterGameOverIsNoOp(t *testing.T) {
	s := linearSession(t)
	for i := 0; i < 3; i++ {
		s.SubmitAnswer(wrongOption(*s.Snapshot().CurrentRiddle))
		s.Advance()
	}
	if !s.Snapshot().GameOver {
		t.Fatal("expected game over")
	}

	before := s.Snapshot()
	s.SubmitAnswer(0)
	s.Advance()
	after := s.Snapshot()
	if after.Score != before.Score || after.Lives != before.Lives || after.CurrentIndex != before.CurrentIndex {
		t.Error("operations after game over changed state")
	}
}
