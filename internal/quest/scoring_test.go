package quest

import "testing"

func TestApplyAnswer(t *testing.T) {
	tests := []struct {
		name    string
		in      progress
		correct bool
		points  int
		want    progress
	}{
		{
			name:    "correct adds points and extends streak",
			in:      progress{Score: 250, Lives: 3, Streak: 2, PerfectRun: true},
			correct: true,
			points:  200,
			want:    progress{Score: 450, Lives: 3, Streak: 3, PerfectRun: true},
		},
		{
			name:    "wrong costs a life and zeroes the streak",
			in:      progress{Score: 250, Lives: 3, Streak: 2, PerfectRun: true},
			correct: false,
			points:  200,
			want:    progress{Score: 250, Lives: 2, Streak: 0, PerfectRun: false},
		},
		{
			name:    "wrong never revives a perfect run",
			in:      progress{Score: 100, Lives: 2, Streak: 0, PerfectRun: false},
			correct: false,
			points:  150,
			want:    progress{Score: 100, Lives: 1, Streak: 0, PerfectRun: false},
		},
		{
			name:    "correct after a mistake keeps perfectRun false",
			in:      progress{Score: 100, Lives: 2, Streak: 0, PerfectRun: false},
			correct: true,
			points:  150,
			want:    progress{Score: 250, Lives: 2, Streak: 1, PerfectRun: false},
		},
		{
			name:    "lives clamp at zero",
			in:      progress{Score: 0, Lives: 0, Streak: 0, PerfectRun: false},
			correct: false,
			points:  100,
			want:    progress{Score: 0, Lives: 0, Streak: 0, PerfectRun: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyAnswer(tt.in, tt.correct, tt.points); got != tt.want {
				t.Errorf("applyAnswer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		riddles []Riddle
	}{
		{name: "empty", riddles: nil},
		{
			name:    "too few options",
			riddles: []Riddle{{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 0, Points: 100}},
		},
		{
			name:    "answer out of range",
			riddles: []Riddle{{ID: 1, Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 4, Points: 100}},
		},
		{
			name:    "negative answer",
			riddles: []Riddle{{ID: 1, Options: []string{"a", "b", "c", "d"}, CorrectAnswer: -1, Points: 100}},
		},
		{
			name:    "zero points",
			riddles: []Riddle{{ID: 1, Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0, Points: 0}},
		},
		{
			name: "duplicate id",
			riddles: []Riddle{
				{ID: 1, Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0, Points: 100},
				{ID: 1, Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Points: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.riddles); err == nil {
				t.Error("expected a configuration error")
			}
		})
	}

	if _, err := NewCatalog(testRiddles()); err != nil {
		t.Errorf("reference riddles rejected: %v", err)
	}
}
