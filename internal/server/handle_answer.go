package server

import (
	"net/http"

	"github.com/pixelquest/riddlequest/internal/quest"
)

type AnswerRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

type AnswerResponse struct {
	IsCorrect       bool          `json:"isCorrect"`
	CorrectOption   *int          `json:"correctOption,omitempty"`
	NewAchievements []string      `json:"newAchievements,omitempty"`
	State           StateResponse `json:"state"`
}

// handleAnswer submits an answer for the current riddle. The state
// machine treats invalid submissions as no-ops; here they surface as
// 409 Conflict so a client can tell a rejected intent from an applied
// one, with the session state untouched either way.
func handleAnswer(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil || req.OptionIndex == nil {
			writeError(w, http.StatusBadRequest, "optionIndex is required")
			return
		}

		var (
			resp     AnswerResponse
			conflict string
			badIndex bool
		)
		sessionFrom(r).with(func(s *quest.Session) {
			snap := s.Snapshot()
			switch {
			case snap.GameOver:
				conflict = "game is over"
				return
			case snap.AwaitingAdvance:
				conflict = "answer already submitted"
				return
			case snap.CurrentRiddle == nil:
				conflict = "no riddle to answer here"
				return
			case currentRoomSolved(snap):
				conflict = "riddle already solved"
				return
			}

			riddle := *snap.CurrentRiddle
			if *req.OptionIndex < 0 || *req.OptionIndex >= len(riddle.Options) {
				badIndex = true
				return
			}

			newly := s.SubmitAnswer(*req.OptionIndex)
			after := s.Snapshot()

			resp = AnswerResponse{
				IsCorrect:       after.LastAnswerCorrect != nil && *after.LastAnswerCorrect,
				NewAchievements: newly,
				State:           stateResponse(after),
			}
			if !resp.IsCorrect {
				correct := riddle.CorrectAnswer
				resp.CorrectOption = &correct
			}

			token := sessionToken(r)
			broker.Publish(token, SSEEvent{Type: "answer_result", IsCorrect: resp.IsCorrect})
			broker.publishUnlocks(token, newly)
			if after.GameOver {
				broker.Publish(token, SSEEvent{Type: "game_over", Victory: after.Victory})
			}
		})

		if badIndex {
			writeError(w, http.StatusBadRequest, "optionIndex out of range")
			return
		}
		if conflict != "" {
			writeError(w, http.StatusConflict, conflict)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// currentRoomSolved reports whether the dungeon room the session stands
// in has already been solved. Always false for the linear variant.
func currentRoomSolved(snap quest.Snapshot) bool {
	for _, rs := range snap.Rooms {
		if rs.Room.ID == snap.CurrentRoomID {
			return rs.Solved
		}
	}
	return false
}
