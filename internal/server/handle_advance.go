package server

import (
	"net/http"

	"github.com/pixelquest/riddlequest/internal/quest"
)

type AdvanceResponse struct {
	NewAchievements []string      `json:"newAchievements,omitempty"`
	State           StateResponse `json:"state"`
}

// handleAdvance acknowledges an answer result and moves the linear run
// to the next riddle, or finishes the game past the final one.
func handleAdvance(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			resp     AdvanceResponse
			conflict string
		)
		sessionFrom(r).with(func(s *quest.Session) {
			snap := s.Snapshot()
			switch {
			case snap.Mode != quest.ModeLinear:
				conflict = "advance applies to linear sessions only"
				return
			case snap.GameOver:
				conflict = "game is over"
				return
			case !snap.AwaitingAdvance:
				conflict = "no answer pending acknowledgement"
				return
			}

			newly := s.Advance()
			after := s.Snapshot()
			resp = AdvanceResponse{
				NewAchievements: newly,
				State:           stateResponse(after),
			}

			token := sessionToken(r)
			broker.publishUnlocks(token, newly)
			if after.GameOver {
				broker.Publish(token, SSEEvent{Type: "game_over", Victory: after.Victory})
			}
		})

		if conflict != "" {
			writeError(w, http.StatusConflict, conflict)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
