package server

import (
	"net/http"

	"github.com/pixelquest/riddlequest/internal/quest"
)

// handleReset abandons the current run and starts over. Achievement
// unlocks survive; everything else returns to session-start defaults.
func handleReset(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state StateResponse
		sessionFrom(r).with(func(s *quest.Session) {
			s.Reset()
			state = stateResponse(s.Snapshot())
		})

		broker.Publish(sessionToken(r), SSEEvent{Type: "reset"})
		writeJSON(w, http.StatusOK, state)
	}
}
