package server

import (
	"net/http"

	"github.com/pixelquest/riddlequest/internal/quest"
)

type ScreenRequest struct {
	Screen string `json:"screen"`
}

var validScreens = map[quest.Screen]bool{
	quest.ScreenMenu:         true,
	quest.ScreenPlaying:      true,
	quest.ScreenAchievements: true,
	quest.ScreenLeaderboard:  true,
	quest.ScreenRules:        true,
}

// handleScreen navigates between UI screens. Pure presentation: the
// gameplay state is never touched.
func handleScreen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScreenRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		screen := quest.Screen(req.Screen)
		if !validScreens[screen] {
			writeError(w, http.StatusBadRequest, "unknown screen")
			return
		}

		var state StateResponse
		sessionFrom(r).with(func(s *quest.Session) {
			s.SetScreen(screen)
			state = stateResponse(s.Snapshot())
		})
		writeJSON(w, http.StatusOK, state)
	}
}
