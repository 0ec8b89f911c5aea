package server

import "net/http"

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// handleLeaderboard serves the static leaderboard table. The game core
// never writes here.
func handleLeaderboard(store ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.Leaderboard(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if entries == nil {
			entries = []LeaderboardEntry{}
		}
		writeJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
