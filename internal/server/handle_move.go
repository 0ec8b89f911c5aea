package server

import (
	"net/http"
	"strings"

	"github.com/pixelquest/riddlequest/internal/quest"
)

type MoveRequest struct {
	RoomID string `json:"roomId"`
}

type MoveResponse struct {
	NewAchievements []string      `json:"newAchievements,omitempty"`
	State           StateResponse `json:"state"`
}

// handleMove walks the dungeon session to another room. A single step
// needs a connection; any already-visited room is reachable from the
// map regardless of adjacency.
func handleMove(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.RoomID = strings.TrimSpace(req.RoomID)
		if req.RoomID == "" {
			writeError(w, http.StatusBadRequest, "roomId is required")
			return
		}

		var (
			resp        MoveResponse
			conflict    string
			unknownRoom bool
		)
		sessionFrom(r).with(func(s *quest.Session) {
			snap := s.Snapshot()
			switch {
			case snap.Mode != quest.ModeDungeon:
				conflict = "move applies to dungeon sessions only"
				return
			case snap.GameOver:
				conflict = "game is over"
				return
			}

			adjacent, visited, exists := roomAccess(snap, req.RoomID)
			if !exists {
				unknownRoom = true
				return
			}
			if !adjacent && !visited {
				conflict = "room is not connected and has not been visited"
				return
			}

			newly := s.MoveToRoom(req.RoomID)
			after := s.Snapshot()
			resp = MoveResponse{
				NewAchievements: newly,
				State:           stateResponse(after),
			}

			token := sessionToken(r)
			broker.Publish(token, SSEEvent{Type: "room_entered", RoomID: req.RoomID})
			broker.publishUnlocks(token, newly)
			if after.GameOver {
				broker.Publish(token, SSEEvent{Type: "game_over", Victory: after.Victory})
			}
		})

		if unknownRoom {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		if conflict != "" {
			writeError(w, http.StatusConflict, conflict)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// roomAccess reports whether the target room is adjacent to the current
// one, whether it has been visited, and whether it exists at all.
func roomAccess(snap quest.Snapshot, roomID string) (adjacent, visited, exists bool) {
	for _, rs := range snap.Rooms {
		if rs.Room.ID == snap.CurrentRoomID {
			for _, conn := range rs.Room.Connections {
				if conn == roomID {
					adjacent = true
				}
			}
		}
		if rs.Room.ID == roomID {
			exists = true
			visited = rs.Visited
		}
	}
	return adjacent, visited, exists
}
