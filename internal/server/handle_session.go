package server

import (
	"net/http"

	"github.com/pixelquest/riddlequest/internal/quest"
)

type CreateSessionRequest struct {
	Mode string `json:"mode"`
}

type CreateSessionResponse struct {
	SessionID string        `json:"sessionId"`
	State     StateResponse `json:"state"`
}

func handleCreateSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		mode := quest.Mode(req.Mode)
		if mode != quest.ModeLinear && mode != quest.ModeDungeon {
			writeError(w, http.StatusBadRequest, "mode must be \"linear\" or \"dungeon\"")
			return
		}

		token, live, err := sessions.Create(mode)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		var state StateResponse
		live.with(func(s *quest.Session) {
			state = stateResponse(s.Snapshot())
		})

		writeJSON(w, http.StatusCreated, CreateSessionResponse{
			SessionID: token,
			State:     state,
		})
	}
}

func handleSessionState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state StateResponse
		sessionFrom(r).with(func(s *quest.Session) {
			state = stateResponse(s.Snapshot())
		})
		writeJSON(w, http.StatusOK, state)
	}
}
