package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi31"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sessionPathParams declares the {sessionID} path parameter so the
// reflector accepts operations on session-scoped routes.
type sessionPathParams struct {
	SessionID string `path:"sessionID"`
}

func newOpenAPISpec() *openapi31.Spec {
	r := openapi31.NewReflector()
	r.Spec.Info.Title = "Riddle Quest API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the riddle quest game: linear riddle runs and the dungeon variant.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	postSessions, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSessions.SetSummary("Start a session")
	postSessions.SetDescription("Starts a fresh game session in linear or dungeon mode. Returns the session id and the initial state.")
	postSessions.AddReqStructure(CreateSessionRequest{})
	postSessions.AddRespStructure(CreateSessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSessions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postSessions)

	// GET /api/sessions/{sessionID}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/state")
	getState.SetSummary("Get session state")
	getState.SetDescription("Returns the full state snapshot of the session.")
	getState.AddReqStructure(sessionPathParams{})
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// POST /api/sessions/{sessionID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/answer")
	postAnswer.SetSummary("Submit answer")
	postAnswer.SetDescription("Submits an answer for the current riddle. Out-of-sequence submissions return 409 and leave the state untouched.")
	postAnswer.AddReqStructure(sessionPathParams{})
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// POST /api/sessions/{sessionID}/advance
	postAdvance, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/advance")
	postAdvance.SetSummary("Advance to the next riddle")
	postAdvance.SetDescription("Acknowledges the answer result and moves on. Linear sessions only.")
	postAdvance.AddReqStructure(sessionPathParams{})
	postAdvance.AddRespStructure(AdvanceResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAdvance.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAdvance)

	// POST /api/sessions/{sessionID}/move
	postMove, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/move")
	postMove.SetSummary("Move to a room")
	postMove.SetDescription("Walks to a connected room, or jumps to any visited one. Dungeon sessions only.")
	postMove.AddReqStructure(sessionPathParams{})
	postMove.AddReqStructure(MoveRequest{})
	postMove.AddRespStructure(MoveResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postMove.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postMove.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postMove)

	// POST /api/sessions/{sessionID}/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/reset")
	postReset.SetSummary("Reset the session")
	postReset.SetDescription("Starts the run over. Achievement unlocks are preserved.")
	postReset.AddReqStructure(sessionPathParams{})
	postReset.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postReset)

	// POST /api/sessions/{sessionID}/screen
	postScreen, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/screen")
	postScreen.SetSummary("Navigate screens")
	postScreen.SetDescription("Switches between menu, playing, achievements, leaderboard, and rules screens without touching gameplay state.")
	postScreen.AddReqStructure(sessionPathParams{})
	postScreen.AddReqStructure(ScreenRequest{})
	postScreen.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postScreen.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postScreen)

	// GET /api/sessions/{sessionID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of answer results, achievement unlocks, and game over.")
	getEvents.AddReqStructure(sessionPathParams{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Returns the static leaderboard table.")
	getLeaderboard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/rules
	getRules, _ := r.NewOperationContext(http.MethodGet, "/api/rules")
	getRules.SetSummary("Game rules")
	getRules.SetDescription("Returns the static rules text.")
	getRules.AddRespStructure(RulesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getRules)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, err := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
