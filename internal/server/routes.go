package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, sessions *Registry, store ContentStore, db *sql.DB, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Riddle Quest API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/sessions", handleCreateSession(sessions))

	// Session routes; {sessionID} is resolved by sessionMiddleware.
	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Get("/state", handleSessionState())
		r.Post("/answer", handleAnswer(broker))
		r.Post("/advance", handleAdvance(broker))
		r.Post("/move", handleMove(broker))
		r.Post("/reset", handleReset(broker))
		r.Post("/screen", handleScreen())
		r.Get("/events", handleEvents(broker))
	})

	r.Get("/api/leaderboard", handleLeaderboard(store))
	r.Get("/api/rules", handleRules())

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
