package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const ctxKeySession ctxKey = iota

// sessionMiddleware resolves {sessionID} into a live session and puts
// it on the request context. Unknown tokens are a 404.
func sessionMiddleware(sessions *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := chi.URLParam(r, "sessionID")
			if token == "" {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			live, err := sessions.Get(token)
			if err != nil {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, live)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) *liveSession {
	return r.Context().Value(ctxKeySession).(*liveSession)
}

func sessionToken(r *http.Request) string {
	return chi.URLParam(r, "sessionID")
}
