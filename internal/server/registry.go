package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pixelquest/riddlequest/internal/quest"
)

// liveSession pairs a session with the mutex that serializes its
// transitions. The core state machine assumes a single writer; the
// HTTP layer provides that guarantee here, per session.
type liveSession struct {
	mu   sync.Mutex
	sess *quest.Session
}

// with runs fn while holding the session's lock, so each transition
// reads and writes state as one indivisible step.
func (l *liveSession) with(fn func(s *quest.Session)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.sess)
}

// Registry holds the live sessions, keyed by their opaque token.
// Sessions live only for the process lifetime; nothing is persisted
// across restarts.
type Registry struct {
	content *Content

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

func NewRegistry(content *Content) *Registry {
	return &Registry{
		content:  content,
		sessions: make(map[string]*liveSession),
	}
}

// Create starts a fresh session for the given mode and returns its token.
func (r *Registry) Create(mode quest.Mode) (string, *liveSession, error) {
	var sess *quest.Session
	switch mode {
	case quest.ModeLinear:
		sess = quest.NewLinearSession(r.content.Catalog, quest.DefaultRules(mode))
	case quest.ModeDungeon:
		sess = quest.NewDungeonSession(r.content.Graph, quest.DefaultRules(mode))
	default:
		return "", nil, fmt.Errorf("unknown mode %q", mode)
	}

	token := uuid.NewString()
	live := &liveSession{sess: sess}

	r.mu.Lock()
	r.sessions[token] = live
	r.mu.Unlock()

	return token, live, nil
}

// Get looks up a session by token.
func (r *Registry) Get(token string) (*liveSession, error) {
	r.mu.RLock()
	live, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return live, nil
}

// Delete removes a session. Missing tokens are ignored.
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
