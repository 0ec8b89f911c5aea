package server

import (
	"encoding/json"
	"sync"
)

// SSEEvent is the payload published to session subscribers.
type SSEEvent struct {
	Type          string `json:"type"`
	AchievementID string `json:"achievementId,omitempty"`
	RoomID        string `json:"roomId,omitempty"`
	IsCorrect     bool   `json:"isCorrect,omitempty"`
	Victory       bool   `json:"victory,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by session token.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded SSE events for the given session.
func (b *Broker) Subscribe(token string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[token] == nil {
		b.subs[token] = make(map[chan []byte]struct{})
	}
	b.subs[token][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(token string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[token], ch)
	if len(b.subs[token]) == 0 {
		delete(b.subs, token)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given session.
func (b *Broker) Publish(token string, event SSEEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[token] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

// publishUnlocks emits one achievement_unlocked event per newly
// unlocked id.
func (b *Broker) publishUnlocks(token string, ids []string) {
	for _, id := range ids {
		b.Publish(token, SSEEvent{Type: "achievement_unlocked", AchievementID: id})
	}
}
