package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
)

// sseMessage is one wire-ready server-sent event.
type sseMessage struct {
	Event string
	Data  string
}

// StreamManager fans broadcast events out to connected SSE clients. It
// implements ports.Broadcaster: delivery is best-effort and a slow client's
// full buffer drops the message rather than blocking the dispatch path.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan sseMessage]struct{}
	logger      *slog.Logger
}

var _ ports.Broadcaster = (*StreamManager)(nil)

func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[chan sseMessage]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a client. The returned cancel func must be called when
// the client disconnects.
func (sm *StreamManager) Subscribe() (<-chan sseMessage, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan sseMessage, 10)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Subscribers returns the number of connected clients.
func (sm *StreamManager) Subscribers() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast serializes the event payload and pushes it to every subscriber.
func (sm *StreamManager) Broadcast(_ context.Context, event domain.Event) {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		sm.logger.Warn("SSE: dropping unserializable event", "event", event.Type, "err", err)
		return
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	sm.logger.Debug("SSE: broadcasting", "event", event.Type, "subscribers", len(sm.subscribers))

	msg := sseMessage{Event: string(event.Type), Data: string(data)}
	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Slow client; drop rather than block the dispatch path.
			sm.logger.Warn("SSE: client buffer full, dropping message", "event", event.Type)
		}
	}
}
