package registry

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn is the write side of a duplex connection. *websocket.Conn
// satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Registry tracks the single live connection per user and delivers text
// payloads best effort. Process-local by design: cross-process state
// lives in the membership index, which stores ids only.
type Registry struct {
	mu     sync.RWMutex
	conns  map[int64]*client
	logger *slog.Logger
}

// client serializes writes: gorilla conns do not allow concurrent writers.
type client struct {
	mu   sync.Mutex
	conn Conn
}

func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		conns:  make(map[int64]*client),
		logger: logger,
	}
}

// Register stores the connection for a user, replacing any previous
// handle. The superseded handle is not closed here; its read loop
// notices the disconnect on its own.
func (r *Registry) Register(telegramID int64, conn Conn) {
	r.mu.Lock()
	r.conns[telegramID] = &client{conn: conn}
	r.mu.Unlock()

	r.logger.Info("connection registered", "telegram_id", telegramID)
}

func (r *Registry) Unregister(telegramID int64) {
	r.mu.Lock()
	delete(r.conns, telegramID)
	r.mu.Unlock()

	r.logger.Info("connection unregistered", "telegram_id", telegramID)
}

// SendTo delivers the payload to one user. No-op when the user has no
// registered connection; a failed write closes and evicts the handle.
func (r *Registry) SendTo(telegramID int64, payload []byte) {
	r.mu.RLock()
	c, ok := r.conns[telegramID]
	r.mu.RUnlock()
	if !ok {
		return
	}

	c.mu.Lock()
	err := c.conn.WriteMessage(websocket.TextMessage, payload)
	c.mu.Unlock()
	if err != nil {
		r.logger.Warn("dropping stale connection", "telegram_id", telegramID, "error", err)
		r.evict(telegramID, c)
	}
}

// Broadcast fans the payload out to the given users. Fan-out only:
// delivery order across recipients is unspecified and individual
// failures do not affect the others.
func (r *Registry) Broadcast(telegramIDs []int64, payload []byte) {
	for _, id := range telegramIDs {
		r.SendTo(id, payload)
	}
}

// BroadcastAll sends to every registered user regardless of room.
func (r *Registry) BroadcastAll(payload []byte) {
	r.mu.RLock()
	ids := make([]int64, 0, len(r.conns))
	for id := range r.conns {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	r.Broadcast(ids, payload)
}

// evict removes the handle only if it is still the registered one, so a
// reconnect racing the eviction keeps its fresh connection.
func (r *Registry) evict(telegramID int64, stale *client) {
	r.mu.Lock()
	if cur, ok := r.conns[telegramID]; ok && cur == stale {
		delete(r.conns, telegramID)
	}
	r.mu.Unlock()

	_ = stale.conn.Close()
}
