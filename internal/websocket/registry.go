package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"ai-interviewer-be/internal/pkg/logger"
	"ai-interviewer-be/pkg/events"
	natsbus "ai-interviewer-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const presenceChannel = "interview_presence"

// Client is one live interview connection.
type Client struct {
	Id        uuid.UUID
	SessionId uuid.UUID
}

// Registry tracks live connections, publishes presence counts to Redis, and
// emits lifecycle events on the NATS bus. Both backends are optional; a nil
// client simply disables that output.
type Registry struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb    *redis.Client
	bus    *natsbus.Publisher
	logger logger.ILogger
}

func NewRegistry(rdb *redis.Client, bus *natsbus.Publisher, log logger.ILogger) *Registry {
	return &Registry{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		bus:        bus,
		logger:     log,
	}
}

func (r *Registry) Run() {
	for {
		select {
		case client := <-r.register:
			r.mu.Lock()
			r.clients[client.Id] = client
			count := len(r.clients)
			r.mu.Unlock()
			r.logger.Info("Registry", "Connection registered", map[string]interface{}{
				"session_id": client.SessionId,
				"active":     count,
			})
			r.publishPresence(count)
			r.publishLifecycle(events.TypeSessionConnected, client)

		case client := <-r.unregister:
			r.mu.Lock()
			delete(r.clients, client.Id)
			count := len(r.clients)
			r.mu.Unlock()
			r.logger.Info("Registry", "Connection unregistered", map[string]interface{}{
				"session_id": client.SessionId,
				"active":     count,
			})
			r.publishPresence(count)
			r.publishLifecycle(events.TypeSessionDisconnected, client)
		}
	}
}

func (r *Registry) Register(client *Client) {
	r.register <- client
}

func (r *Registry) Unregister(client *Client) {
	r.unregister <- client
}

// NotifyEnded publishes the terminal lifecycle event for a session that
// finished cleanly rather than dropping the connection.
func (r *Registry) NotifyEnded(client *Client) {
	r.publishLifecycle(events.TypeSessionEnded, client)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

func (r *Registry) ActiveSessions() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]uuid.UUID, 0, len(r.clients))
	for _, client := range r.clients {
		sessions = append(sessions, client.SessionId)
	}
	return sessions
}

func (r *Registry) publishPresence(count int) {
	if r.rdb == nil {
		return
	}
	payload, _ := json.Marshal(map[string]interface{}{"active": count})
	if err := r.rdb.Publish(context.Background(), presenceChannel, payload).Err(); err != nil {
		r.logger.Warn("Registry", "Presence publish failed", map[string]interface{}{"error": err.Error()})
	}
}

func (r *Registry) publishLifecycle(eventType string, client *Client) {
	if r.bus == nil {
		return
	}
	event := events.NewSessionEvent(eventType, client.SessionId.String(), nil)
	if err := r.bus.Publish(context.Background(), event); err != nil {
		r.logger.Warn("Registry", "Lifecycle publish failed", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
