package websocket

import (
	"log/slog"
	"sync"

	"github.com/bragboard/bragboard-service/internal/types"
)

// Hub tracks the active notification connections, one per user. Events flow
// one way, from the service to connected clients.
type Hub struct {
	// Connected clients keyed by user ID
	clients map[string]*Client

	// Register requests from new connections
	register chan *Client

	// Unregister requests from closing connections
	unregister chan *Client

	// Protects the clients map
	mu sync.RWMutex

	// Pending outbound notifications
	notify chan *Notification
}

// Notification is an event addressed to a set of users.
type Notification struct {
	UserIDs []string     `json:"user_ids"`
	Event   *types.Event `json:"event"`
}

// NewHub creates an empty notification hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		notify:     make(chan *Notification, 64),
	}
}

// Run processes registrations and notifications. Call once, in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// One connection per user: a new connection replaces the old one.
			if old, exists := h.clients[client.userID]; exists {
				close(old.send)
				slog.Info("replaced existing notification connection", slog.String("user_id", client.userID))
			}
			h.clients[client.userID] = client
			h.mu.Unlock()
			slog.Info("notification client connected", slog.String("user_id", client.userID))

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.userID]; ok && current == client {
				delete(h.clients, client.userID)
				close(client.send)
				slog.Info("notification client disconnected", slog.String("user_id", client.userID))
			}
			h.mu.Unlock()

		case n := <-h.notify:
			h.deliver(n.UserIDs, n.Event)
		}
	}
}

// RegisterClient adds a client to the hub.
func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient removes a client from the hub.
func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// BroadcastToUsers queues an event for the given users. Drops the event if the
// queue is full rather than blocking the caller.
func (h *Hub) BroadcastToUsers(userIDs []string, event *types.Event) {
	n := &Notification{
		UserIDs: userIDs,
		Event:   event,
	}

	select {
	case h.notify <- n:
	default:
		slog.Warn("notification queue full, dropping event", slog.String("type", string(event.Type)))
	}
}

// BroadcastToUser queues an event for a single user.
func (h *Hub) BroadcastToUser(userID string, event *types.Event) {
	h.BroadcastToUsers([]string{userID}, event)
}

func (h *Hub) deliver(userIDs []string, event *types.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range userIDs {
		client, ok := h.clients[userID]
		if !ok {
			continue
		}
		if err := client.SendEvent(event); err != nil {
			slog.Error("failed to deliver event",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

// IsUserConnected reports whether the user currently holds a connection.
func (h *Hub) IsUserConnected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
