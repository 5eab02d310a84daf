package websocket

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bragboard/bragboard-service/internal/types"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Ping period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from the peer. Clients only send pongs.
	maxMessageSize = 512
)

// Client is a single user's notification connection.
type Client struct {
	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	userID string

	hub *Hub
}

// NewClient wraps an upgraded connection for the given user.
func NewClient(conn *websocket.Conn, userID string, hub *Hub) *Client {
	return &Client{
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: userID,
		hub:    hub,
	}
}

// readPump drains the connection so pongs and close frames are processed.
// Inbound messages are ignored, notifications are one-way.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			}
			break
		}
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush any queued messages into the same frame
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendEvent queues an event for this client. A full send buffer means the
// client is not keeping up, so the connection is dropped.
func (c *Client) SendEvent(event *types.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	default:
		close(c.send)
		return websocket.ErrCloseSent
	}
}

// Start launches the client's read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// UserID returns the user this connection belongs to.
func (c *Client) UserID() string {
	return c.userID
}
