package types

import "time"

// EventType represents the type of real-time event
type EventType string

const (
	EventShoutOutReceived EventType = "shoutout.received"
	EventShoutOutTagged   EventType = "shoutout.tagged"
	EventShoutOutReacted  EventType = "shoutout.reacted"
	EventShoutOutComment  EventType = "shoutout.commented"
)

// Event represents a real-time event that can be sent over WebSocket
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// ShoutOutReceivedEvent is pushed to the receiver (and tagged users) of a new shoutout
type ShoutOutReceivedEvent struct {
	ShoutOutID string `json:"shoutout_id"`
	GiverID    string `json:"giver_id"`
	GiverName  string `json:"giver_name"`
	Title      string `json:"title"`
	CreatedAt  string `json:"created_at"`
}

// ShoutOutReactedEvent is pushed to the giver of a shoutout when someone reacts
type ShoutOutReactedEvent struct {
	ShoutOutID   string       `json:"shoutout_id"`
	UserID       string       `json:"user_id"`
	ReactionType ReactionType `json:"reaction_type"`
	ReactedAt    string       `json:"reacted_at"`
}

// ShoutOutCommentedEvent is pushed to the giver and receiver when someone comments
type ShoutOutCommentedEvent struct {
	ShoutOutID  string `json:"shoutout_id"`
	CommentID   string `json:"comment_id"`
	UserID      string `json:"user_id"`
	CommentedAt string `json:"commented_at"`
}

// NewEvent creates a new event with the current timestamp
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
