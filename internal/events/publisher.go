package events

import (
	"time"

	"github.com/bragboard/bragboard-service/internal/types"
)

// Publisher pushes real-time notifications for shoutout activity. Publishing
// is best-effort: a disconnected recipient simply misses the event.
type Publisher interface {
	PublishShoutOutReceived(so types.ShoutOut, taggedUserIDs []string) error
	PublishShoutOutReacted(shoutoutID, reactorID, giverID string, rt types.ReactionType) error
	PublishShoutOutCommented(shoutoutID, commentID, commenterID, giverID, receiverID string) error
}

// WebSocketHub is the hub surface the publisher needs.
type WebSocketHub interface {
	BroadcastToUser(userID string, event *types.Event)
	BroadcastToUsers(userIDs []string, event *types.Event)
	IsUserConnected(userID string) bool
}

// EventPublisher implements Publisher on top of the notification hub.
type EventPublisher struct {
	hub WebSocketHub
}

func NewEventPublisher(hub WebSocketHub) *EventPublisher {
	return &EventPublisher{
		hub: hub,
	}
}

// PublishShoutOutReceived notifies the receiver and tagged users of a new
// shoutout. The receiver gets a shoutout.received event, tagged users get
// shoutout.tagged.
func (p *EventPublisher) PublishShoutOutReceived(so types.ShoutOut, taggedUserIDs []string) error {
	eventData := &types.ShoutOutReceivedEvent{
		ShoutOutID: so.ID,
		GiverID:    so.GiverID,
		GiverName:  so.GiverName,
		Title:      so.Title,
		CreatedAt:  so.CreatedAt,
	}

	if so.ReceiverID != so.GiverID && p.hub.IsUserConnected(so.ReceiverID) {
		p.hub.BroadcastToUser(so.ReceiverID, types.NewEvent(types.EventShoutOutReceived, eventData))
	}

	tagged := make([]string, 0, len(taggedUserIDs))
	for _, id := range taggedUserIDs {
		if id == so.GiverID || id == so.ReceiverID {
			continue
		}
		if p.hub.IsUserConnected(id) {
			tagged = append(tagged, id)
		}
	}
	if len(tagged) > 0 {
		p.hub.BroadcastToUsers(tagged, types.NewEvent(types.EventShoutOutTagged, eventData))
	}

	return nil
}

// PublishShoutOutReacted notifies the shoutout's giver of a reaction.
func (p *EventPublisher) PublishShoutOutReacted(shoutoutID, reactorID, giverID string, rt types.ReactionType) error {
	// No notification for reacting to your own shoutout
	if reactorID == giverID {
		return nil
	}

	if !p.hub.IsUserConnected(giverID) {
		return nil
	}

	eventData := &types.ShoutOutReactedEvent{
		ShoutOutID:   shoutoutID,
		UserID:       reactorID,
		ReactionType: rt,
		ReactedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	p.hub.BroadcastToUser(giverID, types.NewEvent(types.EventShoutOutReacted, eventData))
	return nil
}

// PublishShoutOutCommented notifies the giver and receiver of a new comment,
// skipping the commenter themselves.
func (p *EventPublisher) PublishShoutOutCommented(shoutoutID, commentID, commenterID, giverID, receiverID string) error {
	eventData := &types.ShoutOutCommentedEvent{
		ShoutOutID:  shoutoutID,
		CommentID:   commentID,
		UserID:      commenterID,
		CommentedAt: time.Now().UTC().Format(time.RFC3339),
	}

	event := types.NewEvent(types.EventShoutOutComment, eventData)

	recipients := make([]string, 0, 2)
	for _, id := range []string{giverID, receiverID} {
		if id == commenterID {
			continue
		}
		if !p.hub.IsUserConnected(id) {
			continue
		}
		recipients = append(recipients, id)
	}
	if len(recipients) > 0 {
		p.hub.BroadcastToUsers(recipients, event)
	}

	return nil
}
