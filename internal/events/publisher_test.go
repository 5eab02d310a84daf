package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bragboard/bragboard-service/internal/types"
)

// fakeHub records broadcasts instead of pushing them over connections.
type fakeHub struct {
	connected map[string]bool
	sent      map[string][]types.EventType
}

func newFakeHub(connected ...string) *fakeHub {
	h := &fakeHub{
		connected: make(map[string]bool),
		sent:      make(map[string][]types.EventType),
	}
	for _, id := range connected {
		h.connected[id] = true
	}
	return h
}

func (h *fakeHub) BroadcastToUser(userID string, event *types.Event) {
	h.sent[userID] = append(h.sent[userID], event.Type)
}

func (h *fakeHub) BroadcastToUsers(userIDs []string, event *types.Event) {
	for _, id := range userIDs {
		h.sent[id] = append(h.sent[id], event.Type)
	}
}

func (h *fakeHub) IsUserConnected(userID string) bool {
	return h.connected[userID]
}

func TestPublishShoutOutReceived(t *testing.T) {
	hub := newFakeHub("receiver", "tagged1")
	p := NewEventPublisher(hub)

	so := types.ShoutOut{
		ID:         "10",
		GiverID:    "giver",
		GiverName:  "alice",
		ReceiverID: "receiver",
	}

	err := p.PublishShoutOutReceived(so, []string{"tagged1", "tagged2", "giver", "receiver"})
	assert.NoError(t, err)

	assert.Equal(t, []types.EventType{types.EventShoutOutReceived}, hub.sent["receiver"])
	assert.Equal(t, []types.EventType{types.EventShoutOutTagged}, hub.sent["tagged1"])

	// Disconnected, the giver, and the receiver get no tagged event
	assert.Empty(t, hub.sent["tagged2"])
	assert.Empty(t, hub.sent["giver"])
	assert.Len(t, hub.sent["receiver"], 1)
}

func TestPublishShoutOutReactedSkipsSelf(t *testing.T) {
	hub := newFakeHub("giver")
	p := NewEventPublisher(hub)

	err := p.PublishShoutOutReacted("10", "giver", "giver", types.ReactionClap)
	assert.NoError(t, err)
	assert.Empty(t, hub.sent["giver"])

	err = p.PublishShoutOutReacted("10", "reactor", "giver", types.ReactionClap)
	assert.NoError(t, err)
	assert.Equal(t, []types.EventType{types.EventShoutOutReacted}, hub.sent["giver"])
}

func TestPublishShoutOutReactedDisconnected(t *testing.T) {
	hub := newFakeHub()
	p := NewEventPublisher(hub)

	err := p.PublishShoutOutReacted("10", "reactor", "giver", types.ReactionLove)
	assert.NoError(t, err)
	assert.Empty(t, hub.sent)
}

func TestPublishShoutOutCommented(t *testing.T) {
	hub := newFakeHub("giver", "receiver")
	p := NewEventPublisher(hub)

	err := p.PublishShoutOutCommented("10", "c1", "commenter", "giver", "receiver")
	assert.NoError(t, err)
	assert.Equal(t, []types.EventType{types.EventShoutOutComment}, hub.sent["giver"])
	assert.Equal(t, []types.EventType{types.EventShoutOutComment}, hub.sent["receiver"])

	// The receiver commenting on their own shoutout only notifies the giver
	hub = newFakeHub("giver", "receiver")
	p = NewEventPublisher(hub)

	err = p.PublishShoutOutCommented("10", "c2", "receiver", "giver", "receiver")
	assert.NoError(t, err)
	assert.Equal(t, []types.EventType{types.EventShoutOutComment}, hub.sent["giver"])
	assert.Empty(t, hub.sent["receiver"])
}
