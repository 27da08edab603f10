package events

import (
	"sync"
	"testing"

	"github.com/parlor-chat/parlor/shared/api"
	"github.com/parlor-chat/parlor/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock applier - records what the dispatcher handed over. Locked because
// the source test feeds it from the reader goroutine.
type mockApplier struct {
	mu          sync.Mutex
	newMessages []*domain.Message
	updates     []*api.MessageUpdatedEvent
	reactions   []*api.ReactionEvent
}

func (m *mockApplier) ApplyNewMessage(msg *domain.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newMessages = append(m.newMessages, msg)
}

func (m *mockApplier) ApplyMessageUpdate(e *api.MessageUpdatedEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, e)
}

func (m *mockApplier) ApplyReaction(e *api.ReactionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reactions = append(m.reactions, e)
}

func (m *mockApplier) snapshot() (news []*domain.Message, updates []*api.MessageUpdatedEvent, reactions []*api.ReactionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(news, m.newMessages...), append(updates, m.updates...), append(reactions, m.reactions...)
}

func TestDispatchNewMessage(t *testing.T) {
	st := &mockApplier{}

	frame := []byte(`{
		"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c01",
		"type": "message_new",
		"payload": {"message": {"id": 1, "sender_id": 7, "content": "<p>hi</p><script>alert(1)</script>"}}
	}`)

	require.NoError(t, Dispatch(st, frame))
	require.Len(t, st.newMessages, 1)
	assert.Equal(t, domain.MsgId(1), st.newMessages[0].Id)
	// Script stripped before the store sees the content
	assert.Equal(t, "<p>hi</p>", st.newMessages[0].Content)
}

func TestDispatchLegacyUpdate(t *testing.T) {
	st := &mockApplier{}

	// Old event shape: no rendering_only marker, no acting user
	frame := []byte(`{
		"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c02",
		"type": "message_updated",
		"payload": {"message_id": 1, "content": "bar"}
	}`)

	require.NoError(t, Dispatch(st, frame))
	require.Len(t, st.updates, 1)
	assert.Equal(t, "bar", st.updates[0].Content)
	assert.Nil(t, st.updates[0].UserId)
	assert.True(t, st.updates[0].IsRenderingOnly())
}

func TestDispatchUpdateWithActingUser(t *testing.T) {
	st := &mockApplier{}

	frame := []byte(`{
		"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c03",
		"type": "message_updated",
		"payload": {"message_id": 1, "content": "bar", "user_id": 7, "edited_at": "2026-02-14T12:00:00Z"}
	}`)

	require.NoError(t, Dispatch(st, frame))
	require.Len(t, st.updates, 1)
	require.NotNil(t, st.updates[0].UserId)
	assert.Equal(t, domain.UserId(7), *st.updates[0].UserId)
	assert.False(t, st.updates[0].IsRenderingOnly())
	require.NotNil(t, st.updates[0].EditedAt)
}

func TestDispatchReaction(t *testing.T) {
	st := &mockApplier{}

	frame := []byte(`{
		"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c04",
		"type": "reaction",
		"payload": {"op": "add", "message_id": 1, "reaction": {"kind": "unicode_emoji", "emoji_name": "tada", "emoji_code": "1f389", "user_id": 7}}
	}`)

	require.NoError(t, Dispatch(st, frame))
	require.Len(t, st.reactions, 1)
	assert.Equal(t, api.ReactionAdd, st.reactions[0].Op)
	assert.Equal(t, domain.EmojiCode("1f389"), st.reactions[0].Reaction.EmojiCode)
}

func TestDispatchRejectsBadFrames(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{"not json", `{{{`},
		{"missing type", `{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c05", "payload": {}}`},
		{"missing payload", `{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c06", "type": "reaction"}`},
		{"reaction with bad op", `{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c07", "type": "reaction", "payload": {"op": "toggle", "message_id": 1}}`},
		{"update without message id", `{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c08", "type": "message_updated", "payload": {"content": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &mockApplier{}
			assert.Error(t, Dispatch(st, []byte(tt.frame)))
			assert.Empty(t, st.newMessages)
			assert.Empty(t, st.updates)
			assert.Empty(t, st.reactions)
		})
	}
}

func TestDispatchToleratesUnknownEventType(t *testing.T) {
	st := &mockApplier{}

	frame := []byte(`{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c09", "type": "typing_started", "payload": {}}`)

	assert.NoError(t, Dispatch(st, frame))
	assert.Empty(t, st.newMessages)
	assert.Empty(t, st.updates)
	assert.Empty(t, st.reactions)
}
