package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/parlor-chat/parlor/shared/domain"
)

// Server event wire shapes. The event source decodes these and hands them
// to the store; the store never sees raw JSON.

type EventType string

const (
	EventMessageNew     EventType = "message_new"
	EventMessageUpdated EventType = "message_updated"
	EventReaction       EventType = "reaction"
)

// EventEnvelope wraps every pushed event. Id is assigned by the server and
// only used for log correlation; events are applied strictly in arrival
// order, never deduplicated or reordered here.
type EventEnvelope struct {
	Id      uuid.UUID       `json:"id"`
	Type    EventType       `json:"type" validate:"required"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

type MessageNewEvent struct {
	Message domain.Message `json:"message" validate:"required"`
}

// MessageUpdatedEvent edits an existing message.
//
// RenderingOnly marks server-side re-renders (e.g. a refreshed link
// preview) that must not make the message look human-edited. Servers
// predating the marker omit UserId on such updates instead; that legacy
// heuristic has to keep working bit-for-bit.
type MessageUpdatedEvent struct {
	MessageId     domain.MsgId        `json:"message_id" validate:"required"`
	Content       domain.MsgContent   `json:"content"`
	EditedAt      *time.Time          `json:"edited_at,omitempty"`
	Flags         domain.MessageFlags `json:"flags"`
	IsMeMessage   bool                `json:"is_me_message"`
	RenderingOnly *bool               `json:"rendering_only,omitempty"`
	UserId        *domain.UserId      `json:"user_id,omitempty"` // acting user
}

// IsRenderingOnly reports whether the update must leave the edit timestamp
// untouched. The explicit marker wins when present; otherwise an absent
// acting user means a rendering-only change (legacy event shape).
func (e *MessageUpdatedEvent) IsRenderingOnly() bool {
	if e.RenderingOnly != nil {
		return *e.RenderingOnly
	}
	return e.UserId == nil
}

type ReactionOp string

const (
	ReactionAdd    ReactionOp = "add"
	ReactionRemove ReactionOp = "remove"
)

type ReactionEvent struct {
	Op        ReactionOp      `json:"op" validate:"required,oneof=add remove"`
	MessageId domain.MsgId    `json:"message_id" validate:"required"`
	Reaction  domain.Reaction `json:"reaction"`
}

// HistoryResponse is the scrollback fetch result: a batch of messages plus
// whether the oldest message of the conversation was reached.
type HistoryResponse struct {
	Messages    []*domain.Message `json:"messages"`
	FoundOldest bool              `json:"found_oldest"`
}
