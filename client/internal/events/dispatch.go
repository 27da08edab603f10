package events

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/parlor-chat/parlor/shared/api"
	"github.com/parlor-chat/parlor/shared/domain"
	"github.com/parlor-chat/parlor/shared/logger"
	"github.com/parlor-chat/parlor/shared/utils"
)

// Applier is the slice of the message store the event path needs. Events
// are handed over one at a time, in arrival order.
type Applier interface {
	ApplyNewMessage(*domain.Message)
	ApplyMessageUpdate(*api.MessageUpdatedEvent)
	ApplyReaction(*api.ReactionEvent)
}

// Server-rendered content is sanitized before it can reach the store, so
// nothing downstream ever handles markup the server should not have sent.
var contentPolicy = bluemonday.UGCPolicy()

// Dispatch decodes one wire frame and applies it to the store. Malformed
// frames are rejected here; the store itself never sees them.
func Dispatch(st Applier, frame []byte) error {
	var env api.EventEnvelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return fmt.Errorf("undecodable event frame: %w", err)
	}
	if err := utils.ValidateStruct(&env); err != nil {
		return fmt.Errorf("invalid event envelope: %w", err)
	}

	switch env.Type {
	case api.EventMessageNew:
		var ev api.MessageNewEvent
		if err := utils.DecodeValidate(bytes.NewReader(env.Payload), &ev); err != nil {
			return fmt.Errorf("event %s: %w", env.Id, err)
		}
		ev.Message.Content = contentPolicy.Sanitize(ev.Message.Content)
		st.ApplyNewMessage(&ev.Message)

	case api.EventMessageUpdated:
		var ev api.MessageUpdatedEvent
		if err := utils.DecodeValidate(bytes.NewReader(env.Payload), &ev); err != nil {
			return fmt.Errorf("event %s: %w", env.Id, err)
		}
		ev.Content = contentPolicy.Sanitize(ev.Content)
		st.ApplyMessageUpdate(&ev)

	case api.EventReaction:
		var ev api.ReactionEvent
		if err := utils.DecodeValidate(bytes.NewReader(env.Payload), &ev); err != nil {
			return fmt.Errorf("event %s: %w", env.Id, err)
		}
		st.ApplyReaction(&ev)

	default:
		// Newer servers ship event types this client does not know yet
		logger.Log.Debug("unhandled event type", "type", env.Type, "event_id", env.Id)
	}
	return nil
}
