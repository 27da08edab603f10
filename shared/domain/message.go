package domain

import "time"

// MessageFlags are per-user booleans the server attaches to a message.
type MessageFlags struct {
	Starred   bool `json:"starred"`
	Mentioned bool `json:"mentioned"`
}

// Message is the client-side record of one chat message.
//
// Identity is Id: two instances with the same Id are the same logical
// message. The repository decides on every merge which instance is
// retained; downstream views hold references into the repository, so a
// retained instance must never be silently replaced.
type Message struct {
	Id          MsgId        `json:"id"`
	Sender      UserId       `json:"sender_id"`
	Content     MsgContent   `json:"content"` // server-rendered HTML
	EditedAt    *time.Time   `json:"edited_at,omitempty"`
	Flags       MessageFlags `json:"flags"`
	IsMeMessage bool         `json:"is_me_message"` // "/me"-style action message
	Reactions   []Reaction   `json:"reactions,omitempty"`
}
