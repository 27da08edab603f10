package domain

// ReactionKind enumerates where an emoji comes from.
type ReactionKind string

const (
	ReactionUnicodeEmoji ReactionKind = "unicode_emoji"
	ReactionCustomEmoji  ReactionKind = "custom_emoji"
)

// Reaction is keyed by (Kind, EmojiCode, UserId). EmojiName is what gets
// shown but carries no identity: servers rename emoji without reissuing
// reaction events, so matching on the name would strand stale reactions.
type Reaction struct {
	Kind      ReactionKind `json:"kind"`
	EmojiName EmojiName    `json:"emoji_name"`
	EmojiCode EmojiCode    `json:"emoji_code"`
	UserId    UserId       `json:"user_id"`
}

// SameIdentity reports whether two reactions refer to the same logical
// reaction. EmojiName is deliberately excluded.
func (r Reaction) SameIdentity(other Reaction) bool {
	return r.Kind == other.Kind && r.EmojiCode == other.EmojiCode && r.UserId == other.UserId
}
