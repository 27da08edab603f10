package domain

type (
	UserId = int64
	MsgId  = int64

	// EmojiCode is identity-bearing; EmojiName is display-only
	EmojiCode = string
	EmojiName = string

	MsgContent = string
)
