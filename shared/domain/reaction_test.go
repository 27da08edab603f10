package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactionSameIdentity(t *testing.T) {
	base := Reaction{Kind: ReactionUnicodeEmoji, EmojiName: "thumbs_up", EmojiCode: "1f44d", UserId: 7}

	tests := []struct {
		name  string
		other Reaction
		same  bool
	}{
		{
			"identical",
			Reaction{Kind: ReactionUnicodeEmoji, EmojiName: "thumbs_up", EmojiCode: "1f44d", UserId: 7},
			true,
		},
		{
			"different name, same code/user/kind",
			Reaction{Kind: ReactionUnicodeEmoji, EmojiName: "+1", EmojiCode: "1f44d", UserId: 7},
			true,
		},
		{
			"same name, different code",
			Reaction{Kind: ReactionUnicodeEmoji, EmojiName: "thumbs_up", EmojiCode: "1f44e", UserId: 7},
			false,
		},
		{
			"different user",
			Reaction{Kind: ReactionUnicodeEmoji, EmojiName: "thumbs_up", EmojiCode: "1f44d", UserId: 8},
			false,
		},
		{
			"different kind",
			Reaction{Kind: ReactionCustomEmoji, EmojiName: "thumbs_up", EmojiCode: "1f44d", UserId: 7},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, base.SameIdentity(tt.other))
			assert.Equal(t, tt.same, tt.other.SameIdentity(base))
		})
	}
}
