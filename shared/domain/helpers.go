package domain

import (
	"fmt"
	"time"
)

// for debug
func (m *Message) String() string {
	edited := "never"
	if m.EditedAt != nil {
		edited = m.EditedAt.Format(time.StampMilli)
	}
	s := fmt.Sprintf("[id:%d, sender:%d, content:%s, edited:%s, me:%v, reactions:[", m.Id, m.Sender, m.Content, edited, m.IsMeMessage)
	for i, r := range m.Reactions {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s:%s by %d", r.Kind, r.EmojiName, r.UserId)
	}
	return s + "]]"
}
