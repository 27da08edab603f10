package compose

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/parlor-chat/parlor/shared/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Composer renders outgoing message text the way the server will, so a
// local echo looks right until the authoritative copy arrives.
type Composer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Composer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		// Raw HTML passes the renderer and is stripped by the policy after
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Composer{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown to sanitized HTML.
func (c *Composer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return c.policy.Sanitize(strings.TrimSpace(buf.String())), nil
}

// LocalEcho builds a provisional message for an outgoing send so the
// scrollback paints it immediately. A "/me " prefix marks an action
// message, mirroring the server's handling. The caller supplies a
// provisional id (negative by convention); merging the echo through the
// store's reconciliation keeps its instance canonical if the same id ever
// shows up again.
func (c *Composer) LocalEcho(id domain.MsgId, sender domain.UserId, text string) (*domain.Message, error) {
	isMe := false
	if rest, ok := strings.CutPrefix(text, "/me "); ok {
		isMe = true
		text = rest
	}

	content, err := c.Render(text)
	if err != nil {
		return nil, err
	}
	return &domain.Message{
		Id:          id,
		Sender:      sender,
		Content:     content,
		IsMeMessage: isMe,
	}, nil
}
