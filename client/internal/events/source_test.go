package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceAppliesFramesInOrder(t *testing.T) {
	upgrader := websocket.Upgrader{}
	gotAuth := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		frames := []string{
			`{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c11", "type": "message_new", "payload": {"message": {"id": 1, "content": "first"}}}`,
			`{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c12", "type": "message_new", "payload": {"message": {"id": 2, "content": "second"}}}`,
			`not even json`,
			`{"id": "7b1c8a6e-3a3f-4a56-9f2c-1d1f3b2a9c13", "type": "message_updated", "payload": {"message_id": 1, "content": "edited"}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// Hold the connection open until the client goes away
		conn.ReadMessage()
	}))
	defer srv.Close()

	st := &mockApplier{}
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	src := NewSource(url, "test-token", st, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go src.Run(ctx)

	assert.Eventually(t, func() bool {
		_, updates, _ := st.snapshot()
		return len(updates) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "Bearer test-token", <-gotAuth)
	// Bad frame dropped, good frames applied in arrival order
	news, updates, _ := st.snapshot()
	require.Len(t, news, 2)
	assert.Equal(t, "first", news[0].Content)
	assert.Equal(t, "second", news[1].Content)
	assert.Equal(t, "edited", updates[0].Content)
}
