package events

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/parlor-chat/parlor/shared/logger"
)

// Source reads server events off a websocket and feeds them to the store.
// Frames are applied strictly in the order they arrive; a dropped
// connection is retried until the context is cancelled.
type Source struct {
	url            string
	token          string
	store          Applier
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
}

func NewSource(url, token string, store Applier, reconnectDelay time.Duration) *Source {
	return &Source{
		url:            url,
		token:          token,
		store:          store,
		dialer:         websocket.DefaultDialer,
		reconnectDelay: reconnectDelay,
	}
}

// Run blocks until ctx is cancelled, reconnecting after read failures.
func (s *Source) Run(ctx context.Context) error {
	for {
		if err := s.readLoop(ctx); err != nil && ctx.Err() == nil {
			logger.Log.Warn("event stream interrupted", "url", s.url, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Source) readLoop(ctx context.Context) error {
	header := http.Header{}
	if s.token != "" {
		header.Set("Authorization", "Bearer "+s.token)
	}

	conn, _, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		return err
	}
	logger.Log.Info("event stream connected", "url", s.url)

	// Unblock ReadMessage when the context is cancelled
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
			conn.Close()
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if err := Dispatch(s.store, frame); err != nil {
			// A bad frame is dropped, not fatal to the stream
			logger.Log.Warn("event frame dropped", "error", err)
		}
	}
}
