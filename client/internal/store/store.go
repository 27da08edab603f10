package store

import (
	"sync"

	"github.com/parlor-chat/parlor/shared/api"
	"github.com/parlor-chat/parlor/shared/domain"
	"github.com/parlor-chat/parlor/shared/logger"
)

// Store owns the message repository and dispatches decoded server events
// to it. Every entry point runs to completion, notification included,
// under one lock: events are applied strictly in arrival order and views
// never observe a half-applied mutation.
//
// Unknown target ids on update and reaction events are defined no-ops,
// not errors. Late or out-of-order events referencing messages the client
// has not fetched yet are expected under eventual consistency.
type Store struct {
	mu    sync.Mutex
	repo  *Repository
	views []*View
}

func New() *Store {
	return &Store{repo: newRepository()}
}

// AttachView registers a downstream view. The view starts unfetched and
// receives no live notifications until its first fetch result is merged
// via IngestFetched.
func (s *Store) AttachView() *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &View{}
	s.views = append(s.views, v)
	return v
}

// Message returns the canonical instance for id. Callers must treat the
// result as read-only; all mutation goes through event entry points.
func (s *Store) Message(id domain.MsgId) (*domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Get(id)
}

// Len returns the number of known messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Len()
}

// Snapshot returns value copies of all known messages ordered by id.
func (s *Store) Snapshot() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Snapshot()
}

// IngestFetched merges a bulk fetch result for v and flips its fetched
// flag. The merge and the view's first notification are a single
// notification; later backfill fetches for the same view also notify it
// once per call.
func (s *Store) IngestFetched(v *View, msgs []*domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := s.repo.Reconcile(msgs)
	v.markFetched()
	v.notify()
	logger.Log.Debug("fetch result merged", "batch", len(msgs), "inserted", inserted, "known", s.repo.Len())
}

// Reconcile merges locally-synthesized messages (e.g. the local echo of
// an outgoing message) into the repository. Fetched views are notified
// once per call, and only when the merge actually inserted something.
func (s *Store) Reconcile(batch []*domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo.Reconcile(batch) > 0 {
		s.notifyFetched()
	}
}

// ApplyNewMessage handles an explicit new-message push. Unlike
// reconciliation this is authoritative for the id: a colliding entry is
// overwritten with the event's instance.
func (s *Store) ApplyNewMessage(m *domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repo.Put(m)
	eventsAppliedTotal.WithLabelValues(string(api.EventMessageNew)).Inc()
	s.notifyFetched()
}

// ApplyMessageUpdate handles an edit event. Content, flags and the action
// marker always follow the event; the edit timestamp is withheld on
// rendering-only updates so server re-renders never make a message look
// human-edited.
func (s *Store) ApplyMessageUpdate(e *api.MessageUpdatedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.repo.Get(e.MessageId)
	if !ok {
		eventsDroppedTotal.WithLabelValues(string(api.EventMessageUpdated)).Inc()
		logger.Log.Debug("update for unknown message dropped", "message_id", e.MessageId)
		return
	}

	m.Content = e.Content
	m.Flags = e.Flags
	m.IsMeMessage = e.IsMeMessage
	if !e.IsRenderingOnly() {
		m.EditedAt = e.EditedAt
	}

	eventsAppliedTotal.WithLabelValues(string(api.EventMessageUpdated)).Inc()
	s.notifyFetched()
}

// ApplyReaction handles a reaction add or remove. Adds append without
// deduplication. Removes drop every stored reaction matching the event's
// (kind, emoji code, user id); the emoji name never participates in
// matching. A remove that matches nothing on a known message still
// notifies.
func (s *Store) ApplyReaction(e *api.ReactionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.repo.Get(e.MessageId)
	if !ok {
		eventsDroppedTotal.WithLabelValues(string(api.EventReaction)).Inc()
		logger.Log.Debug("reaction for unknown message dropped", "message_id", e.MessageId, "op", e.Op)
		return
	}

	switch e.Op {
	case api.ReactionAdd:
		m.Reactions = append(m.Reactions, e.Reaction)
	case api.ReactionRemove:
		kept := m.Reactions[:0]
		for _, r := range m.Reactions {
			if !r.SameIdentity(e.Reaction) {
				kept = append(kept, r)
			}
		}
		m.Reactions = kept
	}

	eventsAppliedTotal.WithLabelValues(string(api.EventReaction)).Inc()
	s.notifyFetched()
}

// notifyFetched fires every view that has completed its initial fetch.
// Callers hold s.mu.
func (s *Store) notifyFetched() {
	for _, v := range s.views {
		if v.fetched {
			v.notify()
		}
	}
}
