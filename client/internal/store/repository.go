package store

import (
	"sort"

	"github.com/parlor-chat/parlor/shared/domain"
)

// Repository is the identity-preserving keyed store of all known messages.
// It owns the canonical instance for every message id: once an id is
// present, event handlers mutate that instance in place instead of
// replacing it, so references held by views stay valid.
type Repository struct {
	messages map[domain.MsgId]*domain.Message
}

func newRepository() *Repository {
	return &Repository{messages: make(map[domain.MsgId]*domain.Message)}
}

// Get returns the canonical instance for id, if known.
func (r *Repository) Get(id domain.MsgId) (*domain.Message, bool) {
	m, ok := r.messages[id]
	return m, ok
}

// Put stores m as the canonical instance for its id, replacing any
// previous instance. Only the new-message event path may do this;
// everything else goes through Reconcile.
func (r *Repository) Put(m *domain.Message) {
	r.messages[m.Id] = m
}

func (r *Repository) Len() int {
	return len(r.messages)
}

// Snapshot returns value copies of all known messages ordered by id.
// Reaction slices are copied too, so callers can hold the result across
// later store mutations.
func (r *Repository) Snapshot() []domain.Message {
	out := make([]domain.Message, 0, len(r.messages))
	for _, m := range r.messages {
		c := *m
		if len(m.Reactions) > 0 {
			c.Reactions = make([]domain.Reaction, len(m.Reactions))
			copy(c.Reactions, m.Reactions)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}
