package store

import "github.com/parlor-chat/parlor/shared/domain"

// Reconcile merges a batch of candidate messages into the repository.
// Returns the number of newly inserted messages.
//
// For each candidate, by id: an unknown id is inserted as-is and becomes
// the canonical instance; a known id keeps the existing instance, and the
// batch slot is rewritten to point at it so callers iterating the batch
// afterwards only ever see canonical instances. A message that arrived as
// a push event and shows up again in a backfill fetch therefore keeps its
// original identity. Within one batch, earlier elements win: a duplicate
// id later in the same batch resolves to the first-inserted instance.
func (r *Repository) Reconcile(batch []*domain.Message) int {
	inserted := 0
	for i, m := range batch {
		if existing, ok := r.messages[m.Id]; ok {
			batch[i] = existing
			continue
		}
		r.messages[m.Id] = m
		inserted++
	}
	return inserted
}
