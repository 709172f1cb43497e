package board

import (
	"github.com/RJD02/life-quest/internal/model"
)

// Subscribe registers fn to receive every activity entry as it is appended.
// Subscribers run synchronously on the mutating goroutine and must not call
// back into the store.
func (s *Store) Subscribe(fn func(model.ActivityEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Activity returns the newest entries first, at most limit of them
// (limit <= 0 returns everything).
func (s *Store) Activity(limit int) []model.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.activity)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]model.ActivityEntry(nil), s.activity[:n]...)
}

// ActivityCapacity returns the configured maximum log length.
func (s *Store) ActivityCapacity() int {
	return s.capacity
}

// record appends an activity entry, evicting the oldest entries once the log
// exceeds its capacity. Callers must hold the mutex.
func (s *Store) record(et model.EntityType, entityID string, action model.ActivityAction, description string, meta map[string]string) {
	e := model.ActivityEntry{
		ID:          s.newID(),
		EntityType:  et,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		UserID:      s.actor,
		Metadata:    meta,
		CreatedAt:   s.now(),
	}

	s.activity = append(s.activity, model.ActivityEntry{})
	copy(s.activity[1:], s.activity)
	s.activity[0] = e
	if len(s.activity) > s.capacity {
		s.activity = s.activity[:s.capacity]
	}

	for _, fn := range s.subs {
		fn(e)
	}
}
