package service

import "sync"

type favoriteState int

const (
	favCommitted favoriteState = iota
	favPendingAdd
	favPendingRemove
)

// FavoriteSet tracks favorite membership per product id with an explicit
// pending state, so an optimistic toggle can be rolled back when the
// confirming mutation fails.
type FavoriteSet struct {
	mu      sync.Mutex
	entries map[int64]favoriteState
}

func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{entries: make(map[int64]favoriteState)}
}

// Contains reports effective membership: committed entries plus pending
// adds, minus pending removes.
func (s *FavoriteSet) Contains(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.entries[id]
	return ok && state != favPendingRemove
}

// BeginToggle optimistically flips membership and marks the entry pending.
// It returns true when the flip is an addition, false when it is a removal.
func (s *FavoriteSet) BeginToggle(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.entries[id]
	if ok && state != favPendingRemove {
		s.entries[id] = favPendingRemove
		return false
	}
	s.entries[id] = favPendingAdd
	return true
}

// Commit settles a pending toggle.
func (s *FavoriteSet) Commit(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.entries[id] {
	case favPendingAdd:
		s.entries[id] = favCommitted
	case favPendingRemove:
		delete(s.entries, id)
	}
}

// Rollback reverts a pending toggle to its pre-toggle membership.
func (s *FavoriteSet) Rollback(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.entries[id] {
	case favPendingAdd:
		delete(s.entries, id)
	case favPendingRemove:
		s.entries[id] = favCommitted
	}
}

// Replace resets the committed membership from a fresh server snapshot.
// Pending entries are dropped: a reload is the reconciliation point.
func (s *FavoriteSet) Replace(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[int64]favoriteState, len(ids))
	for _, id := range ids {
		s.entries[id] = favCommitted
	}
}

// IDs returns the effective membership snapshot.
func (s *FavoriteSet) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, 0, len(s.entries))
	for id, state := range s.entries {
		if state != favPendingRemove {
			out = append(out, id)
		}
	}
	return out
}
