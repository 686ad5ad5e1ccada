package memory

import (
	"sync"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure PendingActionStore implements the interface.
var _ driven.PendingActionStore = (*PendingActionStore)(nil)

// PendingActionStore is an in-memory implementation of
// driven.PendingActionStore with last-writer-wins semantics: only the
// most recently recorded query's ids resolve.
type PendingActionStore struct {
	mu      sync.Mutex
	actions map[string]domain.PendingAction
}

// NewPendingActionStore creates an empty pending-action store.
func NewPendingActionStore() *PendingActionStore {
	return &PendingActionStore{
		actions: make(map[string]domain.PendingAction),
	}
}

// Replace clears the previous query's entries and installs the new map.
func (s *PendingActionStore) Replace(actions map[string]domain.PendingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = make(map[string]domain.PendingAction, len(actions))
	for id, action := range actions {
		s.actions[id] = action
	}
}

// Get looks up a result id. False means the id is expired.
func (s *PendingActionStore) Get(id string) (domain.PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.actions[id]
	return action, ok
}
