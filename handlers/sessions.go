package handlers

import (
	"sync"

	"wellvest-go-be/store"
)

// Sessions maps user ids to their session store, creating stores lazily
// through the injected factory.
type Sessions struct {
	mu       sync.Mutex
	stores   map[string]*store.Store
	newStore func(userID string) *store.Store
}

// NewSessions creates a registry backed by the given store factory.
func NewSessions(newStore func(userID string) *store.Store) *Sessions {
	return &Sessions{
		stores:   map[string]*store.Store{},
		newStore: newStore,
	}
}

// Get returns the store for userID, creating one on first use.
func (s *Sessions) Get(userID string) *store.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[userID]; ok {
		return st
	}
	st := s.newStore(userID)
	s.stores[userID] = st
	return st
}

// Drop removes the session for userID. The next request from that user
// rebuilds the store through the factory, which re-seeds the user id.
func (s *Sessions) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stores, userID)
}

// Flush waits for in-flight reconciliation tasks across every session. Used
// on shutdown.
func (s *Sessions) Flush() {
	s.mu.Lock()
	stores := make([]*store.Store, 0, len(s.stores))
	for _, st := range s.stores {
		stores = append(stores, st)
	}
	s.mu.Unlock()
	for _, st := range stores {
		st.Flush()
	}
}
