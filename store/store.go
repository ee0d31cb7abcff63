// Package store keeps normalized summaries in memory, keyed by an opaque
// client identifier. It stands in for the external persistence collaborator
// so listing and export endpoints have a data source.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/taxmitra/itr-engine/dto"
)

type ClientStore struct {
	mu      sync.RWMutex
	clients map[string]*dto.ClientSummary
	order   []string
}

func NewClientStore() *ClientStore {
	return &ClientStore{
		clients: make(map[string]*dto.ClientSummary),
	}
}

// Save stores a summary, assigning a fresh client ID when it has none, and
// returns the ID.
func (s *ClientStore) Save(summary *dto.ClientSummary) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if summary.ClientID == "" {
		summary.ClientID = uuid.NewString()
	}
	if _, exists := s.clients[summary.ClientID]; !exists {
		s.order = append(s.order, summary.ClientID)
	}
	s.clients[summary.ClientID] = summary
	return summary.ClientID
}

func (s *ClientStore) Get(id string) (*dto.ClientSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.clients[id]
	return summary, ok
}

// List returns all summaries in insertion order.
func (s *ClientStore) List() []*dto.ClientSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*dto.ClientSummary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clients[id])
	}
	return out
}
