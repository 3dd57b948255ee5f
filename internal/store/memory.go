package store

import (
	"context"
	"sync"
	"time"

	"github.com/megamarket/catalog-backend/internal/types"
)

// MemoryStore is a mutex-guarded in-process backend. It is the default for
// local runs and the fixture for tests. Nodes are cloned on the way in and
// out so callers never share memory with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	nodes map[string]*types.Node
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nodes: make(map[string]*types.Node)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*types.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n.Clone(), nil
}

func (s *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok, nil
}

func (s *MemoryStore) Put(ctx context.Context, n *types.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[n.ID] = n.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, id)
	return nil
}

func (s *MemoryStore) ScanByDateRange(ctx context.Context, from, to time.Time) ([]*types.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Node, 0)
	for _, n := range s.nodes {
		if n.Date.Before(from) || n.Date.After(to) {
			continue
		}
		out = append(out, n.Clone())
	}
	return out, nil
}

// Len reports the number of stored nodes; used by tests to assert cascade
// deletes.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
