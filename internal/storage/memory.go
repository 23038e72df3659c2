// Package storage provides table persistence implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

// Compile-time interface check.
var _ domain.TableStore = (*MemoryStore)(nil)

// MemoryStore keeps tables in memory for the life of the process.
//
// Tables go in and come out as copies: a caller mutating the *Table it got
// from Load never touches what another goroutine (the status bar, say) is
// reading. Changes become visible only through Save.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*domain.Table
	log    *logger.Logger
}

// NewMemoryStore creates an empty in-memory table store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]*domain.Table),
		log:    log,
	}
}

// Save stores a snapshot of the table, replacing any previous one.
func (s *MemoryStore) Save(ctx context.Context, table *domain.Table) error {
	snap := table.Clone()

	s.mu.Lock()
	s.tables[snap.ID] = snap
	s.mu.Unlock()

	s.log.Debug("saved table %s (recipe=%q, profile=%s, locks=%d, rolls=%d)",
		snap.ID, snap.Recipe.Name, snap.Recipe.Profile, snap.Locks.Count(), snap.Rolls)
	return nil
}

// Load returns a private copy of a table.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[id]
	if !ok {
		s.log.Debug("table not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return t.Clone(), nil
}

// Delete removes a table by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tables, id)
	s.log.Debug("deleted table %s", id)
	return nil
}

// List returns copies of every table, oldest first.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Table, error) {
	s.mu.RLock()
	out := make([]*domain.Table, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
