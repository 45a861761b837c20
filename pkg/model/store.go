package model

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Store persists tournaments
// Save is last-write-wins, serializing writers is up to the caller
type Store interface {
	Create(ctx context.Context, t *Tournament) error
	Get(ctx context.Context, uuid string) (*Tournament, error)
	Save(ctx context.Context, t *Tournament) error
	List(ctx context.Context, offset int64, limit int) ([]*Tournament, error)
}

// MemoryStore keeps tournaments in memory
// Records are stored encoded, so callers never share state with the store
type MemoryStore struct {
	mutex   sync.Mutex
	records map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

// Create adds a new tournament
func (m *MemoryStore) Create(_ context.Context, t *Tournament) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.records[t.UUID]; ok {
		return ErrDuplicateKey
	}

	m.records[t.UUID] = b
	return nil
}

// Get returns a copy of the tournament
func (m *MemoryStore) Get(_ context.Context, uuid string) (*Tournament, error) {
	m.mutex.Lock()
	b, ok := m.records[uuid]
	m.mutex.Unlock()

	if !ok {
		return nil, ErrTournamentNotFound
	}

	var t Tournament
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Save replaces the tournament
func (m *MemoryStore) Save(_ context.Context, t *Tournament) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.records[t.UUID]; !ok {
		return ErrTournamentNotFound
	}

	m.records[t.UUID] = b
	return nil
}

// List returns tournaments, newest first
func (m *MemoryStore) List(_ context.Context, offset int64, limit int) ([]*Tournament, error) {
	m.mutex.Lock()
	all := make([]*Tournament, 0, len(m.records))
	for _, b := range m.records {
		var t Tournament
		if err := json.Unmarshal(b, &t); err != nil {
			m.mutex.Unlock()
			return nil, err
		}

		all = append(all, &t)
	}
	m.mutex.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Created.Equal(all[j].Created) {
			return all[i].Created.After(all[j].Created)
		}

		return all[i].UUID < all[j].UUID
	})

	if offset >= int64(len(all)) {
		return []*Tournament{}, nil
	}

	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}
