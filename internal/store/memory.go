package store

import (
	"context"
	"strconv"
	"sync"

	"estate-backend/internal/models"
)

// Memory is the fallback backend used when no DATABASE_URL is configured.
// It holds the whole catalog in a slice for the process lifetime. Ids are
// a monotonically increasing integer counter serialized as strings so the
// wire shape matches the durable backend.
type Memory struct {
	mu     sync.Mutex
	nextID int
	items  []models.Listing
}

// NewMemory returns an empty in-memory store. Call Seed to populate the
// demo catalog.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// List returns all listings in insertion order.
func (m *Memory) List(ctx context.Context) ([]models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Listing, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			l := m.items[i]
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(ctx context.Context, f Fields) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := newListing(f)
	l.ID = strconv.Itoa(m.nextID)
	m.nextID++
	m.items = append(m.items, l)
	return &l, nil
}

func (m *Memory) Update(ctx context.Context, id string, p Patch) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			applyPatch(&m.items[i], p)
			l := m.items[i]
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			l := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

// Len reports the current catalog size. Used by tests to assert that
// rejected requests never mutate the collection.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
