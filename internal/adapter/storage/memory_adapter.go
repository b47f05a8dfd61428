package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rl1809/inventory-occ/internal/core/domain"
)

// MemoryAdapter is an in-process VersionedStore backing the unit tests; the
// mutex gives it the same atomicity the remote stores get from row locks and
// scripts.
type MemoryAdapter struct {
	mu      sync.Mutex
	records map[string]*domain.Record
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{records: make(map[string]*domain.Record)}
}

func (m *MemoryAdapter) Read(ctx context.Context, recordID string) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[recordID]
	if !ok {
		return nil, nil
	}

	snapshot := *rec
	return &snapshot, nil
}

func (m *MemoryAdapter) CompareAndSet(ctx context.Context, recordID string, newQuantity int64, expectedVersion uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[recordID]
	if !ok || rec.Version != expectedVersion {
		return 0, nil
	}

	rec.Quantity = newQuantity
	rec.Version++
	rec.UpdatedAt = time.Now()
	return 1, nil
}

// Seed creates the record at version 0, or resets an existing one.
func (m *MemoryAdapter) Seed(ctx context.Context, recordID string, quantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.records[recordID] = &domain.Record{
		ID:        recordID,
		Quantity:  quantity,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}
