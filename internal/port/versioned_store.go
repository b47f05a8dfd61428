package port

import (
	"context"

	"github.com/rl1809/inventory-occ/internal/core/domain"
)

type VersionedStore interface {
	// Read returns a point-in-time snapshot of the record, or nil if it
	// does not exist.
	Read(ctx context.Context, recordID string) (*domain.Record, error)

	// CompareAndSet writes newQuantity and advances the version by one,
	// but only if the stored version still equals expectedVersion.
	// Returns 1 on success, 0 if the version moved or the record is gone.
	CompareAndSet(ctx context.Context, recordID string, newQuantity int64, expectedVersion uint64) (int64, error)
}

type JournalRepository interface {
	// CreateAdjustment persists one committed adjustment for auditing
	CreateAdjustment(ctx context.Context, adj domain.Adjustment) error
}
