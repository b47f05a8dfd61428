package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/inventory-occ/internal/core/domain"
)

// MySQLAdapter is the authoritative VersionedStore. The compare-and-set is a
// single UPDATE guarded by the version column; MySQL's row lock makes the
// check and the write atomic, so two writers can never both see their
// expected version.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) Read(ctx context.Context, recordID string) (*domain.Record, error) {
	var rec domain.Record
	err := m.db.QueryRowContext(ctx, `
		SELECT record_id, quantity, version, created_at, updated_at
		FROM records WHERE record_id = ?`, recordID,
	).Scan(&rec.ID, &rec.Quantity, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query record: %w", err)
	}

	return &rec, nil
}

func (m *MySQLAdapter) CompareAndSet(ctx context.Context, recordID string, newQuantity int64, expectedVersion uint64) (int64, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE records
		SET quantity = ?, version = version + 1, updated_at = NOW()
		WHERE record_id = ? AND version = ?`,
		newQuantity, recordID, expectedVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("update record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return rows, nil
}

func (m *MySQLAdapter) CreateAdjustment(ctx context.Context, adj domain.Adjustment) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO adjustments (id, record_id, delta, quantity, applied_at)
		VALUES (?, ?, ?, ?, ?)`,
		adj.ID, adj.RecordID, adj.Delta, adj.Quantity, adj.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}

	return nil
}

// Seed creates the record at version 0, or resets an existing one. Used for
// provisioning and tests; not part of the update protocol.
func (m *MySQLAdapter) Seed(ctx context.Context, recordID string, quantity int64) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO records (record_id, quantity, version)
		VALUES (?, ?, 0)
		ON DUPLICATE KEY UPDATE quantity = VALUES(quantity), version = 0`,
		recordID, quantity,
	)
	if err != nil {
		return fmt.Errorf("seed record: %w", err)
	}

	return nil
}
