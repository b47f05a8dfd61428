package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rl1809/inventory-occ/internal/port"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrConflictExhausted = errors.New("version conflict retries exhausted")
	ErrInvalidAttempts   = errors.New("max attempts must be at least 1")
)

// InsufficientQuantityError reports a delta that would drive the stored
// quantity below zero.
type InsufficientQuantityError struct {
	RecordID string
	Quantity int64 // quantity observed at the failing attempt
	Delta    int64
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity on %s: have %d, delta %d", e.RecordID, e.Quantity, e.Delta)
}

// Updater applies signed deltas to a versioned record with optimistic
// concurrency control. Each attempt reads a fresh snapshot, computes the new
// quantity, and commits through the store's compare-and-set; a lost race is
// retried up to the caller's attempt budget. The updater holds no lock and no
// state between attempts, so any number of Apply calls may run concurrently.
type Updater struct {
	store   port.VersionedStore
	backoff BackoffPolicy
}

// NewUpdater returns an updater backed by store. backoff may be nil, in which
// case retries follow each other immediately.
func NewUpdater(store port.VersionedStore, backoff BackoffPolicy) *Updater {
	return &Updater{store: store, backoff: backoff}
}

// Apply adds delta to the record's quantity and returns the resulting value.
//
// Terminal outcomes:
//   - ErrNotFound: the record does not exist; never retried.
//   - *InsufficientQuantityError: delta would make the quantity negative at
//     the observed snapshot; never retried.
//   - ErrConflictExhausted: maxAttempts consecutive compare-and-set rejections.
//   - any other error: the store failed; never retried here, since the effect
//     of a failed or timed-out write is unknown.
func (u *Updater) Apply(ctx context.Context, recordID string, delta int64, maxAttempts uint) (int64, error) {
	if maxAttempts < 1 {
		return 0, ErrInvalidAttempts
	}

	for attempt := uint(1); ; attempt++ {
		rec, err := u.store.Read(ctx, recordID)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", recordID, err)
		}
		if rec == nil {
			return 0, ErrNotFound
		}

		newQuantity := rec.Quantity + delta
		if newQuantity < 0 {
			return 0, &InsufficientQuantityError{RecordID: recordID, Quantity: rec.Quantity, Delta: delta}
		}

		rows, err := u.store.CompareAndSet(ctx, recordID, newQuantity, rec.Version)
		if err != nil {
			return 0, fmt.Errorf("compare-and-set %s: %w", recordID, err)
		}
		if rows == 1 {
			return newQuantity, nil
		}

		// Lost the race: the version moved between our read and write.
		// The stale snapshot is discarded; the next attempt re-reads.
		if attempt == maxAttempts {
			return 0, ErrConflictExhausted
		}
		if err := u.wait(ctx, attempt); err != nil {
			return 0, err
		}
	}
}

func (u *Updater) wait(ctx context.Context, attempt uint) error {
	if u.backoff == nil {
		return nil
	}
	d := u.backoff(attempt)
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
