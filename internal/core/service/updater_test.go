package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rl1809/inventory-occ/internal/adapter/storage"
	"github.com/rl1809/inventory-occ/internal/core/domain"
)

// stubStore scripts store behavior per call and counts invocations.
type stubStore struct {
	readFunc func(call int) (*domain.Record, error)
	casFunc  func(call int, newQuantity int64, expectedVersion uint64) (int64, error)

	reads int
	cases int
}

func (s *stubStore) Read(ctx context.Context, recordID string) (*domain.Record, error) {
	s.reads++
	return s.readFunc(s.reads)
}

func (s *stubStore) CompareAndSet(ctx context.Context, recordID string, newQuantity int64, expectedVersion uint64) (int64, error) {
	s.cases++
	return s.casFunc(s.cases, newQuantity, expectedVersion)
}

func TestApply_Success(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryAdapter()
	store.Seed(ctx, "item-1", 10)

	u := NewUpdater(store, nil)

	quantity, err := u.Apply(ctx, "item-1", -3, 3)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if quantity != 7 {
		t.Errorf("expected quantity 7, got %d", quantity)
	}

	rec, _ := store.Read(ctx, "item-1")
	if rec.Quantity != 7 {
		t.Errorf("expected stored quantity 7, got %d", rec.Quantity)
	}
	if rec.Version != 1 {
		t.Errorf("expected version 1, got %d", rec.Version)
	}
}

func TestApply_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		readFunc: func(int) (*domain.Record, error) { return nil, nil },
	}

	u := NewUpdater(store, nil)

	_, err := u.Apply(ctx, "missing", -1, 3)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if store.reads != 1 {
		t.Errorf("expected 1 read, got %d", store.reads)
	}
	if store.cases != 0 {
		t.Errorf("expected no CompareAndSet calls, got %d", store.cases)
	}
}

func TestApply_InsufficientQuantity(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		readFunc: func(int) (*domain.Record, error) {
			return &domain.Record{ID: "item-1", Quantity: 1, Version: 5}, nil
		},
	}

	u := NewUpdater(store, nil)

	_, err := u.Apply(ctx, "item-1", -2, 1)

	var insufficient *InsufficientQuantityError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientQuantityError, got: %v", err)
	}
	if insufficient.Quantity != 1 || insufficient.Delta != -2 {
		t.Errorf("expected observed quantity 1 and delta -2, got %d and %d",
			insufficient.Quantity, insufficient.Delta)
	}
	if store.cases != 0 {
		t.Errorf("expected no CompareAndSet calls, got %d", store.cases)
	}
}

func TestApply_ConflictExhausted(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		readFunc: func(call int) (*domain.Record, error) {
			// Version advances between every read and write.
			return &domain.Record{ID: "item-1", Quantity: 3, Version: uint64(call)}, nil
		},
		casFunc: func(int, int64, uint64) (int64, error) { return 0, nil },
	}

	u := NewUpdater(store, nil)

	_, err := u.Apply(ctx, "item-1", -1, 3)
	if !errors.Is(err, ErrConflictExhausted) {
		t.Fatalf("expected ErrConflictExhausted, got: %v", err)
	}
	if store.reads != 3 {
		t.Errorf("expected exactly 3 reads, got %d", store.reads)
	}
	if store.cases != 3 {
		t.Errorf("expected exactly 3 CompareAndSet calls, got %d", store.cases)
	}
}

func TestApply_SingleAttemptConflict(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		readFunc: func(int) (*domain.Record, error) {
			return &domain.Record{ID: "item-1", Quantity: 3, Version: 2}, nil
		},
		// A concurrent writer advanced version 2 before our write landed.
		casFunc: func(int, int64, uint64) (int64, error) { return 0, nil },
	}

	u := NewUpdater(store, nil)

	_, err := u.Apply(ctx, "item-1", -1, 1)
	if !errors.Is(err, ErrConflictExhausted) {
		t.Fatalf("expected ErrConflictExhausted, got: %v", err)
	}
	if store.reads != 1 {
		t.Errorf("expected exactly 1 read, got %d", store.reads)
	}
}

func TestApply_RetriesWithFreshSnapshot(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		readFunc: func(call int) (*domain.Record, error) {
			if call == 1 {
				return &domain.Record{ID: "item-1", Quantity: 10, Version: 0}, nil
			}
			// Another writer committed in between: new quantity and version.
			return &domain.Record{ID: "item-1", Quantity: 8, Version: 1}, nil
		},
		casFunc: func(call int, newQuantity int64, expectedVersion uint64) (int64, error) {
			if call == 1 {
				return 0, nil
			}
			if expectedVersion != 1 {
				return 0, nil
			}
			return 1, nil
		},
	}

	u := NewUpdater(store, nil)

	quantity, err := u.Apply(ctx, "item-1", -1, 3)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if quantity != 7 {
		t.Errorf("expected quantity 7 from the re-read snapshot, got %d", quantity)
	}
	if store.reads != 2 {
		t.Errorf("expected 2 reads, got %d", store.reads)
	}
}

func TestApply_InvalidAttempts(t *testing.T) {
	store := &stubStore{
		readFunc: func(int) (*domain.Record, error) {
			t.Error("Read should not be called")
			return nil, nil
		},
	}

	u := NewUpdater(store, nil)

	_, err := u.Apply(context.Background(), "item-1", -1, 0)
	if !errors.Is(err, ErrInvalidAttempts) {
		t.Fatalf("expected ErrInvalidAttempts, got: %v", err)
	}
}

func TestApply_ReadErrorNotRetried(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &stubStore{
		readFunc: func(int) (*domain.Record, error) { return nil, storeErr },
	}

	u := NewUpdater(store, nil)

	_, err := u.Apply(context.Background(), "item-1", -1, 5)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got: %v", err)
	}
	if store.reads != 1 {
		t.Errorf("expected 1 read, got %d", store.reads)
	}
}

func TestApply_WriteErrorNotRetried(t *testing.T) {
	storeErr := errors.New("timeout")
	store := &stubStore{
		readFunc: func(int) (*domain.Record, error) {
			return &domain.Record{ID: "item-1", Quantity: 5, Version: 0}, nil
		},
		casFunc: func(int, int64, uint64) (int64, error) { return 0, storeErr },
	}

	u := NewUpdater(store, nil)

	// A timed-out write's outcome is unknown; it must not be retried blindly.
	_, err := u.Apply(context.Background(), "item-1", -1, 5)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got: %v", err)
	}
	if store.cases != 1 {
		t.Errorf("expected 1 CompareAndSet call, got %d", store.cases)
	}
}

func TestApply_ConcurrentMixedDeltas(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryAdapter()
	store.Seed(ctx, "item-1", 5)

	u := NewUpdater(store, nil)

	deltas := []int64{-1, -2, -2, +2, -1}

	var successDeltas atomic.Int64
	var successes, insufficient atomic.Int32
	var wg sync.WaitGroup

	for _, d := range deltas {
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()
			_, err := u.Apply(ctx, "item-1", delta, 3)
			switch {
			case err == nil:
				successes.Add(1)
				successDeltas.Add(delta)
			case errors.As(err, new(*InsufficientQuantityError)):
				insufficient.Add(1)
			case errors.Is(err, ErrConflictExhausted):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(d)
	}
	wg.Wait()

	if successes.Load() == 0 {
		t.Error("expected at least one success")
	}

	rec, _ := store.Read(ctx, "item-1")
	if rec.Version != uint64(successes.Load()) {
		t.Errorf("expected version %d (one per success), got %d", successes.Load(), rec.Version)
	}
	if rec.Quantity != 5+successDeltas.Load() {
		t.Errorf("expected quantity %d, got %d", 5+successDeltas.Load(), rec.Quantity)
	}
	if rec.Quantity < 0 {
		t.Errorf("quantity went negative: %d", rec.Quantity)
	}
}

func TestApply_ConcurrentDrain(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryAdapter()
	store.Seed(ctx, "item-1", 20)

	u := NewUpdater(store, nil)

	// Version can advance at most 20 times, so 25 attempts can never exhaust.
	var successes, insufficient atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := u.Apply(ctx, "item-1", -1, 25)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.As(err, new(*InsufficientQuantityError)):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes.Load() != 20 {
		t.Errorf("expected 20 successes, got %d", successes.Load())
	}
	if insufficient.Load() != 30 {
		t.Errorf("expected 30 insufficient, got %d", insufficient.Load())
	}

	rec, _ := store.Read(ctx, "item-1")
	if rec.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", rec.Quantity)
	}
	if rec.Version != 20 {
		t.Errorf("expected version 20, got %d", rec.Version)
	}
}
