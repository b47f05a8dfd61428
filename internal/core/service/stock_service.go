package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/inventory-occ/internal/core/domain"
)

// StockService fronts the updater and records every committed adjustment on
// an in-memory journal queue, drained asynchronously by workers. The journal
// is an audit trail, not part of the commit: entries are enqueued only after
// the store's compare-and-set has succeeded.
type StockService struct {
	updater     *Updater
	maxAttempts uint
	journal     chan domain.Adjustment
}

func NewStockService(updater *Updater, maxAttempts uint, queueSize int) *StockService {
	return &StockService{
		updater:     updater,
		maxAttempts: maxAttempts,
		journal:     make(chan domain.Adjustment, queueSize),
	}
}

// Adjust applies delta to the record and, on success, enqueues a journal
// entry. A full queue drops the entry rather than blocking the caller.
func (s *StockService) Adjust(ctx context.Context, recordID string, delta int64) (int64, error) {
	quantity, err := s.updater.Apply(ctx, recordID, delta, s.maxAttempts)
	if err != nil {
		return 0, err
	}

	adj := domain.Adjustment{
		ID:        uuid.New().String(),
		RecordID:  recordID,
		Delta:     delta,
		Quantity:  quantity,
		AppliedAt: time.Now(),
	}

	select {
	case s.journal <- adj:
	default:
		log.Printf("journal queue full, dropping adjustment %s for %s", adj.ID, recordID)
	}

	return quantity, nil
}

func (s *StockService) Journal() <-chan domain.Adjustment {
	return s.journal
}

func (s *StockService) Close() {
	close(s.journal)
}
