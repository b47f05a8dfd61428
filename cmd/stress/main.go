package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/inventory-occ/internal/adapter/storage"
	"github.com/rl1809/inventory-occ/internal/core/service"
)

const (
	recordID        = "stress-record"
	initialQuantity = 100
	totalWorkers    = 50
	maxAttempts     = 25
)

// deltas cycles across workers; credits mixed in so some insufficient
// outcomes depend on timing, like real traffic.
var deltas = []int64{-1, -2, -3, +1, -5}

func main() {
	ctx := context.Background()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	store := storage.NewRedisAdapter(rdb)
	if err := store.Seed(ctx, recordID, initialQuantity); err != nil {
		log.Fatalf("failed to seed record: %v", err)
	}

	updater := service.NewUpdater(store, service.JitterBackoff(time.Millisecond, 20*time.Millisecond))

	var success, insufficient, exhausted, failed atomic.Int64
	var successDeltas atomic.Int64
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < totalWorkers; i++ {
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()

			_, err := updater.Apply(ctx, recordID, delta, maxAttempts)
			switch {
			case err == nil:
				success.Add(1)
				successDeltas.Add(delta)
			case errors.As(err, new(*service.InsufficientQuantityError)):
				insufficient.Add(1)
			case errors.Is(err, service.ErrConflictExhausted):
				exhausted.Add(1)
			default:
				failed.Add(1)
				log.Printf("apply failed: %v", err)
			}
		}(deltas[i%len(deltas)])
	}
	wg.Wait()
	elapsed := time.Since(start)

	rec, err := store.Read(ctx, recordID)
	if err != nil || rec == nil {
		log.Fatalf("failed to read final record: %v", err)
	}

	fmt.Printf("workers:       %d in %v\n", totalWorkers, elapsed)
	fmt.Printf("success:       %d\n", success.Load())
	fmt.Printf("insufficient:  %d\n", insufficient.Load())
	fmt.Printf("exhausted:     %d\n", exhausted.Load())
	fmt.Printf("failed:        %d\n", failed.Load())
	fmt.Printf("final:         quantity=%d version=%d\n", rec.Quantity, rec.Version)

	wantQuantity := initialQuantity + successDeltas.Load()
	if rec.Quantity != wantQuantity {
		log.Fatalf("quantity mismatch: want %d, got %d", wantQuantity, rec.Quantity)
	}
	if rec.Version != uint64(success.Load()) {
		log.Fatalf("version mismatch: want %d, got %d", success.Load(), rec.Version)
	}
	fmt.Println("invariants hold: quantity and version match successful applies")
}
