package handler

import (
	"context"
	"testing"

	"github.com/rl1809/inventory-occ/internal/adapter/handler/pb"
	"github.com/rl1809/inventory-occ/internal/adapter/storage"
	"github.com/rl1809/inventory-occ/internal/core/service"
)

func newTestGRPCHandler(t *testing.T, recordID string, quantity int64) *GRPCHandler {
	store := storage.NewMemoryAdapter()
	if recordID != "" {
		store.Seed(context.Background(), recordID, quantity)
	}

	svc := service.NewStockService(service.NewUpdater(store, nil), 3, 100)
	t.Cleanup(svc.Close)

	go func() {
		for range svc.Journal() {
		}
	}()

	return NewGRPCHandler(svc)
}

func TestGRPCAdjust_Success(t *testing.T) {
	h := newTestGRPCHandler(t, "item-1", 10)

	resp, err := h.Adjust(context.Background(), &pb.AdjustRequest{RecordId: "item-1", Delta: -3})
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if !resp.GetSuccess() {
		t.Errorf("expected success, got message %q", resp.GetMessage())
	}
	if resp.GetQuantity() != 7 {
		t.Errorf("expected quantity 7, got %d", resp.GetQuantity())
	}
}

func TestGRPCAdjust_NotFound(t *testing.T) {
	h := newTestGRPCHandler(t, "", 0)

	resp, err := h.Adjust(context.Background(), &pb.AdjustRequest{RecordId: "missing", Delta: -1})
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if resp.GetSuccess() {
		t.Error("expected failure")
	}
	if resp.GetMessage() != "record not found" {
		t.Errorf("expected not-found message, got %q", resp.GetMessage())
	}
}

func TestGRPCAdjust_InsufficientQuantity(t *testing.T) {
	h := newTestGRPCHandler(t, "item-1", 1)

	resp, err := h.Adjust(context.Background(), &pb.AdjustRequest{RecordId: "item-1", Delta: -2})
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if resp.GetSuccess() {
		t.Error("expected failure")
	}
}
