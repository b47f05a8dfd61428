package handler

import (
	"context"
	"errors"

	"github.com/rl1809/inventory-occ/internal/adapter/handler/pb"
	"github.com/rl1809/inventory-occ/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedInventoryServiceServer
	stockService *service.StockService
}

func NewGRPCHandler(stockService *service.StockService) *GRPCHandler {
	return &GRPCHandler{stockService: stockService}
}

func (h *GRPCHandler) Adjust(ctx context.Context, req *pb.AdjustRequest) (*pb.AdjustResponse, error) {
	quantity, err := h.stockService.Adjust(ctx, req.GetRecordId(), req.GetDelta())
	if err != nil {
		var insufficient *service.InsufficientQuantityError
		if errors.Is(err, service.ErrNotFound) {
			return &pb.AdjustResponse{
				Success: false,
				Message: "record not found",
			}, nil
		}
		if errors.As(err, &insufficient) {
			return &pb.AdjustResponse{
				Success: false,
				Message: insufficient.Error(),
			}, nil
		}
		if errors.Is(err, service.ErrConflictExhausted) {
			return &pb.AdjustResponse{
				Success: false,
				Message: "too much contention, try again",
			}, nil
		}
		return &pb.AdjustResponse{
			Success: false,
			Message: "internal error",
		}, nil
	}

	return &pb.AdjustResponse{
		Success:  true,
		Quantity: quantity,
		Message:  "adjustment applied",
	}, nil
}
