package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rl1809/inventory-occ/internal/core/service"
)

type HTTPHandler struct {
	stockService *service.StockService
}

type AdjustHTTPRequest struct {
	RecordID string `json:"record_id"`
	Delta    int64  `json:"delta"`
}

type AdjustHTTPResponse struct {
	Success  bool   `json:"success"`
	Quantity int64  `json:"quantity,omitempty"`
	Message  string `json:"message"`
}

func NewHTTPHandler(stockService *service.StockService) *HTTPHandler {
	return &HTTPHandler{stockService: stockService}
}

func (h *HTTPHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AdjustHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AdjustHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.RecordID == "" || req.Delta == 0 {
		writeJSON(w, http.StatusBadRequest, AdjustHTTPResponse{
			Success: false,
			Message: "record_id and a non-zero delta are required",
		})
		return
	}

	quantity, err := h.stockService.Adjust(r.Context(), req.RecordID, req.Delta)
	if err != nil {
		status := http.StatusInternalServerError
		message := "internal error"

		var insufficient *service.InsufficientQuantityError
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
			message = "record not found"
		} else if errors.As(err, &insufficient) {
			status = http.StatusGone
			message = insufficient.Error()
		} else if errors.Is(err, service.ErrConflictExhausted) {
			status = http.StatusConflict
			message = "too much contention, try again"
		}

		writeJSON(w, status, AdjustHTTPResponse{
			Success: false,
			Message: message,
		})
		return
	}

	writeJSON(w, http.StatusOK, AdjustHTTPResponse{
		Success:  true,
		Quantity: quantity,
		Message:  "adjustment applied",
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
