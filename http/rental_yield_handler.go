package http

import (
	"encoding/json"
	"net/http"

	"inmocalc/domain"
	"inmocalc/service"
)

type RentalYieldHandler struct {
	service *service.RentalYieldService
}

func NewRentalYieldHandler(service *service.RentalYieldService) *RentalYieldHandler {
	return &RentalYieldHandler{service: service}
}

func (h *RentalYieldHandler) CalculateRentalYield(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RentalYieldInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateRentalYield(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
