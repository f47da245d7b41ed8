package http

import (
	"encoding/json"
	"net/http"

	"inmocalc/domain"
	"inmocalc/service"
)

type RentUpdateHandler struct {
	service *service.RentUpdateService
}

func NewRentUpdateHandler(service *service.RentUpdateService) *RentUpdateHandler {
	return &RentUpdateHandler{service: service}
}

func (h *RentUpdateHandler) CalculateRentUpdate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RentUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateRentUpdate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
