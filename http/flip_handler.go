package http

import (
	"encoding/json"
	"net/http"

	"inmocalc/domain"
	"inmocalc/service"
)

type FlipHandler struct {
	service *service.FlipService
}

func NewFlipHandler(service *service.FlipService) *FlipHandler {
	return &FlipHandler{service: service}
}

func (h *FlipHandler) CalculateFlip(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.FlipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateFlip(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// sensitivityRequest envuelve la entrada del flip con las variaciones a
// evaluar; vacías, se usan las variaciones por defecto.
type sensitivityRequest struct {
	Input      domain.FlipInput `json:"input"`
	Variations []float64        `json:"variations,omitempty"`
}

func (h *FlipHandler) SensitivityAnalysis(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	points, err := h.service.SensitivityAnalysis(req.Input, req.Variations)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}
