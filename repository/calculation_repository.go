package repository

import "time"

// CalculationRecord es una entrada del histórico de cálculos.
type CalculationRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // "hipoteca", "rentabilidad", ...
	Input     any       `json:"input"`
	Result    any       `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// CalculationRepository guarda el histórico de cálculos. Las calculadoras
// no lo consultan nunca: es escritura de auditoría, no caché.
type CalculationRepository interface {
	Save(kind string, input any, result any) error
}
