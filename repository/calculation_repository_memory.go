package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []CalculationRecord{},
	}
}

// Save stores the calculation record in memory.
func (r *CalculationRepositoryMemory) Save(kind string, input any, result any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, CalculationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Input:     input,
		Result:    result,
		CreatedAt: time.Now(),
	})
	return nil
}

// Records devuelve una copia del histórico guardado.
func (r *CalculationRepositoryMemory) Records() []CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CalculationRecord, len(r.data))
	copy(out, r.data)
	return out
}
