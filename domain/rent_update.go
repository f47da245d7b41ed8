package domain

import "time"

// Índices de actualización de renta admitidos.
const (
	IndexIPC    = "ipc"
	IndexIGC    = "igc"
	IndexIRAV   = "irav"
	IndexCustom = "custom"
)

// Tamaño del arrendador.
const (
	LandlordSmall = "particular"
	LandlordLarge = "gran_tenedor"
)

type RentUpdateInput struct {
	CurrentRent       float64   `json:"currentRent"`
	ContractStartDate time.Time `json:"contractStartDate"`
	LastUpdateDate    time.Time `json:"lastUpdateDate"`
	IndexType         string    `json:"indexType"`
	CustomRate        float64   `json:"customRate"` // solo con IndexCustom

	// nil equivale a true: el límite legal se aplica salvo que el
	// llamante lo desactive explícitamente.
	ApplyLegalLimit *bool  `json:"applyLegalLimit,omitempty"`
	LandlordSize    string `json:"landlordSize"`
}

type RentUpdateResult struct {
	IndexRate       float64  `json:"indexRate"`
	LegalLimit      *float64 `json:"legalLimit,omitempty"` // nil: sin tope legal ese año
	FinalRate       float64  `json:"finalRate"`
	IsLimitApplied  bool     `json:"isLimitApplied"`
	SavingFromLimit float64  `json:"savingFromLimit"` // ahorro mensual del inquilino por el tope
	NewRent         float64  `json:"newRent"`
	Increase        float64  `json:"increase"`
	IncreasePercent float64  `json:"increasePercent"`
	ReferenceMonth  string   `json:"referenceMonth"` // "2006-01", mes anterior a la última actualización
	Notes           []string `json:"notes"`
}
