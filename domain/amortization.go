package domain

// AmortizationRow es una fila del cuadro de amortización (sistema francés).
type AmortizationRow struct {
	Month               int     `json:"month"` // 1-based
	Year                int     `json:"year"`  // año del préstamo, derivado del mes
	Payment             float64 `json:"payment"`
	PrincipalPortion    float64 `json:"principalPortion"`
	InterestPortion     float64 `json:"interestPortion"`
	RemainingBalance    float64 `json:"remainingBalance"`
	CumulativePrincipal float64 `json:"cumulativePrincipal"`
	CumulativeInterest  float64 `json:"cumulativeInterest"`
}

// YearlySummary agrupa el cuadro de amortización por año.
type YearlySummary struct {
	Year             int     `json:"year"`
	TotalPrincipal   float64 `json:"totalPrincipal"`
	TotalInterest    float64 `json:"totalInterest"`
	RemainingBalance float64 `json:"remainingBalance"` // saldo al cierre del año
}
