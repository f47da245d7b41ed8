package domain

// Tipos de hipoteca admitidos.
const (
	MortgageFixed    = "fija"
	MortgageVariable = "variable"
	MortgageMixed    = "mixta"
)

type MortgageInput struct {
	PropertyPrice      float64 `json:"propertyPrice"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	TermYears          int     `json:"termYears"`
	LoanType           string  `json:"loanType"` // "fija", "variable", "mixta"

	// Tipo fijo: NominalRate. Variable: Euribor + Spread.
	// Mixta: NominalRate durante todo el plazo; FixedYears se acepta
	// pero hoy no divide el cuadro en dos tramos.
	NominalRate float64 `json:"nominalRate"`
	Euribor     float64 `json:"euribor"`
	Spread      float64 `json:"spread"`
	FixedYears  int     `json:"fixedYears"`

	// Costes iniciales opcionales.
	OpeningFeePercent float64 `json:"openingFeePercent"`
	AppraisalCost     float64 `json:"appraisalCost"`
	NotaryCost        float64 `json:"notaryCost"`
	AgencyCost        float64 `json:"agencyCost"`
}

type MortgageResult struct {
	DownPayment    float64 `json:"downPayment"`
	LoanAmount     float64 `json:"loanAmount"`
	LoanToValue    float64 `json:"loanToValue"` // porcentaje
	EffectiveRate  float64 `json:"effectiveRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	InitialCosts   float64 `json:"initialCosts"`
	AprEstimate    float64 `json:"aprEstimate"` // TAE aproximada

	Schedule      []AmortizationRow `json:"schedule"`
	YearlySummary []YearlySummary   `json:"yearlySummary"`
}
