package domain

// RentalExpenses son los gastos recurrentes de un alquiler. Los campos
// *Percent se expresan como porcentaje de la renta anual efectiva.
type RentalExpenses struct {
	PropertyTax               float64 `json:"propertyTax"` // IBI anual
	MonthlyCommunityFee       float64 `json:"monthlyCommunityFee"`
	AnnualInsurance           float64 `json:"annualInsurance"`
	MaintenanceReservePercent float64 `json:"maintenanceReservePercent"`
	ManagementFeePercent      float64 `json:"managementFeePercent"`
	VacancyRatePercent        float64 `json:"vacancyRatePercent"`
}

// RentalFinancing es el bloque opcional de financiación.
type RentalFinancing struct {
	LoanAmount float64 `json:"loanAmount"`
	AnnualRate float64 `json:"annualRate"`
	TermYears  int     `json:"termYears"`
}

type RentalYieldInput struct {
	PurchasePrice  float64          `json:"purchasePrice"`
	RenovationCost float64          `json:"renovationCost"`
	ClosingCosts   float64          `json:"closingCosts"`
	MonthlyRent    float64          `json:"monthlyRent"`
	Expenses       RentalExpenses   `json:"expenses"`
	Financing      *RentalFinancing `json:"financing,omitempty"`
}

// RentalExpenseBreakdown desglosa los gastos anuales. Total es la suma
// de las partidas tal y como se reportan.
type RentalExpenseBreakdown struct {
	PropertyTax float64 `json:"propertyTax"`
	Community   float64 `json:"community"`
	Insurance   float64 `json:"insurance"`
	Maintenance float64 `json:"maintenance"`
	Management  float64 `json:"management"`
	Total       float64 `json:"total"`
}

type RentalYieldResult struct {
	TotalInvestment     float64 `json:"totalInvestment"`
	EffectiveAnnualRent float64 `json:"effectiveAnnualRent"`
	NetOperatingIncome  float64 `json:"netOperatingIncome"`
	AnnualMortgage      float64 `json:"annualMortgage"`
	MonthlyMortgage     float64 `json:"monthlyMortgage"`
	AnnualCashflow      float64 `json:"annualCashflow"`
	CashInvested        float64 `json:"cashInvested"`

	GrossYield   float64  `json:"grossYield"`
	NetYield     float64  `json:"netYield"`
	CashOnCash   float64  `json:"cashOnCash"`
	CapRate      float64  `json:"capRate"`
	PaybackYears *float64 `json:"paybackYears,omitempty"` // nil: la inversión no se recupera con este cashflow

	ExpenseBreakdown RentalExpenseBreakdown `json:"expenseBreakdown"`
}
