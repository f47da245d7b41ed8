package domain

// FlipPurchaseCosts desglosa los gastos de compra de una operación de flip.
type FlipPurchaseCosts struct {
	TransferTax float64 `json:"transferTax"` // ITP o IVA+AJD
	Notary      float64 `json:"notary"`
	Registry    float64 `json:"registry"`
	Agency      float64 `json:"agency"`
	Other       float64 `json:"other"`
}

// FlipHoldingCosts son los gastos mensuales recurrentes mientras se
// mantiene el inmueble.
type FlipHoldingCosts struct {
	Community   float64 `json:"community"`
	Utilities   float64 `json:"utilities"`
	Insurance   float64 `json:"insurance"`
	PropertyTax float64 `json:"propertyTax"` // IBI prorrateado mensual
}

// FlipSellingCosts desglosa los gastos de venta.
type FlipSellingCosts struct {
	AgencyFeePercent float64 `json:"agencyFeePercent"` // sobre el precio de venta
	Staging          float64 `json:"staging"`
	Marketing        float64 `json:"marketing"`
	Plusvalia        float64 `json:"plusvalia"` // plusvalía municipal estimada
}

// FlipFinancing es el bloque opcional de financiación puente.
type FlipFinancing struct {
	LoanAmount       float64 `json:"loanAmount"`
	AnnualRate       float64 `json:"annualRate"`
	OpeningCost      float64 `json:"openingCost"`
	CancellationCost float64 `json:"cancellationCost"`
}

type FlipInput struct {
	PurchasePrice      float64           `json:"purchasePrice"`
	PurchaseCosts      FlipPurchaseCosts `json:"purchaseCosts"`
	RenovationBudget   float64           `json:"renovationBudget"`
	ContingencyPercent float64           `json:"contingencyPercent"`
	MonthsToRenovate   int               `json:"monthsToRenovate"`
	MonthsToSell       int               `json:"monthsToSell"`
	HoldingCosts       FlipHoldingCosts  `json:"holdingCosts"`
	SellingPrice       float64           `json:"sellingPrice"`
	SellingCosts       FlipSellingCosts  `json:"sellingCosts"`
	Financing          *FlipFinancing    `json:"financing,omitempty"`
}

type FlipResult struct {
	TotalPurchase             float64 `json:"totalPurchase"`
	RenovationWithContingency float64 `json:"renovationWithContingency"`
	TotalMonths               int     `json:"totalMonths"`
	MonthlyHoldingCost        float64 `json:"monthlyHoldingCost"`
	HoldingCostsTotal         float64 `json:"holdingCostsTotal"`
	SellingCostsTotal         float64 `json:"sellingCostsTotal"`
	FinancingCosts            float64 `json:"financingCosts"`
	TotalCosts                float64 `json:"totalCosts"`
	CashRequired              float64 `json:"cashRequired"`

	GrossProfit       float64 `json:"grossProfit"`
	NetProfit         float64 `json:"netProfit"`
	EstimatedTax      float64 `json:"estimatedTax"`
	NetProfitAfterTax float64 `json:"netProfitAfterTax"`

	Roi            float64 `json:"roi"`
	RoiOnCash      float64 `json:"roiOnCash"`
	AnnualizedRoi  float64 `json:"annualizedRoi"`
	ProfitMargin   float64 `json:"profitMargin"`
	BreakEvenPrice float64 `json:"breakEvenPrice"`
	SafetyMargin   float64 `json:"safetyMargin"`
}

// SensitivityPoint es el resultado del análisis de sensibilidad para una
// variación porcentual del precio de venta.
type SensitivityPoint struct {
	Variation    float64 `json:"variation"` // porcentaje aplicado al precio de venta
	SellingPrice float64 `json:"sellingPrice"`
	NetProfit    float64 `json:"netProfit"`
	Roi          float64 `json:"roi"`
}
