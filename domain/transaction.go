package domain

// Dirección de la operación.
const (
	TransactionBuy  = "compra"
	TransactionSell = "venta"
)

// Estado del inmueble.
const (
	PropertyNew        = "nueva"
	PropertySecondhand = "segunda_mano"
)

// Categorías de los conceptos del desglose.
const (
	CostCategoryTax     = "tax"
	CostCategoryFee     = "fee"
	CostCategoryService = "service"
)

type TransactionCostInput struct {
	Direction         string  `json:"direction"` // "compra" | "venta"
	Price             float64 `json:"price"`
	PropertyCondition string  `json:"propertyCondition"` // "nueva" | "segunda_mano"
	Jurisdiction      string  `json:"jurisdiction"`      // comunidad autónoma

	// Bonificaciones posibles en compra.
	IsFirstHome   bool `json:"isFirstHome"`
	BuyerAge      int  `json:"buyerAge"`
	IsLargeFamily bool `json:"isLargeFamily"`
	HasDisability bool `json:"hasDisability"`

	MortgageAmount float64 `json:"mortgageAmount"`

	// Solo para ventas.
	YearsOwned            int     `json:"yearsOwned"`
	OriginalPurchasePrice float64 `json:"originalPurchasePrice"`
}

// CostBreakdownItem es un concepto del desglose de gastos.
type CostBreakdownItem struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	IsEstimate  bool    `json:"isEstimate"`
	Category    string  `json:"category"` // "tax" | "fee" | "service"
}

// CostSummary subtotaliza el desglose por categoría.
type CostSummary struct {
	Taxes    float64 `json:"taxes"`
	Fees     float64 `json:"fees"`
	Services float64 `json:"services"`
}

type TransactionCostResult struct {
	Breakdown            []CostBreakdownItem `json:"breakdown"`
	Summary              CostSummary         `json:"summary"`
	TotalCosts           float64             `json:"totalCosts"`
	EffectivePrice       float64             `json:"effectivePrice"` // compra: precio + gastos; venta: precio - gastos
	AppliedTaxRate       float64             `json:"appliedTaxRate"` // ITP/IVA aplicado, en porcentaje
	BonificationsApplied []string            `json:"bonificationsApplied"`
}
