package service

import (
	"math"
	"testing"

	"inmocalc/domain"
	"inmocalc/rates"
)

// testRegistry construye tablas reducidas para no depender de los datos
// incorporados.
func testRegistry() *rates.Registry {
	return &rates.Registry{
		TransferTax: map[string]rates.TransferTaxEntry{
			"andalucia": {General: 7.0, Reducida: 3.5, Joven: 3.5, AJD: 1.2},
			"cataluna":  {General: 10.0, Reducida: 5.0, Joven: 5.0, AJD: 1.5, RequiresHabitability: true},
		},
		DefaultTransferTax: rates.TransferTaxEntry{General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.2},
	}
}

func TestTransactionCosts_BuySecondhandBaseRate(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	input := domain.TransactionCostInput{
		Direction:         domain.TransactionBuy,
		Price:             200000,
		PropertyCondition: domain.PropertySecondhand,
		Jurisdiction:      "cataluna",
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AppliedTaxRate != 10.0 {
		t.Errorf("expected ITP 10%%, got %.2f", result.AppliedTaxRate)
	}
	itp := findItem(t, result.Breakdown, "ITP")
	if itp.Amount != 20000 {
		t.Errorf("expected ITP 20000, got %.2f", itp.Amount)
	}
	if len(result.BonificationsApplied) != 0 {
		t.Errorf("expected no bonifications, got %v", result.BonificationsApplied)
	}
	if result.EffectivePrice != input.Price+result.TotalCosts {
		t.Errorf("expected effective price = price + costs")
	}
}

func TestTransactionCosts_BonificationAppliedOnce(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	// Vivienda habitual y comprador de 30 años con reducida = joven =
	// 3,5%: se aplica el menor de los dos tipos una sola vez, pero ambas
	// condiciones quedan registradas.
	input := domain.TransactionCostInput{
		Direction:         domain.TransactionBuy,
		Price:             100000,
		PropertyCondition: domain.PropertySecondhand,
		Jurisdiction:      "andalucia",
		IsFirstHome:       true,
		BuyerAge:          30,
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AppliedTaxRate != 3.5 {
		t.Errorf("expected reduced rate 3.5, got %.2f", result.AppliedTaxRate)
	}
	itp := findItem(t, result.Breakdown, "ITP")
	if itp.Amount != 3500 {
		t.Errorf("expected ITP 3500 (no double discount), got %.2f", itp.Amount)
	}
	if len(result.BonificationsApplied) != 2 {
		t.Errorf("expected 2 recorded bonifications, got %v", result.BonificationsApplied)
	}
}

func TestTransactionCosts_LargeFamilyFloorsAtReducedRate(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	// Familia numerosa en cataluña: 10% - 1pt = 9%, por encima del
	// suelo reducido del 5%.
	input := domain.TransactionCostInput{
		Direction:         domain.TransactionBuy,
		Price:             100000,
		PropertyCondition: domain.PropertySecondhand,
		Jurisdiction:      "cataluna",
		IsLargeFamily:     true,
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AppliedTaxRate != 9.0 {
		t.Errorf("expected 9.0 (general - 1pt), got %.2f", result.AppliedTaxRate)
	}
}

func TestTransactionCosts_BuyNew(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	input := domain.TransactionCostInput{
		Direction:         domain.TransactionBuy,
		Price:             300000,
		PropertyCondition: domain.PropertyNew,
		Jurisdiction:      "cataluna",
		MortgageAmount:    200000,
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if findItem(t, result.Breakdown, "IVA").Amount != 30000 {
		t.Errorf("expected IVA 30000")
	}
	if findItem(t, result.Breakdown, "AJD").Amount != 4500 {
		t.Errorf("expected AJD 4500")
	}
	// Con hipoteca hay tasación.
	findItem(t, result.Breakdown, "Tasación")
}

func TestTransactionCosts_UnknownJurisdictionUsesDefault(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	input := domain.TransactionCostInput{
		Direction:         domain.TransactionBuy,
		Price:             100000,
		PropertyCondition: domain.PropertySecondhand,
		Jurisdiction:      "atlantida",
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AppliedTaxRate != 8.0 {
		t.Errorf("expected default rate 8.0, got %.2f", result.AppliedTaxRate)
	}
}

func TestTransactionCosts_Sell(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	input := domain.TransactionCostInput{
		Direction:             domain.TransactionSell,
		Price:                 250000,
		Jurisdiction:          "cataluna",
		MortgageAmount:        60000,
		YearsOwned:            8,
		OriginalPurchasePrice: 180000,
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Plusvalía: min(250000·0,015·8, 250000·0,05) = 30000 -> cap 12500
	plusvalia := findItem(t, result.Breakdown, "Plusvalía municipal")
	if plusvalia.Amount != 12500 {
		t.Errorf("expected plusvalia capped at 12500, got %.2f", plusvalia.Amount)
	}

	// Ganancia de 70.000 por la escala del ahorro.
	irpf := findItem(t, result.Breakdown, "IRPF ganancia patrimonial")
	expectedTax := 6000*0.19 + 44000*0.21 + 20000*0.23
	if math.Abs(irpf.Amount-expectedTax) > 0.01 {
		t.Errorf("expected IRPF %.2f, got %.2f", expectedTax, irpf.Amount)
	}

	findItem(t, result.Breakdown, "Cancelación de hipoteca")
	findItem(t, result.Breakdown, "Certificado energético")
	findItem(t, result.Breakdown, "Cédula de habitabilidad")

	if result.EffectivePrice != input.Price-result.TotalCosts {
		t.Errorf("expected effective price = price - costs")
	}
}

func TestTransactionCosts_SellNoGainNoIncomeTax(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	input := domain.TransactionCostInput{
		Direction:             domain.TransactionSell,
		Price:                 150000,
		Jurisdiction:          "andalucia",
		YearsOwned:            3,
		OriginalPurchasePrice: 180000,
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, item := range result.Breakdown {
		if item.Name == "IRPF ganancia patrimonial" {
			t.Errorf("no income tax expected when selling at a loss")
		}
	}
}

func TestTransactionCosts_SummaryMatchesBreakdown(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	input := domain.TransactionCostInput{
		Direction:         domain.TransactionBuy,
		Price:             180000,
		PropertyCondition: domain.PropertySecondhand,
		Jurisdiction:      "andalucia",
		MortgageAmount:    120000,
	}

	result, err := service.CalculateTransactionCosts(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	var taxes, fees, services float64
	for _, item := range result.Breakdown {
		sum += item.Amount
		switch item.Category {
		case domain.CostCategoryTax:
			taxes += item.Amount
		case domain.CostCategoryFee:
			fees += item.Amount
		case domain.CostCategoryService:
			services += item.Amount
		}
	}

	if math.Abs(sum-result.TotalCosts) > 0.001 {
		t.Errorf("totalCosts %.2f != breakdown sum %.4f", result.TotalCosts, sum)
	}
	if math.Abs(taxes-result.Summary.Taxes) > 0.001 ||
		math.Abs(fees-result.Summary.Fees) > 0.001 ||
		math.Abs(services-result.Summary.Services) > 0.001 {
		t.Errorf("summary does not match a filter of the breakdown list")
	}
}

func TestTransactionCosts_InvalidInput(t *testing.T) {

	service := NewTransactionCostService(testRegistry())

	cases := []domain.TransactionCostInput{
		{Direction: domain.TransactionBuy, Price: 0, PropertyCondition: domain.PropertySecondhand},
		{Direction: "permuta", Price: 100000},
		{Direction: domain.TransactionBuy, Price: 100000, PropertyCondition: "ruina"},
	}

	for i, input := range cases {
		if _, err := service.CalculateTransactionCosts(input); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func findItem(t *testing.T, items []domain.CostBreakdownItem, name string) domain.CostBreakdownItem {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("breakdown item %q not found", name)
	return domain.CostBreakdownItem{}
}
