package service

import (
	"errors"
	"fmt"
	"math"

	"inmocalc/domain"
	"inmocalc/rates"
)

type TransactionCostService struct {
	rates *rates.Registry
}

func NewTransactionCostService(registry *rates.Registry) *TransactionCostService {
	return &TransactionCostService{rates: registry}
}

// CalculateTransactionCosts estima todos los gastos únicos de comprar o
// vender un inmueble en la comunidad indicada. Todos los importes son
// estimaciones orientativas, no asesoramiento fiscal.
func (s *TransactionCostService) CalculateTransactionCosts(
	input domain.TransactionCostInput,
) (domain.TransactionCostResult, error) {

	if input.Price <= 0 {
		return domain.TransactionCostResult{}, errors.New("precio inválido")
	}
	if input.Price > MaxPropertyPrice {
		return domain.TransactionCostResult{}, fmt.Errorf("precio excede el máximo permitido de %.2f", MaxPropertyPrice)
	}

	switch input.Direction {
	case domain.TransactionBuy:
		return s.calculateBuyCosts(input)
	case domain.TransactionSell:
		return s.calculateSellCosts(input)
	default:
		return domain.TransactionCostResult{}, errors.New("dirección de operación inválida")
	}
}

func (s *TransactionCostService) calculateBuyCosts(
	input domain.TransactionCostInput,
) (domain.TransactionCostResult, error) {

	entry := s.rates.TransferTaxFor(input.Jurisdiction)

	var items []domain.CostBreakdownItem
	var bonifications []string
	var appliedRate float64

	switch input.PropertyCondition {
	case domain.PropertyNew:
		appliedRate = NewBuildVATPercent
		items = append(items, domain.CostBreakdownItem{
			Name:        "IVA",
			Amount:      input.Price * NewBuildVATPercent / 100,
			Description: fmt.Sprintf("IVA de obra nueva al %.0f%%", NewBuildVATPercent),
			Category:    domain.CostCategoryTax,
		})
		items = append(items, domain.CostBreakdownItem{
			Name:        "AJD",
			Amount:      input.Price * entry.AJD / 100,
			Description: fmt.Sprintf("Actos Jurídicos Documentados al %.2f%%", entry.AJD),
			Category:    domain.CostCategoryTax,
		})
	case domain.PropertySecondhand:
		rate, applied := resolveTransferTaxRate(input, entry)
		appliedRate = rate
		bonifications = applied
		items = append(items, domain.CostBreakdownItem{
			Name:        "ITP",
			Amount:      input.Price * rate / 100,
			Description: fmt.Sprintf("Impuesto de Transmisiones Patrimoniales al %.2f%%", rate),
			Category:    domain.CostCategoryTax,
		})
	default:
		return domain.TransactionCostResult{}, errors.New("estado del inmueble inválido")
	}

	notary := notaryFeeFor(input.Price)
	items = append(items,
		domain.CostBreakdownItem{
			Name:        "Notaría",
			Amount:      notary,
			Description: "Honorarios notariales estimados por tramo de precio",
			IsEstimate:  true,
			Category:    domain.CostCategoryFee,
		},
		domain.CostBreakdownItem{
			Name:        "Registro de la Propiedad",
			Amount:      notary * registryFeeFactor,
			Description: "Inscripción registral, estimada sobre la notaría",
			IsEstimate:  true,
			Category:    domain.CostCategoryFee,
		},
		domain.CostBreakdownItem{
			Name:        "Gestoría",
			Amount:      GestoriaFee,
			Description: "Tramitación de escrituras e impuestos",
			IsEstimate:  true,
			Category:    domain.CostCategoryService,
		},
	)

	if input.MortgageAmount > 0 {
		items = append(items, domain.CostBreakdownItem{
			Name:        "Tasación",
			Amount:      AppraisalFee,
			Description: "Tasación oficial requerida por la entidad financiera",
			IsEstimate:  true,
			Category:    domain.CostCategoryService,
		})
	}

	result := buildCostResult(items, input.Price, true)
	result.AppliedTaxRate = roundTo2Decimals(appliedRate)
	result.BonificationsApplied = bonifications
	return result, nil
}

// resolveTransferTaxRate aplica la mejor bonificación disponible una sola
// vez (nunca se acumulan descuentos) y devuelve, además, todas las
// condiciones que se cumplieron.
func resolveTransferTaxRate(
	input domain.TransactionCostInput,
	entry rates.TransferTaxEntry,
) (float64, []string) {

	rate := entry.General
	var applied []string

	// Familia numerosa y discapacidad: un punto menos, con suelo en el
	// tipo reducido de la comunidad.
	pointReduced := math.Max(entry.General-1, entry.Reducida)

	candidates := []struct {
		Condition bool
		Rate      float64
		Label     string
	}{
		{input.IsFirstHome, entry.Reducida, "vivienda habitual (tipo reducido)"},
		{input.BuyerAge > 0 && input.BuyerAge < 35, entry.Joven, "comprador menor de 35 años"},
		{input.IsLargeFamily, pointReduced, "familia numerosa"},
		{input.HasDisability, pointReduced, "discapacidad reconocida"},
	}

	for _, c := range candidates {
		if !c.Condition {
			continue
		}
		applied = append(applied, c.Label)
		if c.Rate < rate {
			rate = c.Rate
		}
	}

	return rate, applied
}

func (s *TransactionCostService) calculateSellCosts(
	input domain.TransactionCostInput,
) (domain.TransactionCostResult, error) {

	entry := s.rates.TransferTaxFor(input.Jurisdiction)

	var items []domain.CostBreakdownItem

	// Plusvalía municipal: depende del municipio y del valor catastral,
	// así que solo cabe una estimación acotada.
	years := input.YearsOwned
	if years > PlusvaliaMaxYears {
		years = PlusvaliaMaxYears
	}
	if years < 0 {
		years = 0
	}
	plusvalia := math.Min(
		input.Price*PlusvaliaRatePerYear*float64(years),
		input.Price*PlusvaliaCapFraction,
	)
	items = append(items, domain.CostBreakdownItem{
		Name:        "Plusvalía municipal",
		Amount:      plusvalia,
		Description: "Estimación; el importe real depende del municipio y del valor catastral",
		IsEstimate:  true,
		Category:    domain.CostCategoryTax,
	})

	if input.OriginalPurchasePrice > 0 && input.Price > input.OriginalPurchasePrice {
		gain := input.Price - input.OriginalPurchasePrice
		items = append(items, domain.CostBreakdownItem{
			Name:        "IRPF ganancia patrimonial",
			Amount:      capitalGainsTax(gain),
			Description: "Escala del ahorro aplicada a la ganancia de la venta",
			IsEstimate:  true,
			Category:    domain.CostCategoryTax,
		})
	}

	if input.MortgageAmount > 0 {
		items = append(items, domain.CostBreakdownItem{
			Name:        "Cancelación de hipoteca",
			Amount:      MortgageCancelFee,
			Description: "Notaría y registro de la cancelación registral",
			IsEstimate:  true,
			Category:    domain.CostCategoryFee,
		})
	}

	items = append(items, domain.CostBreakdownItem{
		Name:        "Certificado energético",
		Amount:      EnergyCertificateFee,
		Description: "Obligatorio para anunciar y vender la vivienda",
		IsEstimate:  true,
		Category:    domain.CostCategoryService,
	})

	if entry.RequiresHabitability {
		items = append(items, domain.CostBreakdownItem{
			Name:        "Cédula de habitabilidad",
			Amount:      HabitabilityCertFee,
			Description: "Exigida en esta comunidad para la venta",
			IsEstimate:  true,
			Category:    domain.CostCategoryService,
		})
	}

	return buildCostResult(items, input.Price, false), nil
}

// buildCostResult redondea cada concepto y deriva total y subtotales por
// categoría filtrando la propia lista, nunca con acumuladores aparte.
func buildCostResult(items []domain.CostBreakdownItem, price float64, isBuy bool) domain.TransactionCostResult {
	for i := range items {
		items[i].Amount = roundTo2Decimals(items[i].Amount)
	}

	var summary domain.CostSummary
	total := 0.0
	for _, item := range items {
		total += item.Amount
		switch item.Category {
		case domain.CostCategoryTax:
			summary.Taxes += item.Amount
		case domain.CostCategoryFee:
			summary.Fees += item.Amount
		case domain.CostCategoryService:
			summary.Services += item.Amount
		}
	}
	summary.Taxes = roundTo2Decimals(summary.Taxes)
	summary.Fees = roundTo2Decimals(summary.Fees)
	summary.Services = roundTo2Decimals(summary.Services)

	effectivePrice := price - total
	if isBuy {
		effectivePrice = price + total
	}

	return domain.TransactionCostResult{
		Breakdown:      items,
		Summary:        summary,
		TotalCosts:     roundTo2Decimals(total),
		EffectivePrice: roundTo2Decimals(effectivePrice),
	}
}

// notaryFeeFor devuelve el honorario notarial estimado por tramo de precio.
func notaryFeeFor(price float64) float64 {
	for _, tier := range notaryFeeTiers {
		if price < tier.UpTo {
			return tier.Fee
		}
	}
	return notaryFeeTop
}
