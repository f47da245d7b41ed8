package service

import (
	"errors"
	"fmt"

	"inmocalc/domain"
)

// Variaciones por defecto del análisis de sensibilidad, en porcentaje
// sobre el precio de venta.
var DefaultSensitivityVariations = []float64{-20, -15, -10, -5, 0, 5, 10, 15, 20}

type FlipService struct{}

func NewFlipService() *FlipService {
	return &FlipService{}
}

// CalculateFlip calcula la rentabilidad de una operación de compra,
// reforma y venta.
func (s *FlipService) CalculateFlip(
	input domain.FlipInput,
) (domain.FlipResult, error) {

	if input.PurchasePrice < 0 || input.RenovationBudget < 0 {
		return domain.FlipResult{}, errors.New("importe inválido")
	}
	if input.SellingPrice < 0 {
		return domain.FlipResult{}, errors.New("precio de venta inválido")
	}
	if input.ContingencyPercent < 0 {
		return domain.FlipResult{}, errors.New("porcentaje de imprevistos inválido")
	}
	if input.MonthsToRenovate < 0 || input.MonthsToRenovate > MaxRenovationMonths {
		return domain.FlipResult{}, fmt.Errorf("meses de reforma fuera de rango (0-%d)", MaxRenovationMonths)
	}
	if input.MonthsToSell < 0 || input.MonthsToSell > MaxSellingMonths {
		return domain.FlipResult{}, fmt.Errorf("meses de venta fuera de rango (0-%d)", MaxSellingMonths)
	}

	pc := input.PurchaseCosts
	totalPurchase := input.PurchasePrice + pc.TransferTax + pc.Notary +
		pc.Registry + pc.Agency + pc.Other

	renovation := input.RenovationBudget * (1 + input.ContingencyPercent/100)

	totalMonths := input.MonthsToRenovate + input.MonthsToSell
	hc := input.HoldingCosts
	monthlyHolding := hc.Community + hc.Utilities + hc.Insurance + hc.PropertyTax
	holdingTotal := monthlyHolding * float64(totalMonths)

	sc := input.SellingCosts
	sellingCostsTotal := input.SellingPrice*sc.AgencyFeePercent/100 + sc.Staging + sc.Marketing

	financingCosts := 0.0
	loanAmount := 0.0
	if f := input.Financing; f != nil {
		if f.LoanAmount < 0 {
			return domain.FlipResult{}, errors.New("importe de préstamo inválido")
		}
		if f.AnnualRate < 0 || f.AnnualRate > MaxInterestRate {
			return domain.FlipResult{}, errors.New("tasa inválida")
		}
		loanAmount = f.LoanAmount
		monthlyInterest := f.LoanAmount * f.AnnualRate / 100 / 12
		financingCosts = monthlyInterest*float64(totalMonths) + f.OpeningCost + f.CancellationCost
	}

	totalCosts := totalPurchase + renovation + holdingTotal +
		sellingCostsTotal + sc.Plusvalia + financingCosts
	cashRequired := totalCosts - loanAmount

	// Beneficio bruto simplificado: ignora gastos accesorios a propósito,
	// a diferencia del neto.
	grossProfit := input.SellingPrice - input.PurchasePrice - renovation
	netProfit := input.SellingPrice - totalCosts

	estimatedTax := 0.0
	if netProfit > 0 {
		estimatedTax = capitalGainsTax(netProfit)
	}
	netProfitAfterTax := netProfit - estimatedTax

	roi := 0.0
	if totalCosts > 0 {
		roi = netProfit / totalCosts * 100
	}
	roiOnCash := 0.0
	if cashRequired > 0 {
		roiOnCash = netProfit / cashRequired * 100
	}
	annualizedRoi := 0.0
	if totalMonths > 0 {
		annualizedRoi = roi / float64(totalMonths) * 12
	}
	profitMargin := 0.0
	safetyMargin := 0.0
	if input.SellingPrice > 0 {
		profitMargin = netProfit / input.SellingPrice * 100
		safetyMargin = (input.SellingPrice - totalCosts) / input.SellingPrice * 100
	}

	return domain.FlipResult{
		TotalPurchase:             roundTo2Decimals(totalPurchase),
		RenovationWithContingency: roundTo2Decimals(renovation),
		TotalMonths:               totalMonths,
		MonthlyHoldingCost:        roundTo2Decimals(monthlyHolding),
		HoldingCostsTotal:         roundTo2Decimals(holdingTotal),
		SellingCostsTotal:         roundTo2Decimals(sellingCostsTotal),
		FinancingCosts:            roundTo2Decimals(financingCosts),
		TotalCosts:                roundTo2Decimals(totalCosts),
		CashRequired:              roundTo2Decimals(cashRequired),
		GrossProfit:               roundTo2Decimals(grossProfit),
		NetProfit:                 roundTo2Decimals(netProfit),
		EstimatedTax:              roundTo2Decimals(estimatedTax),
		NetProfitAfterTax:         roundTo2Decimals(netProfitAfterTax),
		Roi:                       roundTo2Decimals(roi),
		RoiOnCash:                 roundTo2Decimals(roiOnCash),
		AnnualizedRoi:             roundTo2Decimals(annualizedRoi),
		ProfitMargin:              roundTo2Decimals(profitMargin),
		BreakEvenPrice:            roundTo2Decimals(totalCosts),
		SafetyMargin:              roundTo2Decimals(safetyMargin),
	}, nil
}

// SensitivityAnalysis reejecuta el cálculo completo una vez por cada
// variación del precio de venta. Nada de atajos incrementales: cada punto
// sale del mismo camino que el cálculo principal, así la variación 0%
// reproduce el resultado principal exactamente.
func (s *FlipService) SensitivityAnalysis(
	input domain.FlipInput,
	variations []float64,
) ([]domain.SensitivityPoint, error) {

	if len(variations) == 0 {
		variations = DefaultSensitivityVariations
	}

	points := make([]domain.SensitivityPoint, 0, len(variations))
	for _, variation := range variations {
		scenario := input
		if input.Financing != nil {
			financing := *input.Financing
			scenario.Financing = &financing
		}
		scenario.SellingPrice = input.SellingPrice * (1 + variation/100)

		result, err := s.CalculateFlip(scenario)
		if err != nil {
			return nil, err
		}

		points = append(points, domain.SensitivityPoint{
			Variation:    variation,
			SellingPrice: roundTo2Decimals(scenario.SellingPrice),
			NetProfit:    result.NetProfit,
			Roi:          result.Roi,
		})
	}

	return points, nil
}
