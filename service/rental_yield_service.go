package service

import (
	"errors"
	"fmt"

	"inmocalc/domain"
)

type RentalYieldService struct{}

func NewRentalYieldService() *RentalYieldService {
	return &RentalYieldService{}
}

// CalculateRentalYield calcula la rentabilidad de un alquiler en compra:
// rentabilidad bruta y neta, cash-on-cash, cap rate y plazo de
// recuperación de la inversión.
func (s *RentalYieldService) CalculateRentalYield(
	input domain.RentalYieldInput,
) (domain.RentalYieldResult, error) {

	// Validaciones. Los escenarios degenerados (inversión cero, cashflow
	// negativo) no son errores: producen ratios 0 o recuperación sin
	// fecha, porque son escenarios que un usuario explora a propósito.
	if input.PurchasePrice < 0 || input.RenovationCost < 0 || input.ClosingCosts < 0 {
		return domain.RentalYieldResult{}, errors.New("importe inválido")
	}
	if input.MonthlyRent < 0 {
		return domain.RentalYieldResult{}, errors.New("renta inválida")
	}
	if input.Expenses.VacancyRatePercent < 0 || input.Expenses.VacancyRatePercent > 100 {
		return domain.RentalYieldResult{}, errors.New("tasa de desocupación inválida")
	}

	totalInvestment := input.PurchasePrice + input.RenovationCost + input.ClosingCosts

	annualRent := input.MonthlyRent * 12
	effectiveRent := annualRent * (1 - input.Expenses.VacancyRatePercent/100)

	maintenance := effectiveRent * input.Expenses.MaintenanceReservePercent / 100
	management := effectiveRent * input.Expenses.ManagementFeePercent / 100
	communityAnnual := input.Expenses.MonthlyCommunityFee * 12
	totalExpenses := input.Expenses.PropertyTax + communityAnnual +
		input.Expenses.AnnualInsurance + maintenance + management

	noi := effectiveRent - totalExpenses

	monthlyMortgage := 0.0
	cashInvested := totalInvestment
	if f := input.Financing; f != nil {
		if f.LoanAmount < 0 {
			return domain.RentalYieldResult{}, errors.New("importe de préstamo inválido")
		}
		if f.AnnualRate < 0 || f.AnnualRate > MaxInterestRate {
			return domain.RentalYieldResult{}, errors.New("tasa inválida")
		}
		if f.TermYears < 1 {
			return domain.RentalYieldResult{}, errors.New("plazo inválido")
		}
		if f.TermYears > MaxTermYears {
			return domain.RentalYieldResult{}, fmt.Errorf("plazo excede el máximo permitido de %d años", MaxTermYears)
		}
		monthlyMortgage = monthlyPayment(f.LoanAmount, f.AnnualRate, f.TermYears*12)
		cashInvested = totalInvestment - f.LoanAmount
	}
	annualMortgage := monthlyMortgage * 12
	annualCashflow := noi - annualMortgage

	grossYield := 0.0
	netYield := 0.0
	if totalInvestment > 0 {
		grossYield = annualRent / totalInvestment * 100
		netYield = noi / totalInvestment * 100
	}
	capRate := 0.0
	if input.PurchasePrice > 0 {
		capRate = noi / input.PurchasePrice * 100
	}
	cashOnCash := 0.0
	if cashInvested > 0 {
		cashOnCash = annualCashflow / cashInvested * 100
	}

	// Sin cashflow positivo la inversión nunca se recupera: se deja el
	// campo sin valor en lugar de fallar.
	var paybackYears *float64
	if annualCashflow > 0 {
		payback := roundTo2Decimals(cashInvested / annualCashflow)
		paybackYears = &payback
	}

	breakdown := domain.RentalExpenseBreakdown{
		PropertyTax: roundTo2Decimals(input.Expenses.PropertyTax),
		Community:   roundTo2Decimals(communityAnnual),
		Insurance:   roundTo2Decimals(input.Expenses.AnnualInsurance),
		Maintenance: roundTo2Decimals(maintenance),
		Management:  roundTo2Decimals(management),
	}
	// El total reportado es la suma de las partidas reportadas, para que
	// el desglose siempre cuadre con el total.
	breakdown.Total = roundTo2Decimals(breakdown.PropertyTax + breakdown.Community +
		breakdown.Insurance + breakdown.Maintenance + breakdown.Management)

	return domain.RentalYieldResult{
		TotalInvestment:     roundTo2Decimals(totalInvestment),
		EffectiveAnnualRent: roundTo2Decimals(effectiveRent),
		NetOperatingIncome:  roundTo2Decimals(noi),
		AnnualMortgage:      roundTo2Decimals(annualMortgage),
		MonthlyMortgage:     roundTo2Decimals(monthlyMortgage),
		AnnualCashflow:      roundTo2Decimals(annualCashflow),
		CashInvested:        roundTo2Decimals(cashInvested),
		GrossYield:          roundTo2Decimals(grossYield),
		NetYield:            roundTo2Decimals(netYield),
		CashOnCash:          roundTo2Decimals(cashOnCash),
		CapRate:             roundTo2Decimals(capRate),
		PaybackYears:        paybackYears,
		ExpenseBreakdown:    breakdown,
	}, nil
}
