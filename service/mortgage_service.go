package service

import (
	"errors"
	"fmt"
	"log"
	"math"

	"inmocalc/domain"
	"inmocalc/repository"
)

type MortgageService struct {
	repo repository.CalculationRepository
}

// NewMortgageService creates a new MortgageService with the given repository.
func NewMortgageService(repo repository.CalculationRepository) *MortgageService {
	return &MortgageService{repo: repo}
}

// CalculateMortgage calcula cuota, cuadro de amortización completo y
// costes de constitución de una hipoteca.
func (s *MortgageService) CalculateMortgage(
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	// Validar entrada
	if input.PropertyPrice <= 0 {
		return domain.MortgageResult{}, errors.New("precio inválido")
	}
	if input.PropertyPrice > MaxPropertyPrice {
		return domain.MortgageResult{}, fmt.Errorf("precio excede el máximo permitido de %.2f", MaxPropertyPrice)
	}
	if input.DownPaymentPercent < 0 || input.DownPaymentPercent >= 100 {
		return domain.MortgageResult{}, errors.New("porcentaje de entrada inválido")
	}
	if input.TermYears < 1 {
		return domain.MortgageResult{}, errors.New("plazo inválido")
	}
	if input.TermYears > MaxTermYears {
		return domain.MortgageResult{}, fmt.Errorf("plazo excede el máximo permitido de %d años", MaxTermYears)
	}

	effectiveRate, err := resolveEffectiveRate(input)
	if err != nil {
		return domain.MortgageResult{}, err
	}
	if effectiveRate < 0 {
		return domain.MortgageResult{}, errors.New("tasa inválida")
	}
	if effectiveRate > MaxInterestRate {
		return domain.MortgageResult{}, fmt.Errorf("tasa excede el máximo permitido de %.2f%%", MaxInterestRate)
	}

	downPayment := input.PropertyPrice * input.DownPaymentPercent / 100
	loanAmount := input.PropertyPrice - downPayment
	ltv := loanAmount / input.PropertyPrice * 100

	months := input.TermYears * 12
	payment := monthlyPayment(loanAmount, effectiveRate, months)

	schedule, err := amortizationSchedule(loanAmount, effectiveRate, months, payment)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	totalPayment := payment * float64(months)
	totalInterest := totalPayment - loanAmount

	initialCosts := input.OpeningFeePercent/100*loanAmount +
		input.AppraisalCost + input.NotaryCost + input.AgencyCost

	// TAE aproximada: coste total anualizado sobre el capital prestado.
	apr := 0.0
	if loanAmount > 0 {
		apr = (math.Pow((totalPayment+initialCosts)/loanAmount, 1/float64(input.TermYears)) - 1) * 100
	}

	result := domain.MortgageResult{
		DownPayment:    roundTo2Decimals(downPayment),
		LoanAmount:     roundTo2Decimals(loanAmount),
		LoanToValue:    roundTo2Decimals(ltv),
		EffectiveRate:  roundTo2Decimals(effectiveRate),
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(totalPayment),
		TotalInterest:  roundTo2Decimals(totalInterest),
		InitialCosts:   roundTo2Decimals(initialCosts),
		AprEstimate:    roundTo2Decimals(apr),
		Schedule:       schedule,
		YearlySummary:  yearlySummaries(schedule),
	}

	// Guardar el resultado (no crítico si falla)
	if s.repo != nil {
		if err := s.repo.Save("hipoteca", input, result); err != nil {
			log.Printf("Warning: failed to save mortgage calculation: %v", err)
		}
	}

	return result, nil
}

// resolveEffectiveRate determina el tipo nominal aplicable según la
// modalidad. Una hipoteca mixta usa el tipo fijo durante todo el plazo:
// el campo FixedYears se acepta pero no parte el cuadro en dos tramos.
func resolveEffectiveRate(input domain.MortgageInput) (float64, error) {
	switch input.LoanType {
	case domain.MortgageFixed, domain.MortgageMixed:
		return input.NominalRate, nil
	case domain.MortgageVariable:
		return input.Euribor + input.Spread, nil
	default:
		return 0, errors.New("modalidad de hipoteca inválida")
	}
}
