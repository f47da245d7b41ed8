package service

import (
	"errors"
	"math"
	"testing"

	"inmocalc/domain"
)

type MockCalculationRepository struct {
	SaveCalled bool
	SavedKind  string
	ForceError bool
}

func (m *MockCalculationRepository) Save(kind string, input any, result any) error {
	m.SaveCalled = true
	m.SavedKind = kind
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func TestCalculateMortgage_Fixed(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewMortgageService(mockRepo)

	input := domain.MortgageInput{
		PropertyPrice:      125000,
		DownPaymentPercent: 20,
		TermYears:          25,
		LoanType:           domain.MortgageFixed,
		NominalRate:        3,
	}

	result, err := service.CalculateMortgage(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.LoanAmount != 100000 {
		t.Errorf("expected loan 100000, got %.2f", result.LoanAmount)
	}
	if result.LoanToValue != 80 {
		t.Errorf("expected LTV 80, got %.2f", result.LoanToValue)
	}
	if math.Abs(result.MonthlyPayment-474.21) > 0.05 {
		t.Errorf("expected payment ~474.21, got %.2f", result.MonthlyPayment)
	}
	if len(result.Schedule) != 300 {
		t.Errorf("expected 300 schedule rows, got %d", len(result.Schedule))
	}
	if len(result.YearlySummary) != 25 {
		t.Errorf("expected 25 yearly summaries, got %d", len(result.YearlySummary))
	}
	if math.Abs(result.TotalPayment-(result.LoanAmount+result.TotalInterest)) > 0.02 {
		t.Errorf("totalPayment %.2f != loan %.2f + interest %.2f",
			result.TotalPayment, result.LoanAmount, result.TotalInterest)
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
	if mockRepo.SavedKind != "hipoteca" {
		t.Errorf("expected kind hipoteca, got %q", mockRepo.SavedKind)
	}
}

func TestCalculateMortgage_ZeroRate(t *testing.T) {

	service := NewMortgageService(&MockCalculationRepository{})

	input := domain.MortgageInput{
		PropertyPrice:      1200,
		DownPaymentPercent: 0,
		TermYears:          1,
		LoanType:           domain.MortgageFixed,
		NominalRate:        0,
	}

	result, err := service.CalculateMortgage(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != 100.00 {
		t.Errorf("expected payment 100.00, got %.2f", result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %.2f", result.TotalInterest)
	}
	if len(result.Schedule) != 12 {
		t.Errorf("expected 12 rows for 1 year, got %d", len(result.Schedule))
	}
}

func TestCalculateMortgage_VariableUsesEuriborPlusSpread(t *testing.T) {

	service := NewMortgageService(&MockCalculationRepository{})

	input := domain.MortgageInput{
		PropertyPrice:      200000,
		DownPaymentPercent: 20,
		TermYears:          20,
		LoanType:           domain.MortgageVariable,
		Euribor:            2.5,
		Spread:             0.9,
	}

	result, err := service.CalculateMortgage(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EffectiveRate != 3.4 {
		t.Errorf("expected effective rate 3.40, got %.2f", result.EffectiveRate)
	}
}

func TestCalculateMortgage_MixedUsesSingleRate(t *testing.T) {

	service := NewMortgageService(&MockCalculationRepository{})

	withFixedYears := domain.MortgageInput{
		PropertyPrice:      150000,
		DownPaymentPercent: 10,
		TermYears:          30,
		LoanType:           domain.MortgageMixed,
		NominalRate:        2.8,
		FixedYears:         10,
	}
	withoutFixedYears := withFixedYears
	withoutFixedYears.FixedYears = 0

	a, err := service.CalculateMortgage(withFixedYears)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := service.CalculateMortgage(withoutFixedYears)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// La mixta usa hoy el tipo fijo para todo el plazo: FixedYears no
	// cambia el resultado.
	if a.MonthlyPayment != b.MonthlyPayment || a.TotalInterest != b.TotalInterest {
		t.Errorf("FixedYears should not affect the schedule")
	}
}

func TestCalculateMortgage_InitialCostsAndApr(t *testing.T) {

	service := NewMortgageService(&MockCalculationRepository{})

	input := domain.MortgageInput{
		PropertyPrice:      100000,
		DownPaymentPercent: 0,
		TermYears:          10,
		LoanType:           domain.MortgageFixed,
		NominalRate:        3,
		OpeningFeePercent:  1,
		AppraisalCost:      350,
		NotaryCost:         600,
		AgencyCost:         400,
	}

	result, err := service.CalculateMortgage(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedCosts := 1000.0 + 350 + 600 + 400
	if result.InitialCosts != expectedCosts {
		t.Errorf("expected initial costs %.2f, got %.2f", expectedCosts, result.InitialCosts)
	}

	// Los costes iniciales encarecen la TAE estimada.
	free := input
	free.OpeningFeePercent = 0
	free.AppraisalCost = 0
	free.NotaryCost = 0
	free.AgencyCost = 0
	baseline, err := service.CalculateMortgage(free)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AprEstimate <= baseline.AprEstimate {
		t.Errorf("expected APR with costs %.2f > APR without costs %.2f",
			result.AprEstimate, baseline.AprEstimate)
	}
}

func TestCalculateMortgage_InvalidInput(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewMortgageService(mockRepo)

	cases := []domain.MortgageInput{
		{PropertyPrice: 0, DownPaymentPercent: 20, TermYears: 20, LoanType: domain.MortgageFixed, NominalRate: 3},
		{PropertyPrice: 100000, DownPaymentPercent: 100, TermYears: 20, LoanType: domain.MortgageFixed, NominalRate: 3},
		{PropertyPrice: 100000, DownPaymentPercent: 20, TermYears: 0, LoanType: domain.MortgageFixed, NominalRate: 3},
		{PropertyPrice: 100000, DownPaymentPercent: 20, TermYears: 41, LoanType: domain.MortgageFixed, NominalRate: 3},
		{PropertyPrice: 100000, DownPaymentPercent: 20, TermYears: 20, LoanType: "globo", NominalRate: 3},
		{PropertyPrice: 100000, DownPaymentPercent: 20, TermYears: 20, LoanType: domain.MortgageFixed, NominalRate: -1},
	}

	for i, input := range cases {
		if _, err := service.CalculateMortgage(input); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called on invalid input")
	}
}
