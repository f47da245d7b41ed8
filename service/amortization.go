package service

import (
	"errors"
	"fmt"
	"math"

	"inmocalc/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales. Todos los campos de
// salida se redondean aquí, en el momento de construir el resultado; los
// cálculos intermedios conservan la precisión completa.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// monthlyPayment calcula la cuota constante del sistema francés.
// Con tasa cero el préstamo se amortiza linealmente.
func monthlyPayment(principal, annualRate float64, months int) float64 {
	if annualRate == 0 {
		return principal / float64(months)
	}
	r := annualRate / 100 / 12
	n := float64(months)
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// amortizationSchedule genera el cuadro de amortización mes a mes para la
// cuota dada. El saldo se trunca en cero para absorber el redondeo del
// último periodo.
func amortizationSchedule(principal, annualRate float64, months int, payment float64) ([]domain.AmortizationRow, error) {
	if principal < 0 {
		return nil, errors.New("capital inválido")
	}
	if months < MinTermMonths {
		return nil, errors.New("plazo inválido")
	}
	if months > MaxTermMonths {
		return nil, fmt.Errorf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}

	r := annualRate / 100 / 12

	rows := make([]domain.AmortizationRow, 0, months)
	balance := principal
	cumulativePrincipal := 0.0
	cumulativeInterest := 0.0

	for month := 1; month <= months; month++ {
		interest := balance * r
		principalPortion := payment - interest
		if principalPortion > balance {
			principalPortion = balance
		}
		balance -= principalPortion
		if balance < 0 {
			balance = 0
		}
		cumulativePrincipal += principalPortion
		cumulativeInterest += interest

		rows = append(rows, domain.AmortizationRow{
			Month:               month,
			Year:                (month-1)/12 + 1,
			Payment:             roundTo2Decimals(principalPortion + interest),
			PrincipalPortion:    roundTo2Decimals(principalPortion),
			InterestPortion:     roundTo2Decimals(interest),
			RemainingBalance:    roundTo2Decimals(balance),
			CumulativePrincipal: roundTo2Decimals(cumulativePrincipal),
			CumulativeInterest:  roundTo2Decimals(cumulativeInterest),
		})
	}

	return rows, nil
}

// yearlySummaries agrupa el cuadro por año, sumando capital e intereses y
// tomando el saldo de la última fila de cada año.
func yearlySummaries(rows []domain.AmortizationRow) []domain.YearlySummary {
	if len(rows) == 0 {
		return nil
	}

	summaries := []domain.YearlySummary{}
	var current domain.YearlySummary
	principal := 0.0
	interest := 0.0

	for i, row := range rows {
		if i == 0 || row.Year != current.Year {
			if i > 0 {
				current.TotalPrincipal = roundTo2Decimals(principal)
				current.TotalInterest = roundTo2Decimals(interest)
				summaries = append(summaries, current)
			}
			current = domain.YearlySummary{Year: row.Year}
			principal = 0
			interest = 0
		}
		principal += row.PrincipalPortion
		interest += row.InterestPortion
		current.RemainingBalance = row.RemainingBalance
	}
	current.TotalPrincipal = roundTo2Decimals(principal)
	current.TotalInterest = roundTo2Decimals(interest)
	summaries = append(summaries, current)

	return summaries
}
