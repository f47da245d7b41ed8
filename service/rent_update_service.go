package service

import (
	"errors"

	"inmocalc/domain"
	"inmocalc/rates"
)

type RentUpdateService struct {
	rates *rates.Registry
}

func NewRentUpdateService(registry *rates.Registry) *RentUpdateService {
	return &RentUpdateService{rates: registry}
}

// CalculateRentUpdate calcula la nueva renta legalmente permitida según
// el índice elegido y el tope legal del año de referencia.
func (s *RentUpdateService) CalculateRentUpdate(
	input domain.RentUpdateInput,
) (domain.RentUpdateResult, error) {

	if input.CurrentRent <= 0 {
		return domain.RentUpdateResult{}, errors.New("renta inválida")
	}
	if input.LastUpdateDate.IsZero() {
		return domain.RentUpdateResult{}, errors.New("fecha de última actualización inválida")
	}

	var indexRate float64
	var referenceMonth string
	switch input.IndexType {
	case domain.IndexIPC:
		indexRate, referenceMonth = s.rates.IPC.IndexRateAt(input.LastUpdateDate)
	case domain.IndexIGC:
		indexRate, referenceMonth = s.rates.IGC.IndexRateAt(input.LastUpdateDate)
	case domain.IndexIRAV:
		indexRate, referenceMonth = s.rates.IRAV.IndexRateAt(input.LastUpdateDate)
	case domain.IndexCustom:
		if input.CustomRate < 0 {
			return domain.RentUpdateResult{}, errors.New("tasa personalizada inválida")
		}
		indexRate = input.CustomRate
		referenceMonth = rates.PreviousMonthKey(input.LastUpdateDate)
	default:
		return domain.RentUpdateResult{}, errors.New("índice inválido")
	}

	legalLimit := s.rates.RentCapFor(input.LastUpdateDate.Year())

	// El tope se aplica salvo desactivación explícita.
	applyLimit := input.ApplyLegalLimit == nil || *input.ApplyLegalLimit

	finalRate := indexRate
	limitApplied := false
	saving := 0.0
	if applyLimit && legalLimit != nil && indexRate > *legalLimit {
		finalRate = *legalLimit
		limitApplied = true
		saving = input.CurrentRent * (indexRate - *legalLimit) / 100
	}

	newRent := input.CurrentRent * (1 + finalRate/100)
	increase := newRent - input.CurrentRent

	var roundedLimit *float64
	if legalLimit != nil {
		v := roundTo2Decimals(*legalLimit)
		roundedLimit = &v
	}

	return domain.RentUpdateResult{
		IndexRate:       roundTo2Decimals(indexRate),
		LegalLimit:      roundedLimit,
		FinalRate:       roundTo2Decimals(finalRate),
		IsLimitApplied:  limitApplied,
		SavingFromLimit: roundTo2Decimals(saving),
		NewRent:         roundTo2Decimals(newRent),
		Increase:        roundTo2Decimals(increase),
		IncreasePercent: roundTo2Decimals(finalRate),
		ReferenceMonth:  referenceMonth,
		Notes:           buildAdvisoryNotes(input),
	}, nil
}

// buildAdvisoryNotes genera avisos informativos para el arrendador. No
// son valores calculados: solo recordatorios.
func buildAdvisoryNotes(input domain.RentUpdateInput) []string {
	notes := []string{
		"La actualización debe notificarse al inquilino con al menos 30 días de antelación.",
	}

	// Un contrato posterior a la fecha de referencia cuenta como menor
	// de un año, no como error. La anualidad se compara en fechas de
	// calendario, no en horas: un año sobre bisiesto también cumple.
	firstAnniversary := input.ContractStartDate.AddDate(1, 0, 0)
	if input.ContractStartDate.IsZero() || input.LastUpdateDate.Before(firstAnniversary) {
		notes = append(notes,
			"El contrato tiene menos de un año: la renta solo puede actualizarse al cumplirse cada anualidad.")
	}

	if input.LandlordSize == domain.LandlordLarge {
		notes = append(notes,
			"Como gran tenedor pueden aplicarte límites adicionales en zonas de mercado tensionado.")
	}

	return notes
}
