// Package rates contiene las tablas estáticas de tipos impositivos y de
// índices históricos que usan las calculadoras. Las tablas son datos de
// solo lectura: el Registry se construye una vez y se inyecta en los
// servicios, de modo que los tests puedan sustituir tablas alternativas
// sin tocar la lógica de cálculo.
package rates

import "time"

// MonthKeyLayout es el formato de las claves de las series mensuales.
const MonthKeyLayout = "2006-01"

// TransferTaxEntry son los tipos de ITP/AJD de una comunidad autónoma.
// Los valores son porcentajes.
type TransferTaxEntry struct {
	General  float64 // ITP general (segunda mano)
	Reducida float64 // vivienda habitual
	Joven    float64 // comprador menor de 35 años
	AJD      float64 // actos jurídicos documentados (obra nueva)

	// Algunas comunidades exigen cédula de habitabilidad en la venta.
	RequiresHabitability bool
}

// IndexSeries es una serie mensual de un índice de precios, con un valor
// por defecto cuando no hay dato publicado para el mes consultado.
type IndexSeries struct {
	Values   map[string]float64 // clave "2006-01" -> porcentaje interanual
	Fallback float64
}

// Registry agrupa todas las tablas. No se muta tras su construcción.
type Registry struct {
	TransferTax        map[string]TransferTaxEntry
	DefaultTransferTax TransferTaxEntry

	IPC  IndexSeries
	IGC  IndexSeries
	IRAV IndexSeries

	// Topes legales de actualización de renta por año natural. Un año
	// sin entrada no tiene tope.
	RentCaps map[int]float64
}

// TransferTaxFor devuelve la entrada de la comunidad indicada. Una clave
// desconocida no es un error del usuario: se resuelve con la entrada por
// defecto documentada.
func (r *Registry) TransferTaxFor(jurisdiction string) TransferTaxEntry {
	if entry, ok := r.TransferTax[jurisdiction]; ok {
		return entry
	}
	return r.DefaultTransferTax
}

// PreviousMonthKey devuelve la clave del mes anterior al de la fecha de
// referencia. Se calcula solo con año y mes: restar un mes con AddDate
// normaliza los días sobrantes hacia delante y un 31 de marzo acabaría
// en el propio marzo.
func PreviousMonthKey(reference time.Time) string {
	first := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0).Format(MonthKeyLayout)
}

// IndexRateAt devuelve el valor de la serie para el mes anterior a la
// fecha de referencia. Si no hay dato para ese mes se usa el valor por
// defecto de la serie, nunca un error.
func (s IndexSeries) IndexRateAt(reference time.Time) (float64, string) {
	key := PreviousMonthKey(reference)
	if rate, ok := s.Values[key]; ok {
		return rate, key
	}
	return s.Fallback, key
}

// RentCapFor devuelve el tope legal del año indicado, o nil si ese año no
// tiene tope.
func (r *Registry) RentCapFor(year int) *float64 {
	if limit, ok := r.RentCaps[year]; ok {
		return &limit
	}
	return nil
}
