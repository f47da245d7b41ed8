package service

import "math"

// taxBracket es un tramo de la escala: tipo aplicable hasta el límite
// superior indicado.
type taxBracket struct {
	UpperBound float64 // math.Inf(1) en el último tramo
	Rate       float64 // porcentaje
}

// Escala del ahorro del IRPF aplicable a ganancias patrimoniales.
var capitalGainsBrackets = []taxBracket{
	{6_000, 19},
	{50_000, 21},
	{200_000, 23},
	{math.Inf(1), 26},
}

// progressiveTax aplica una escala por tramos marginales: cada tipo grava
// solo la porción de la ganancia que cae dentro de su tramo. Una ganancia
// nula o negativa no tributa (no se modelan devoluciones).
func progressiveTax(gain float64, brackets []taxBracket) float64 {
	if gain <= 0 {
		return 0
	}

	tax := 0.0
	previousBound := 0.0
	for _, bracket := range brackets {
		taxable := math.Min(gain, bracket.UpperBound) - previousBound
		if taxable <= 0 {
			break
		}
		tax += taxable * bracket.Rate / 100
		previousBound = bracket.UpperBound
	}
	return tax
}

// capitalGainsTax es la escala del ahorro aplicada a una ganancia.
func capitalGainsTax(gain float64) float64 {
	return progressiveTax(gain, capitalGainsBrackets)
}
