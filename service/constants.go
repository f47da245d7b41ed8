package service

const (
	MaxPropertyPrice = 1_000_000_000.0 // 1.000 millones
	MaxInterestRate  = 1000.0          // 1000% anual
	MaxTermYears     = 40
	MaxTermMonths    = MaxTermYears * 12
	MinTermMonths    = 1

	MaxRenovationMonths = 120
	MaxSellingMonths    = 120

	// IVA de obra nueva para vivienda.
	NewBuildVATPercent = 10.0

	// Honorarios fijos estimados de una compraventa.
	GestoriaFee          = 400.0
	AppraisalFee         = 350.0
	EnergyCertificateFee = 150.0
	HabitabilityCertFee  = 120.0
	MortgageCancelFee    = 650.0

	// Estimación de plusvalía municipal en venta.
	PlusvaliaRatePerYear = 0.015
	PlusvaliaMaxYears    = 20
	PlusvaliaCapFraction = 0.05
)

// Tramos de honorarios notariales estimados, por precio de compraventa.
var notaryFeeTiers = []struct {
	UpTo float64
	Fee  float64
}{
	{100_000, 600},
	{300_000, 850},
	{600_000, 1000},
}

// Honorario notarial por encima del último tramo.
const notaryFeeTop = 1200.0

// El registro de la propiedad se estima como fracción de la notaría.
const registryFeeFactor = 0.60
