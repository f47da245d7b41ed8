package rates

// Tipos de ITP y AJD por comunidad autónoma. Valores orientativos
// vigentes en 2024; una comunidad que no aparezca usa defaultTransferTax.
// Fuente: normativa autonómica de cada comunidad.
var transferTaxTable = map[string]TransferTaxEntry{
	"madrid":             {General: 6.0, Reducida: 4.0, Joven: 4.0, AJD: 0.75},
	"cataluna":           {General: 10.0, Reducida: 5.0, Joven: 5.0, AJD: 1.5, RequiresHabitability: true},
	"andalucia":          {General: 7.0, Reducida: 3.5, Joven: 3.5, AJD: 1.2},
	"valencia":           {General: 10.0, Reducida: 8.0, Joven: 6.0, AJD: 1.5, RequiresHabitability: true},
	"galicia":            {General: 8.0, Reducida: 3.0, Joven: 3.0, AJD: 1.5},
	"pais_vasco":         {General: 7.0, Reducida: 2.5, Joven: 2.5, AJD: 0.0},
	"navarra":            {General: 6.0, Reducida: 5.0, Joven: 5.0, AJD: 0.5, RequiresHabitability: true},
	"castilla_leon":      {General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.5},
	"castilla_la_mancha": {General: 9.0, Reducida: 6.0, Joven: 6.0, AJD: 1.5},
	"aragon":             {General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.5},
	"murcia":             {General: 8.0, Reducida: 3.0, Joven: 3.0, AJD: 1.5, RequiresHabitability: true},
	"baleares":           {General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.2, RequiresHabitability: true},
	"canarias":           {General: 6.5, Reducida: 1.0, Joven: 1.0, AJD: 0.75},
	"asturias":           {General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.2, RequiresHabitability: true},
	"cantabria":          {General: 9.0, Reducida: 5.0, Joven: 5.0, AJD: 1.5, RequiresHabitability: true},
	"extremadura":        {General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.5},
	"la_rioja":           {General: 7.0, Reducida: 5.0, Joven: 3.0, AJD: 1.0, RequiresHabitability: true},
}

var defaultTransferTax = TransferTaxEntry{General: 8.0, Reducida: 4.0, Joven: 4.0, AJD: 1.2}

// IPC interanual (INE). Serie parcial: los meses que falten resuelven al
// valor por defecto de la serie.
var ipcSeries = IndexSeries{
	Fallback: 2.5,
	Values: map[string]float64{
		"2023-01": 5.9, "2023-02": 6.0, "2023-03": 3.3, "2023-04": 4.1,
		"2023-05": 3.2, "2023-06": 1.9, "2023-07": 2.3, "2023-08": 2.6,
		"2023-09": 3.5, "2023-10": 3.5, "2023-11": 3.2, "2023-12": 3.1,
		"2024-01": 3.4, "2024-02": 2.8, "2024-03": 3.2, "2024-04": 3.3,
		"2024-05": 3.6, "2024-06": 3.4, "2024-07": 2.8, "2024-08": 2.3,
		"2024-09": 1.5, "2024-10": 1.8, "2024-11": 2.4, "2024-12": 2.8,
		"2025-01": 3.0, "2025-02": 3.0, "2025-03": 2.3, "2025-04": 2.2,
		"2025-05": 2.0, "2025-06": 2.3, "2025-07": 2.7,
	},
}

// Índice de Garantía de Competitividad. Por definición no supera el 2 %.
var igcSeries = IndexSeries{
	Fallback: 2.0,
	Values: map[string]float64{
		"2023-01": 2.0, "2023-02": 2.0, "2023-03": 2.0, "2023-04": 2.0,
		"2023-05": 2.0, "2023-06": 2.0, "2023-07": 2.0, "2023-08": 2.0,
		"2023-09": 2.0, "2023-10": 2.0, "2023-11": 2.0, "2023-12": 2.0,
		"2024-01": 2.0, "2024-02": 2.0, "2024-03": 2.0, "2024-04": 2.0,
		"2024-05": 2.0, "2024-06": 2.0,
	},
}

// Índice de Referencia de Arrendamientos de Vivienda, publicado desde 2025.
var iravSeries = IndexSeries{
	Fallback: 2.2,
	Values: map[string]float64{
		"2025-01": 2.19, "2025-02": 2.20, "2025-03": 2.08, "2025-04": 2.10,
		"2025-05": 2.03, "2025-06": 2.12, "2025-07": 2.15,
	},
}

// Topes legales de actualización de renta (Ley 12/2023). 2023: 2 %,
// 2024: 3 %. Desde 2025 la referencia pasa a ser el IRAV, sin tope
// adicional en esta tabla.
var rentCaps = map[int]float64{
	2023: 2.0,
	2024: 3.0,
}

// Default devuelve el registro con las tablas incorporadas.
func Default() *Registry {
	return &Registry{
		TransferTax:        transferTaxTable,
		DefaultTransferTax: defaultTransferTax,
		IPC:                ipcSeries,
		IGC:                igcSeries,
		IRAV:               iravSeries,
		RentCaps:           rentCaps,
	}
}
