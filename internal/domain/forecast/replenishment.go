package forecast

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// Valores por defecto de los parámetros del forecaster.
const (
	DefaultHorizonDays   = 30
	DefaultLeadTimeDays  = 3
	DefaultServiceFactor = 1.65 // z unilateral ≈ 95% de cobertura
	shortWindowDays      = 14

	// minDemandPerDay piso del burn rate: evita divisiones por cero aguas
	// abajo. Nunca debe ser exactamente 0.
	minDemandPerDay = 0.01
)

// Params parámetros ajustables del forecast de reposición.
type Params struct {
	HorizonDays   int     // ventana larga de demanda (default 30)
	Alpha         float64 // factor de suavizado (default 0.35)
	LeadTimeDays  int     // lead time del proveedor en días (default 3)
	ServiceFactor float64 // factor z de nivel de servicio (default 1.65)
}

func (p Params) withDefaults() Params {
	if p.HorizonDays <= 0 {
		p.HorizonDays = DefaultHorizonDays
	}
	if p.Alpha <= 0 || p.Alpha > 1 {
		p.Alpha = DefaultForecastAlpha
	}
	if p.LeadTimeDays <= 0 {
		p.LeadTimeDays = DefaultLeadTimeDays
	}
	if p.ServiceFactor <= 0 {
		p.ServiceFactor = DefaultServiceFactor
	}
	return p
}

// CoverOutcome resultado del cálculo de días de cobertura.
type CoverOutcome int

const (
	// CoverFinite cobertura finita calculada como onHand / demandPerDay.
	CoverFinite CoverOutcome = iota
	// CoverNoDemand el producto no registró demanda en la ventana; la
	// cobertura no es un número comparable (antes se usaba Infinity, lo que
	// escondía bugs de comparación).
	CoverNoDemand
)

// DaysOfCover días de cobertura del stock actual, con resultado etiquetado en
// lugar de un centinela flotante.
type DaysOfCover struct {
	Outcome CoverOutcome
	Days    float64 // válido solo cuando Outcome == CoverFinite
}

// Record resultado completo del forecast. Expone todos los intermedios para
// que el caller pueda auditar la recomendación, no solo confiar en un número.
type Record struct {
	ProductID      string
	DemandPerDay   float64 // burn rate combinado, nunca menor a 0.01
	Mean14         float64 // promedio de la serie suavizada de 14 días
	Mean30         float64 // promedio de la serie suavizada de la ventana larga
	Sigma          float64 // desviación estándar poblacional de la serie larga suavizada
	SafetyStock    float64
	ReorderPoint   float64
	OnHand         decimal.Decimal
	Cover          DaysOfCover
	RecommendedQty int64 // unidades a pedir; 0 si el stock ya supera el punto de reorden
}

// Forecast calcula la recomendación de reposición del producto a partir del
// historial de pedidos.
//
// Pasos:
//  1. Series de demanda de 14 y HorizonDays días, suavizadas por separado.
//  2. demandPerDay = max(0.01, 0.6·mean14 + 0.4·mean30): mezcla el impulso
//     reciente con la línea base larga.
//  3. safetyStock = z · σ · √leadTime, con σ poblacional de la serie larga suavizada.
//  4. reorderPoint = demandPerDay·leadTime + safetyStock.
//  5. recomendación = max(0, ceil(reorderPoint − onHand)).
//
// Sin historial de pedidos degrada con gracia: demandPerDay = 0.01, σ = 0,
// reorderPoint ≈ safetyStock. Nunca retorna error.
func Forecast(p *entity.Product, orders []*entity.Order, params Params, today time.Time) Record {
	params = params.withDefaults()

	series14 := BuildDemandSeries(p.ID, orders, shortWindowDays, today)
	series30 := BuildDemandSeries(p.ID, orders, params.HorizonDays, today)

	smooth14 := Smooth(Quantities(series14), params.Alpha)
	smooth30 := Smooth(Quantities(series30), params.Alpha)

	mean14 := mean(smooth14)
	mean30 := mean(smooth30)

	demandPerDay := 0.6*mean14 + 0.4*mean30
	if demandPerDay < minDemandPerDay {
		demandPerDay = minDemandPerDay
	}

	sigma := math.Sqrt(populationVariance(smooth30))
	lead := float64(params.LeadTimeDays)
	safetyStock := params.ServiceFactor * sigma * math.Sqrt(lead)
	reorderPoint := demandPerDay*lead + safetyStock

	onHand := p.TotalStock()
	onHandF, _ := onHand.Float64()

	cover := DaysOfCover{Outcome: CoverNoDemand}
	if hasDemand(series30) {
		cover = DaysOfCover{Outcome: CoverFinite, Days: onHandF / demandPerDay}
	}

	recommended := int64(math.Ceil(reorderPoint - onHandF))
	if recommended < 0 {
		recommended = 0
	}

	return Record{
		ProductID:      p.ID,
		DemandPerDay:   demandPerDay,
		Mean14:         mean14,
		Mean30:         mean30,
		Sigma:          sigma,
		SafetyStock:    safetyStock,
		ReorderPoint:   reorderPoint,
		OnHand:         onHand,
		Cover:          cover,
		RecommendedQty: recommended,
	}
}

func hasDemand(series []DailyDemand) bool {
	for _, p := range series {
		if p.Qty.IsPositive() {
			return true
		}
	}
	return false
}
