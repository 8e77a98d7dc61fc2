// Package forecast construye series de demanda diaria y calcula la
// recomendación de reposición (burn rate, stock de seguridad, punto de
// reorden). Todas las funciones son puras sobre snapshots en memoria.
package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
	"github.com/jhoicas/Frescura-engine/pkg/clock"
)

// DefaultWindowDays ventana por defecto de la serie de demanda.
const DefaultWindowDays = 30

// DailyDemand cantidad demandada de un producto en un día calendario (UTC).
type DailyDemand struct {
	Date time.Time
	Qty  decimal.Decimal
}

// BuildDemandSeries agrega las líneas de pedido del producto en una serie
// diaria de longitud fija, cubriendo cada día de [today−windowDays, today]
// inclusive en orden ascendente. Los días sin ventas quedan en cero en lugar
// de omitirse: el suavizado necesita ver los huecos reales.
//
// Los pedidos cancelados no cuentan como demanda; los pedidos fuera de la
// ventana se ignoran. windowDays no positivo usa DefaultWindowDays.
func BuildDemandSeries(productID string, orders []*entity.Order, windowDays int, today time.Time) []DailyDemand {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	end := clock.DayUTC(today)
	start := end.AddDate(0, 0, -windowDays)

	buckets := make(map[time.Time]decimal.Decimal, windowDays+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		buckets[d] = decimal.Zero
	}

	for _, o := range orders {
		if o == nil || o.Status == entity.OrderCancelled {
			continue
		}
		day := clock.DayUTC(o.CreatedAt)
		if day.Before(start) || day.After(end) {
			continue
		}
		qty := o.QuantityOf(productID)
		if qty.IsZero() {
			continue
		}
		buckets[day] = buckets[day].Add(qty)
	}

	series := make([]DailyDemand, 0, windowDays+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series = append(series, DailyDemand{Date: d, Qty: buckets[d]})
	}
	return series
}

// Quantities proyecta la serie a los valores numéricos, en el mismo orden.
func Quantities(series []DailyDemand) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i], _ = p.Qty.Float64()
	}
	return out
}
