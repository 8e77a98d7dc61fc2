package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
	"github.com/jhoicas/Frescura-engine/internal/domain/pricing"
)

const (
	// DefaultTopRated número de productos en el widget de mejor calificados.
	DefaultTopRated = 5

	// expiryWarnRatio fracción de la vida útil a partir de la cual una
	// variante se marca "por vencer".
	expiryWarnRatio = 0.75
)

// RatedProduct producto con su rating promedio de reseñas aprobadas.
type RatedProduct struct {
	ProductID string
	Name      string
	Rating    decimal.Decimal
	Reviews   int
}

// Snapshot KPIs del dashboard en un solo fold de lectura sobre el catálogo y
// los pedidos. Sin dependencia de orden entre productos: puede calcularse en
// cualquier orden o por bloques en paralelo.
type Snapshot struct {
	TotalProducts int
	TotalOrders   int

	OrdersByStatus map[entity.OrderStatus]int

	// Realizados: solo pedidos entregados, a precios/costos congelados.
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal

	AvgRating decimal.Decimal // promedio global de reseñas aprobadas

	LowStockVariants     int // stock ≤ umbral mínimo efectivo
	ExpiringSoonVariants int // edad ≥ 75% de la vida útil declarada
	ActiveDiscounts      int // productos con descuento vigente

	TopRated []RatedProduct

	// Valorización del stock actual y escenario de venta total a precio vigente.
	StockValuation   decimal.Decimal // Σ costo × stock
	PotentialRevenue decimal.Decimal // Σ precio efectivo × stock
	PotentialProfit  decimal.Decimal
}

// ComputeKPIs arma el snapshot del dashboard.
//
// Los pedidos se agregan siempre con los valores congelados de la línea;
// los productos archivados conservan su historial de ventas pero quedan fuera
// de los conteos de stock (bajo mínimo, por vencer, valorización). topN no
// positivo usa DefaultTopRated.
func ComputeKPIs(products []*entity.Product, orders []*entity.Order, topN int, now time.Time) Snapshot {
	if topN <= 0 {
		topN = DefaultTopRated
	}

	snap := Snapshot{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[entity.OrderStatus]int, 3),
	}

	// ── Pedidos: conteos por estado e ingresos realizados ──
	revenue, cost := decimal.Zero, decimal.Zero
	for _, o := range orders {
		if o == nil {
			continue
		}
		snap.OrdersByStatus[o.Status]++
		if o.Status != entity.OrderDelivered {
			continue
		}
		for _, it := range o.Items {
			revenue = revenue.Add(it.LineRevenue())
			cost = cost.Add(it.LineCost())
		}
	}
	snap.Revenue = revenue.Round(2)
	snap.Cost = cost.Round(2)
	snap.Profit = revenue.Sub(cost).Round(2)

	// ── Productos: reseñas, stock y descuentos ──
	ratingSum, ratingCount := 0, 0
	valuation, potential := decimal.Zero, decimal.Zero
	var rated []RatedProduct

	for _, p := range products {
		if p == nil {
			continue
		}

		sum, count := 0, 0
		for _, r := range p.Reviews {
			if r.Approved {
				sum += r.Rating
				count++
			}
		}
		ratingSum += sum
		ratingCount += count
		if count > 0 {
			avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count))).Round(2)
			rated = append(rated, RatedProduct{
				ProductID: p.ID,
				Name:      p.Name,
				Rating:    avg,
				Reviews:   count,
			})
		}

		if p.Discount.ActiveAt(now) {
			snap.ActiveDiscounts++
		}

		if p.Archived {
			continue
		}
		for i := range p.Variants {
			v := &p.Variants[i]
			if v.Stock.LessThanOrEqual(p.EffectiveMinStock(v)) {
				snap.LowStockVariants++
			}
			if expiringSoon(p, v, now) {
				snap.ExpiringSoonVariants++
			}
			valuation = valuation.Add(p.EffectiveCost(v).Mul(v.Stock))
			potential = potential.Add(pricing.ResolvePrice(p, v, now).Mul(v.Stock))
		}
	}

	if ratingCount > 0 {
		snap.AvgRating = decimal.NewFromInt(int64(ratingSum)).
			Div(decimal.NewFromInt(int64(ratingCount))).Round(2)
	}

	sort.SliceStable(rated, func(i, j int) bool {
		if !rated[i].Rating.Equal(rated[j].Rating) {
			return rated[i].Rating.GreaterThan(rated[j].Rating)
		}
		return rated[i].ProductID < rated[j].ProductID
	})
	if len(rated) > topN {
		rated = rated[:topN]
	}
	snap.TopRated = rated

	snap.StockValuation = valuation.Round(2)
	snap.PotentialRevenue = potential.Round(2)
	snap.PotentialProfit = potential.Sub(valuation).Round(2)

	return snap
}

// expiringSoon la variante consumió al menos el 75% de la vida útil declarada.
func expiringSoon(p *entity.Product, v *entity.Variant, now time.Time) bool {
	if p.ShelfLifeDays == nil || *p.ShelfLifeDays <= 0 {
		return false
	}
	age := float64(v.AgeDays(now))
	return age >= expiryWarnRatio*float64(*p.ShelfLifeDays)
}
