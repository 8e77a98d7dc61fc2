// Package analytics agrupa los cálculos de decisión del back-office:
// segmentación ABC por ingresos y el snapshot de KPIs del dashboard.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// Cortes de participación acumulada de la segmentación ABC.
var (
	cutA = decimal.NewFromInt(80)
	cutB = decimal.NewFromInt(95)

	hundred = decimal.NewFromInt(100)
)

// Segments buckets A/B/C por participación acumulada de ingresos.
type Segments struct {
	A []entity.RevenueEntity
	B []entity.RevenueEntity
	C []entity.RevenueEntity
}

// SegmentByRevenue clasifica las entidades por participación acumulada:
// A mientras el acumulado ≤ 80% del ingreso total, B mientras ≤ 95%, C el resto.
//
// El orden es descendente por ingreso con desempate ascendente por ID, así el
// resultado es determinista sin importar el orden de entrada. Entrada vacía
// produce tres buckets vacíos; si el total es cero no hay participación que
// repartir y todo cae en C.
func SegmentByRevenue(entities []entity.RevenueEntity) Segments {
	segments := Segments{
		A: []entity.RevenueEntity{},
		B: []entity.RevenueEntity{},
		C: []entity.RevenueEntity{},
	}
	if len(entities) == 0 {
		return segments
	}

	ranked := make([]entity.RevenueEntity, len(entities))
	copy(ranked, entities)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Revenue.Equal(ranked[j].Revenue) {
			return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
		}
		return ranked[i].ID < ranked[j].ID
	})

	total := decimal.Zero
	for _, e := range ranked {
		total = total.Add(e.Revenue)
	}
	if !total.IsPositive() {
		segments.C = ranked
		return segments
	}

	cumulative := decimal.Zero
	for _, e := range ranked {
		cumulative = cumulative.Add(e.Revenue)
		share := cumulative.Div(total).Mul(hundred)
		switch {
		case share.LessThanOrEqual(cutA):
			segments.A = append(segments.A, e)
		case share.LessThanOrEqual(cutB):
			segments.B = append(segments.B, e)
		default:
			segments.C = append(segments.C, e)
		}
	}
	return segments
}
