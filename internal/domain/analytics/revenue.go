package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// RevenueByProduct proyecta los pedidos entregados a entidades de ingreso por
// producto, con precios congelados al momento de la venta. Es el insumo
// habitual de SegmentByRevenue.
func RevenueByProduct(products []*entity.Product, orders []*entity.Order) []entity.RevenueEntity {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	revenue := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o == nil || o.Status != entity.OrderDelivered {
			continue
		}
		for _, it := range o.Items {
			revenue[it.ProductID] = revenue[it.ProductID].Add(it.LineRevenue())
		}
	}

	entities := make([]entity.RevenueEntity, 0, len(revenue))
	for id, rev := range revenue {
		entities = append(entities, entity.RevenueEntity{
			ID:      id,
			Name:    names[id],
			Revenue: rev.Round(2),
		})
	}
	return entities
}
