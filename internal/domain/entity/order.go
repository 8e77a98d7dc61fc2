package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus estado del pedido. Solo "delivered" cuenta para ingresos y COGS realizados.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem línea de pedido con precio y costo congelados al momento de la venta.
// Los cálculos históricos deben usar siempre PriceAtOrder/CostAtOrder, nunca el
// precio vivo del catálogo, para que los KPIs pasados no cambien con ediciones posteriores.
type OrderItem struct {
	ProductID    string
	VariantID    string
	Quantity     decimal.Decimal
	PriceAtOrder decimal.Decimal
	CostAtOrder  decimal.Decimal
}

// LineRevenue ingreso de la línea al precio congelado.
func (it OrderItem) LineRevenue() decimal.Decimal {
	return it.PriceAtOrder.Mul(it.Quantity)
}

// LineCost costo de la línea al costo congelado.
func (it OrderItem) LineCost() decimal.Decimal {
	return it.CostAtOrder.Mul(it.Quantity)
}

// Order pedido de la tienda.
type Order struct {
	ID        string
	Status    OrderStatus
	Items     []OrderItem
	CreatedAt time.Time
}

// NewOrder crea un pedido pendiente con ID nuevo.
func NewOrder(items []OrderItem, createdAt time.Time) *Order {
	return &Order{
		ID:        uuid.New().String(),
		Status:    OrderPending,
		Items:     items,
		CreatedAt: createdAt,
	}
}

// QuantityOf suma la cantidad pedida del producto en este pedido.
func (o *Order) QuantityOf(productID string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		if it.ProductID == productID {
			total = total.Add(it.Quantity)
		}
	}
	return total
}
