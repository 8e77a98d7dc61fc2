// Package pricing resuelve el precio efectivo de una variante aplicando el
// descuento temporal del producto (servicio de dominio, funciones puras).
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ResolvePrice devuelve el precio efectivo de la variante en el instante dado.
//
// Reglas:
//   - Sin tipo de descuento o sin valor positivo: precio base redondeado a 2 decimales.
//   - Con StartAt y EndAt definidos, el descuento aplica solo dentro de la
//     ventana inclusive; si falta alguno, aplica incondicionalmente.
//   - percentage: precio × (1 − valor/100), porcentajes sobre 100 se tratan como 100.
//   - fixed: max(precio − valor, 0).
//
// La función es total: nunca retorna error ni valores negativos. Los
// descriptores malformados se ignoran aquí; ValidateDiscount los reporta al
// caller antes de persistir el producto.
func ResolvePrice(p *entity.Product, v *entity.Variant, now time.Time) decimal.Decimal {
	price := basePrice(p, v)

	if p == nil || !p.Discount.ActiveAt(now) {
		return price.Round(2)
	}

	d := p.Discount
	switch d.Type {
	case entity.DiscountPercentage:
		pct := d.Value
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		price = price.Mul(hundred.Sub(pct)).Div(hundred)
	case entity.DiscountFixed:
		price = price.Sub(d.Value)
	default:
		// Tipo desconocido: se trata como sin descuento.
	}

	if price.IsNegative() {
		price = decimal.Zero
	}
	return price.Round(2)
}

// basePrice precio de la variante, con fallback al precio del producto.
func basePrice(p *entity.Product, v *entity.Variant) decimal.Decimal {
	if v != nil && v.Price.IsPositive() {
		return v.Price
	}
	if p != nil {
		return p.Price
	}
	return decimal.Zero
}
