package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
	"github.com/jhoicas/Frescura-engine/internal/domain/pricing"
)

func variantWithPrice(price string) *entity.Variant {
	return &entity.Variant{
		ID:    "var-1",
		Price: decimal.RequireFromString(price),
	}
}

func productWithDiscount(d *entity.Discount) *entity.Product {
	return &entity.Product{
		ID:       "prod-1",
		Name:     "Fresas del Quindío",
		Price:    decimal.RequireFromString("12.50"),
		Discount: d,
	}
}

func TestResolvePrice_SinDescuento(t *testing.T) {
	p := productWithDiscount(nil)
	v := variantWithPrice("10.00")

	got := pricing.ResolvePrice(p, v, time.Now())
	assert.Equal(t, "10.00", got.StringFixed(2), "sin descuento debe devolver el precio de la variante")
}

// TestResolvePrice_VentanaDeDescuento valida el límite de la ventana temporal:
// dentro de [StartAt, EndAt] el porcentaje aplica; un día después ya no.
func TestResolvePrice_VentanaDeDescuento(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)
	p := productWithDiscount(&entity.Discount{
		Type:    entity.DiscountPercentage,
		Value:   decimal.NewFromInt(20),
		StartAt: &start,
		EndAt:   &end,
	})
	v := variantWithPrice("10.00")

	dentro := pricing.ResolvePrice(p, v, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "8.00", dentro.StringFixed(2), "dentro de la ventana aplica el 20%")

	fuera := pricing.ResolvePrice(p, v, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "10.00", fuera.StringFixed(2), "fuera de la ventana no hay descuento")

	enLimite := pricing.ResolvePrice(p, v, end)
	assert.Equal(t, "8.00", enLimite.StringFixed(2), "la ventana es inclusive en EndAt")
}

func TestResolvePrice_SinVentanaAplicaSiempre(t *testing.T) {
	p := productWithDiscount(&entity.Discount{
		Type:  entity.DiscountFixed,
		Value: decimal.NewFromInt(2),
	})
	v := variantWithPrice("10.00")

	got := pricing.ResolvePrice(p, v, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "8.00", got.StringFixed(2), "sin ventana el descuento aplica incondicionalmente")
}

// TestResolvePrice_DescuentoFijoNoNegativo el precio jamás baja de cero.
func TestResolvePrice_DescuentoFijoNoNegativo(t *testing.T) {
	p := productWithDiscount(&entity.Discount{
		Type:  entity.DiscountFixed,
		Value: decimal.RequireFromString("7.00"),
	})
	v := variantWithPrice("5.00")

	got := pricing.ResolvePrice(p, v, time.Now())
	assert.Equal(t, "0.00", got.StringFixed(2), "descuento fijo mayor al precio produce 0.00, nunca negativo")
}

func TestResolvePrice_PorcentajeMayorA100(t *testing.T) {
	p := productWithDiscount(&entity.Discount{
		Type:  entity.DiscountPercentage,
		Value: decimal.NewFromInt(150),
	})
	v := variantWithPrice("9.99")

	got := pricing.ResolvePrice(p, v, time.Now())
	assert.Equal(t, "0.00", got.StringFixed(2), "porcentajes sobre 100 se tratan como 100")
}

func TestResolvePrice_DescriptoresMalformados(t *testing.T) {
	v := variantWithPrice("10.00")

	sinTipo := productWithDiscount(&entity.Discount{Value: decimal.NewFromInt(20)})
	assert.Equal(t, "10.00", pricing.ResolvePrice(sinTipo, v, time.Now()).StringFixed(2),
		"valor sin tipo se ignora")

	valorNegativo := productWithDiscount(&entity.Discount{
		Type:  entity.DiscountPercentage,
		Value: decimal.NewFromInt(-5),
	})
	assert.Equal(t, "10.00", pricing.ResolvePrice(valorNegativo, v, time.Now()).StringFixed(2),
		"valor negativo se ignora, no se rechaza")
}

func TestResolvePrice_FallbackAlPrecioDelProducto(t *testing.T) {
	p := productWithDiscount(nil)
	v := &entity.Variant{ID: "var-1"} // sin precio propio

	got := pricing.ResolvePrice(p, v, time.Now())
	assert.Equal(t, "12.50", got.StringFixed(2), "variante sin precio cae al precio del producto")
}

// TestResolvePrice_Idempotente mismos inputs y mismo instante, mismo resultado.
func TestResolvePrice_Idempotente(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	p := productWithDiscount(&entity.Discount{
		Type:    entity.DiscountPercentage,
		Value:   decimal.NewFromInt(15),
		StartAt: &start,
		EndAt:   &end,
	})
	v := variantWithPrice("33.33")
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	first := pricing.ResolvePrice(p, v, now)
	second := pricing.ResolvePrice(p, v, now)
	assert.True(t, first.Equal(second), "la resolución de precio es pura: %s vs %s", first, second)
}
