package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType tipo de descuento aplicable a un producto.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage" // porcentaje sobre el precio
	DiscountFixed      DiscountType = "fixed"      // monto fijo a restar
)

// QualityGrade calidad de la variante al momento del ingreso a bodega.
type QualityGrade string

const (
	GradeA        QualityGrade = "A"
	GradeB        QualityGrade = "B"
	GradeC        QualityGrade = "C"
	GradePremium  QualityGrade = "Premium"
	GradeUnsorted QualityGrade = "Unsorted" // sin clasificar
)

// Discount descriptor de descuento temporal de un producto.
// Si StartAt y EndAt están ambos definidos, el descuento solo aplica dentro
// de la ventana [StartAt, EndAt] inclusive; si falta alguno, aplica siempre
// que Type y Value estén presentes.
type Discount struct {
	Type    DiscountType
	Value   decimal.Decimal
	StartAt *time.Time
	EndAt   *time.Time
}

// ActiveAt indica si el descuento aplica en el instante dado.
// Un descuento sin tipo o con valor no positivo nunca está activo.
func (d *Discount) ActiveAt(now time.Time) bool {
	if d == nil || d.Type == "" || !d.Value.IsPositive() {
		return false
	}
	if d.StartAt != nil && d.EndAt != nil {
		return !now.Before(*d.StartAt) && !now.After(*d.EndAt)
	}
	return true
}

// Review reseña de un cliente sobre un producto.
// Solo las reseñas aprobadas cuentan para el rating promedio del dashboard.
type Review struct {
	ID        string
	Rating    int // 1..5
	Comment   string
	Approved  bool
	CreatedAt time.Time
}

// Variant configuración vendible de un producto (tamaño/unidad) con su propio
// precio, costo y stock. Nunca se borra físicamente; el producto se archiva.
type Variant struct {
	ID          string
	ProductID   string
	Name        string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	ArrivalCost decimal.Decimal // costo en bodega con flete; opcional (cero = no registrado)
	Stock       decimal.Decimal
	MinStock    decimal.Decimal
	Grade       QualityGrade
	BatchDate   time.Time // fecha de ingreso del lote; base para edad y FIFO
	UnitMeasure string
}

// AgeDays edad del lote en días completos respecto al instante dado.
func (v Variant) AgeDays(now time.Time) int {
	if v.BatchDate.IsZero() || now.Before(v.BatchDate) {
		return 0
	}
	return int(now.Sub(v.BatchDate).Hours() / 24)
}

// Product producto del catálogo de perecederos.
// Price y Cost a nivel de producto son solo fallback: los valores de la
// variante tienen precedencia cuando están presentes.
type Product struct {
	ID            string
	Name          string
	CategoryID    string
	Price         decimal.Decimal
	Cost          decimal.Decimal
	ShelfLifeDays *int // vida útil en días desde BatchDate; nil = desconocida
	Discount      *Discount
	Variants      []Variant
	Reviews       []Review
	MinStock      decimal.Decimal // umbral de stock bajo por defecto para las variantes
	Archived      bool
	CreatedAt     time.Time
}

// NewProduct crea un producto con ID nuevo y sin variantes.
func NewProduct(name, categoryID string, price, cost decimal.Decimal) *Product {
	return &Product{
		ID:         uuid.New().String(),
		Name:       name,
		CategoryID: categoryID,
		Price:      price,
		Cost:       cost,
		CreatedAt:  time.Now().UTC(),
	}
}

// NewVariant crea una variante con ID nuevo asociada al producto.
func NewVariant(productID, name string, price, cost decimal.Decimal, batchDate time.Time) Variant {
	return Variant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      name,
		Price:     price,
		Cost:      cost,
		Grade:     GradeUnsorted,
		BatchDate: batchDate,
	}
}

// TotalStock suma el stock de todas las variantes del producto.
func (p *Product) TotalStock() decimal.Decimal {
	total := decimal.Zero
	for _, v := range p.Variants {
		total = total.Add(v.Stock)
	}
	return total
}

// FindVariant busca una variante por ID; nil si no existe.
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// EffectiveCost costo unitario a usar para valorización: el de la variante si
// está definido, si no el fallback del producto.
func (p *Product) EffectiveCost(v *Variant) decimal.Decimal {
	if v != nil && v.Cost.IsPositive() {
		return v.Cost
	}
	return p.Cost
}

// EffectiveMinStock umbral de stock bajo de la variante, con fallback al del producto.
func (p *Product) EffectiveMinStock(v *Variant) decimal.Decimal {
	if v != nil && v.MinStock.IsPositive() {
		return v.MinStock
	}
	return p.MinStock
}
