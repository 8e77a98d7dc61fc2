package entity

import "github.com/shopspring/decimal"

// SpoilageCandidate propuesta de baja por merma/deterioro, pendiente de revisión.
// Es transitoria: solo existe durante el scoring de riesgo; al confirmarse se
// convierte en un descuento de stock más un gasto, ambos fuera de este motor.
type SpoilageCandidate struct {
	ProductID string
	VariantID string
	Quantity  decimal.Decimal
	Reason    string // texto libre del operario; se usa para señales por palabra clave
}

// RevenueEntity proyección mínima de cualquier entidad que genera ingresos,
// usada por la segmentación ABC.
type RevenueEntity struct {
	ID      string
	Name    string
	Revenue decimal.Decimal
}
