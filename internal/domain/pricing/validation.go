package pricing

import (
	"fmt"

	"github.com/jhoicas/Frescura-engine/internal/domain"
	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// ValidateDiscount valida el descriptor de descuento antes de persistirlo.
// ResolvePrice es total y tolera descriptores malformados; esta validación es
// la que los hace visibles al caller como error de datos.
func ValidateDiscount(d *entity.Discount) error {
	if d == nil {
		return nil
	}
	if d.Type == "" && !d.Value.IsZero() {
		return fmt.Errorf("%w: descuento con valor pero sin tipo", domain.ErrInvalidInput)
	}
	if d.Type != "" {
		if d.Type != entity.DiscountPercentage && d.Type != entity.DiscountFixed {
			return fmt.Errorf("%w: tipo de descuento desconocido %q", domain.ErrInvalidInput, d.Type)
		}
		if !d.Value.IsPositive() {
			return fmt.Errorf("%w: descuento %s requiere valor positivo", domain.ErrInvalidInput, d.Type)
		}
	}
	if d.StartAt != nil && d.EndAt != nil && d.StartAt.After(*d.EndAt) {
		return fmt.Errorf("%w: ventana de descuento invertida (inicio posterior al fin)", domain.ErrInvalidInput)
	}
	return nil
}
