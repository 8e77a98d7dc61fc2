package repository

import (
	"context"

	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// CatalogRepository puerto de solo lectura sobre el catálogo y los pedidos.
// El motor nunca escribe: descuentos de stock, gastos y persistencia son
// responsabilidad del caller después de consumir los resultados.
//
// Contrato de snapshot: una misma invocación del motor debe ver una vista
// consistente; no se garantiza nada si las colecciones subyacentes mutan a
// mitad de un cálculo.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
