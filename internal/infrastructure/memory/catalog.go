// Package memory implementa el repositorio de catálogo sobre colecciones en
// memoria. Respalda la CLI (snapshot JSON) y los tests; una implementación
// sobre base de datos viviría en esta misma capa sin tocar el motor.
package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Frescura-engine/internal/domain"
	"github.com/jhoicas/Frescura-engine/internal/domain/entity"
)

// Catalog snapshot inmutable de productos y pedidos.
type Catalog struct {
	products []*entity.Product
	orders   []*entity.Order
	byID     map[string]*entity.Product
}

// NewCatalog construye el repositorio a partir de un snapshot ya cargado.
func NewCatalog(products []*entity.Product, orders []*entity.Order) *Catalog {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, orders: orders, byID: byID}
}

// ListProducts devuelve todos los productos del snapshot.
func (c *Catalog) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return c.products, nil
}

// GetProduct busca un producto por ID.
func (c *Catalog) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return p, nil
}

// ListOrders devuelve todos los pedidos del snapshot.
func (c *Catalog) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return c.orders, nil
}
