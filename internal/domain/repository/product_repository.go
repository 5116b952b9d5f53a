package repository

import (
	"context"

	"github.com/jempresa/erp-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	// Create persiste un producto nuevo (stock siempre 0) y asigna su ID.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Product, error)
	// UpdatePrices cambia precio de venta y costo. No toca stock ni movimientos
	// pasados (el monto bruto de cada movimiento queda congelado al insertarse).
	UpdatePrices(ctx context.Context, id, salePrice, unitCost int64) error
	// AdjustStock aplica un delta al stock (positivo o negativo, sin piso).
	// Devuelve domain.ErrNotFound si el producto no existe.
	AdjustStock(ctx context.Context, id, delta int64) error
}
