package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jempresa/erp-api/internal/domain/entity"
)

func TestStockDelta(t *testing.T) {
	sale := entity.Movement{Type: entity.MovementTypeSale, Quantity: 4}
	assert.Equal(t, int64(-4), sale.StockDelta(), "la venta resta stock")

	purchase := entity.Movement{Type: entity.MovementTypePurchase, Quantity: 4}
	assert.Equal(t, int64(4), purchase.StockDelta(), "la compra suma stock")
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeSale))
	assert.True(t, entity.ValidMovementType(entity.MovementTypePurchase))
	assert.False(t, entity.ValidMovementType(""))
	assert.False(t, entity.ValidMovementType("transfer"))
	assert.False(t, entity.ValidMovementType("SALE"), "el tipo es sensible a mayúsculas")
}

func TestInventoryValue(t *testing.T) {
	p := entity.Product{Stock: 6, UnitCost: 600, SalePrice: 1000}
	assert.Equal(t, int64(3600), p.InventoryValue(), "se valoriza al costo, no al precio de venta")

	negative := entity.Product{Stock: -4, UnitCost: 600}
	assert.Equal(t, int64(-2400), negative.InventoryValue())
}
