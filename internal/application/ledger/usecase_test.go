package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/infrastructure/memory"
)

// newEngine construye el motor sobre el almacén en memoria con las dos
// empresas sembradas y un producto de prueba en la empresa 1
// (precio de venta 1000, costo 600).
func newEngine(t *testing.T) (*memory.Store, *ledger.UseCase, *entity.Product) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()

	product := &entity.Product{CompanyID: 1, Name: "Producto X", SalePrice: 1000, UnitCost: 600}
	require.NoError(t, store.Products().Create(context.Background(), product))

	uc := ledger.NewUseCase(store.TxRunner(), store.Companies(), store.Products(), store.Movements())
	return store, uc, product
}

func stockOf(t *testing.T, store *memory.Store, productID int64) int64 {
	t.Helper()
	p, err := store.Products().GetByID(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestRecordTransaction_MontoBrutoDeterminista(t *testing.T) {
	_, uc, product := newEngine(t)
	ctx := context.Background()

	mov, err := uc.RecordTransaction(ctx, ledger.Input{
		CompanyID: 1, Type: entity.MovementTypeSale, IsFormal: true,
		ProductID: product.ID, Quantity: 3, UnitPrice: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), mov.GrossAmount)

	mov, err = uc.RecordTransaction(ctx, ledger.Input{
		CompanyID: 1, Type: entity.MovementTypePurchase, IsFormal: false,
		ProductID: product.ID, Quantity: 7, UnitPrice: 333,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2331), mov.GrossAmount)
}

func TestRecordTransaction_ReconciliacionDeStock(t *testing.T) {
	store, uc, product := newEngine(t)
	ctx := context.Background()

	_, err := uc.RecordFromCatalog(ctx, 1, entity.MovementTypePurchase, false, product.ID, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), stockOf(t, store, product.ID))

	_, err = uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 4, "")
	require.NoError(t, err)
	assert.Equal(t, int64(6), stockOf(t, store, product.ID))

	// Vender más de lo que hay no se bloquea: el stock queda negativo.
	_, err = uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(-4), stockOf(t, store, product.ID))
}

func TestRecordFromCatalog_CongelaElPrecio(t *testing.T) {
	store, uc, product := newEngine(t)
	ctx := context.Background()

	mov, err := uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), mov.GrossAmount)

	// Subir el precio después no altera el movimiento ya registrado.
	require.NoError(t, store.Products().UpdatePrices(ctx, product.ID, 9999, 600))

	list, err := uc.ListMovements(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2000), list[0].GrossAmount)

	// Un movimiento nuevo sí toma el precio vigente.
	mov, err = uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 1, "")
	require.NoError(t, err)
	assert.Equal(t, int64(9999), mov.GrossAmount)
}

func TestRecordFromCatalog_CompraUsaElCosto(t *testing.T) {
	_, uc, product := newEngine(t)

	mov, err := uc.RecordFromCatalog(context.Background(), 1, entity.MovementTypePurchase, true, product.ID, 5, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), mov.GrossAmount, "compra: cantidad × costo unitario")
}

func TestRecordTransaction_Validacion(t *testing.T) {
	store, uc, product := newEngine(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   ledger.Input
	}{
		{"tipo desconocido", ledger.Input{CompanyID: 1, Type: "transfer", ProductID: product.ID, Quantity: 1, UnitPrice: 100}},
		{"cantidad cero", ledger.Input{CompanyID: 1, Type: entity.MovementTypeSale, ProductID: product.ID, Quantity: 0, UnitPrice: 100}},
		{"cantidad negativa", ledger.Input{CompanyID: 1, Type: entity.MovementTypeSale, ProductID: product.ID, Quantity: -3, UnitPrice: 100}},
		{"precio negativo", ledger.Input{CompanyID: 1, Type: entity.MovementTypeSale, ProductID: product.ID, Quantity: 1, UnitPrice: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordTransaction(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Nada quedó persistido.
	list, err := uc.ListMovements(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, int64(0), stockOf(t, store, product.ID))
}

func TestRecordTransaction_Referencias(t *testing.T) {
	store, uc, product := newEngine(t)
	ctx := context.Background()

	// Producto de otra empresa: mismo error que producto inexistente, para no
	// revelar el catálogo ajeno.
	otherProduct := &entity.Product{CompanyID: 2, Name: "Ajeno", SalePrice: 500, UnitCost: 300}
	require.NoError(t, store.Products().Create(ctx, otherProduct))

	_, err := uc.RecordFromCatalog(ctx, 99, entity.MovementTypeSale, true, product.ID, 1, "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "empresa inexistente")

	_, err = uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, 999, 1, "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, otherProduct.ID, 1, "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto de otra empresa")

	require.NoError(t, store.Companies().Deactivate(ctx, 1))
	_, err = uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 1, "")
	assert.ErrorIs(t, err, domain.ErrCompanyInactive, "empresa desactivada")
}

func TestRecordTransaction_AtomicidadAnteFallas(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disco lleno")

	t.Run("falla el insert del movimiento", func(t *testing.T) {
		store, uc, product := newEngine(t)
		store.FailMovementInsert = boom

		_, err := uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 3, "")
		require.ErrorIs(t, err, boom)

		list, err := uc.ListMovements(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, list, "el movimiento no debe persistir")
		assert.Equal(t, int64(0), stockOf(t, store, product.ID), "el stock no debe cambiar")
	})

	t.Run("falla el ajuste de stock", func(t *testing.T) {
		store, uc, product := newEngine(t)
		store.FailStockAdjust = boom

		_, err := uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 3, "")
		require.ErrorIs(t, err, boom)

		// El insert del movimiento alcanzó a ejecutarse dentro de la
		// transacción, pero el rollback lo descarta junto con todo lo demás.
		list, err := uc.ListMovements(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.Equal(t, int64(0), stockOf(t, store, product.ID))
	})
}

func TestRecordTransaction_TimestampLegible(t *testing.T) {
	_, uc, product := newEngine(t)

	before := time.Now().Add(-time.Minute)
	mov, err := uc.RecordFromCatalog(context.Background(), 1, entity.MovementTypeSale, true, product.ID, 1, "")
	require.NoError(t, err)

	ts, err := time.ParseInLocation(entity.TimestampLayout, mov.Timestamp, time.Local)
	require.NoError(t, err, "el timestamp debe seguir el formato AAAA-MM-DD HH:MM")
	assert.False(t, ts.Before(before.Truncate(time.Minute)))
}
