package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
	"github.com/jempresa/erp-api/internal/infrastructure/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "erp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_SiembraEmpresasPorDefecto(t *testing.T) {
	store := openStore(t)

	repo := sqlite.NewCompanyRepository(store.DB())
	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Empresa A", list[0].Name)
	assert.Equal(t, "Empresa B", list[1].Name)
}

func TestOpen_NoDuplicaLaSiembra(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Segunda apertura del mismo archivo: la siembra solo corre con la tabla
	// vacía.
	store, err = sqlite.Open(path)
	require.NoError(t, err)
	defer store.Close()

	list, err := sqlite.NewCompanyRepository(store.DB()).ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCompanyRepo_CicloCompleto(t *testing.T) {
	store := openStore(t)
	repo := sqlite.NewCompanyRepository(store.DB())
	ctx := context.Background()

	company := &entity.Company{Name: "Distribuidora Norte", Active: true}
	require.NoError(t, repo.Create(ctx, company))
	assert.Positive(t, company.ID)

	require.NoError(t, repo.Rename(ctx, company.ID, "Distribuidora Norte SpA"))
	got, err := repo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Distribuidora Norte SpA", got.Name)

	require.NoError(t, repo.Deactivate(ctx, company.ID))
	got, err = repo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "desactivada sigue consultable por ID")
	assert.False(t, got.Active)

	assert.ErrorIs(t, repo.Rename(ctx, 9999, "X"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Deactivate(ctx, 9999), domain.ErrNotFound)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_StockYPrecios(t *testing.T) {
	store := openStore(t)
	repo := sqlite.NewProductRepository(store.DB())
	ctx := context.Background()

	product := &entity.Product{CompanyID: 1, Name: "Sierra", Stock: 99, SalePrice: 1190, UnitCost: 700}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), got.Stock, "el stock inicial se fuerza a 0 aunque venga otro valor")

	require.NoError(t, repo.AdjustStock(ctx, product.ID, 10))
	require.NoError(t, repo.AdjustStock(ctx, product.ID, -14))
	got, err = repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), got.Stock, "el stock negativo se permite")

	require.NoError(t, repo.UpdatePrices(ctx, product.ID, 1500, 800))
	got, err = repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got.SalePrice)
	assert.Equal(t, int64(800), got.UnitCost)

	assert.ErrorIs(t, repo.AdjustStock(ctx, 9999, 1), domain.ErrNotFound)
}

func TestMovementRepo_ListadosYTotales(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	products := sqlite.NewProductRepository(store.DB())
	product := &entity.Product{CompanyID: 1, Name: "Lija", SalePrice: 500, UnitCost: 300}
	require.NoError(t, products.Create(ctx, product))

	movements := sqlite.NewMovementRepository(store.DB())
	seed := []entity.Movement{
		{CompanyID: 1, Type: entity.MovementTypePurchase, IsFormal: false, Timestamp: "2026-08-01 09:00", ProductID: product.ID, Quantity: 10, GrossAmount: 3000},
		{CompanyID: 1, Type: entity.MovementTypeSale, IsFormal: true, Timestamp: "2026-08-02 10:30", ProductID: product.ID, Quantity: 4, GrossAmount: 2000},
		{CompanyID: 1, Type: entity.MovementTypeSale, IsFormal: false, Timestamp: "2026-08-03 16:45", ProductID: product.ID, Quantity: 1, GrossAmount: 500},
	}
	for i := range seed {
		require.NoError(t, movements.Create(ctx, &seed[i]))
	}

	all, err := movements.ListByCompany(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-08-03 16:45", all[0].Timestamp, "más recientes primero")

	formal, err := movements.ListFormalByCompany(ctx, 1)
	require.NoError(t, err)
	require.Len(t, formal, 1)
	assert.Equal(t, int64(2000), formal[0].GrossAmount)

	sales, purchases, err := movements.TotalsByType(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), sales)
	assert.Equal(t, int64(3000), purchases)

	// Otra empresa no ve nada.
	other, err := movements.ListByCompany(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTxRunner_RollbackDescartaTodo(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	products := sqlite.NewProductRepository(store.DB())
	product := &entity.Product{CompanyID: 1, Name: "Pintura", SalePrice: 1000, UnitCost: 600}
	require.NoError(t, products.Create(ctx, product))

	boom := errors.New("falla simulada")
	runner := sqlite.NewTxRunner(store)
	err := runner.Run(ctx, func(movements repository.MovementRepository, txProducts repository.ProductRepository) error {
		mov := &entity.Movement{
			CompanyID: 1, Type: entity.MovementTypeSale, IsFormal: true,
			Timestamp: "2026-08-31 12:00", ProductID: product.ID, Quantity: 2, GrossAmount: 2000,
		}
		if err := movements.Create(ctx, mov); err != nil {
			return err
		}
		if err := txProducts.AdjustStock(ctx, product.ID, -2); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := sqlite.NewMovementRepository(store.DB()).ListByCompany(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list, "el rollback descarta el movimiento")

	got, err := products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stock, "el rollback descarta el ajuste de stock")
}

func TestTxRunner_ConElMotorCompleto(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	companies := sqlite.NewCompanyRepository(store.DB())
	products := sqlite.NewProductRepository(store.DB())
	movements := sqlite.NewMovementRepository(store.DB())

	product := &entity.Product{CompanyID: 1, Name: "Cemento", SalePrice: 1000, UnitCost: 600}
	require.NoError(t, products.Create(ctx, product))

	uc := ledger.NewUseCase(sqlite.NewTxRunner(store), companies, products, movements)

	_, err := uc.RecordFromCatalog(ctx, 1, entity.MovementTypePurchase, false, product.ID, 10, "")
	require.NoError(t, err)
	mov, err := uc.RecordFromCatalog(ctx, 1, entity.MovementTypeSale, true, product.ID, 4, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), mov.GrossAmount)

	got, err := products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Stock)
}
