package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
	"github.com/jempresa/erp-api/internal/infrastructure/postgres"
	"github.com/jempresa/erp-api/pkg/config"
)

// setupPool abre un pool contra la base de integración. Se salta el test si
// TEST_DATABASE_URL no está definida. Las tablas se vacían al inicio, así que
// la base debe ser desechable.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definida; test de integración omitido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE movements, products, companies RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	return pool
}

func TestIntegracion_SiembraYRepositorios(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	companies := postgres.NewCompanyRepository(pool)
	list, err := companies.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Empresa A", list[0].Name)

	products := postgres.NewProductRepository(pool)
	product := &entity.Product{CompanyID: list[0].ID, Name: "Cemento", SalePrice: 1000, UnitCost: 600}
	require.NoError(t, products.Create(ctx, product))
	assert.Positive(t, product.ID)

	movements := postgres.NewMovementRepository(pool)
	uc := ledger.NewUseCase(postgres.NewTxRunner(pool), companies, products, movements)

	_, err = uc.RecordFromCatalog(ctx, list[0].ID, entity.MovementTypePurchase, false, product.ID, 10, "")
	require.NoError(t, err)
	mov, err := uc.RecordFromCatalog(ctx, list[0].ID, entity.MovementTypeSale, true, product.ID, 4, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), mov.GrossAmount)

	got, err := products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Stock)

	sales, purchases, err := movements.TotalsByType(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), sales)
	assert.Equal(t, int64(6000), purchases)

	formal, err := movements.ListFormalByCompany(ctx, list[0].ID)
	require.NoError(t, err)
	require.Len(t, formal, 1)
	assert.Equal(t, entity.MovementTypeSale, formal[0].Type)
}

func TestIntegracion_RollbackAnteFalla(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	companies := postgres.NewCompanyRepository(pool)
	list, err := companies.ListActive(ctx)
	require.NoError(t, err)

	products := postgres.NewProductRepository(pool)
	product := &entity.Product{CompanyID: list[0].ID, Name: "Arena", SalePrice: 500, UnitCost: 300}
	require.NoError(t, products.Create(ctx, product))

	boom := errors.New("falla simulada")
	runner := postgres.NewTxRunner(pool)
	err = runner.Run(ctx, func(txMovements repository.MovementRepository, txProducts repository.ProductRepository) error {
		mov := &entity.Movement{
			CompanyID: list[0].ID, Type: entity.MovementTypeSale, IsFormal: true,
			Timestamp: "2026-08-31 12:00", ProductID: product.ID, Quantity: 2, GrossAmount: 1000,
		}
		if err := txMovements.Create(ctx, mov); err != nil {
			return err
		}
		if err := txProducts.AdjustStock(ctx, product.ID, -2); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	movements := postgres.NewMovementRepository(pool)
	all, err := movements.ListByCompany(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Empty(t, all, "el rollback descarta el movimiento")

	got, err := products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stock, "el rollback descarta el ajuste de stock")
}
