package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. El stock se fuerza a 0 sin importar lo
// que traiga la entidad: solo el motor de transacciones muta stock.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	const query = `
		INSERT INTO products (company_id, name, stock, sale_price, unit_cost)
		VALUES ($1, $2, 0, $3, $4) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.CompanyID, product.Name, product.SalePrice, product.UnitCost,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.Stock = 0
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	const query = `
		SELECT id, company_id, name, stock, sale_price, unit_cost
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Stock, &p.SalePrice, &p.UnitCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los productos de una empresa en orden de creación.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Product, error) {
	const query = `
		SELECT id, company_id, name, stock, sale_price, unit_cost
		FROM products WHERE company_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Stock, &p.SalePrice, &p.UnitCost); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdatePrices cambia precio de venta y costo unitario.
func (r *ProductRepo) UpdatePrices(ctx context.Context, id, salePrice, unitCost int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET sale_price = $2, unit_cost = $3 WHERE id = $1`,
		id, salePrice, unitCost,
	)
	if err != nil {
		return fmt.Errorf("update product prices: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock aplica el delta al stock en una sola sentencia (stock = stock + δ).
// Sin piso: el stock puede quedar negativo, el motor no bloquea ventas.
func (r *ProductRepo) AdjustStock(ctx context.Context, id, delta int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET stock = stock + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
