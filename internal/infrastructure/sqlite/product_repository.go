package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	q queryer
}

// NewProductRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewProductRepository(q queryer) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo con stock 0 y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO products (company_id, name, stock, sale_price, unit_cost) VALUES (?, ?, 0, ?, ?)`,
		product.CompanyID, product.Name, product.SalePrice, product.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	product.Stock = 0
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRowContext(ctx,
		`SELECT id, company_id, name, stock, sale_price, unit_cost FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.CompanyID, &p.Name, &p.Stock, &p.SalePrice, &p.UnitCost)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los productos de una empresa en orden de creación.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, company_id, name, stock, sale_price, unit_cost FROM products WHERE company_id = ? ORDER BY id`,
		companyID,
	)
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
	res, err := r.q.ExecContext(ctx,
		`UPDATE products SET sale_price = ?, unit_cost = ? WHERE id = ?`,
		salePrice, unitCost, id,
	)
	if err != nil {
		return fmt.Errorf("update product prices: %w", err)
	}
	return checkAffected(res)
}

// AdjustStock aplica el delta al stock (stock = stock + δ), sin piso.
func (r *ProductRepo) AdjustStock(ctx context.Context, id, delta int64) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE products SET stock = stock + ? WHERE id = ?`, delta, id)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return checkAffected(res)
}
