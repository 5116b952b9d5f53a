package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre SQLite.
type CompanyRepo struct {
	q queryer
}

// NewCompanyRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewCompanyRepository(q queryer) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una empresa nueva y asigna su ID.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO companies (name, active) VALUES (?, ?)`,
		company.Name, company.Active,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	company.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, active FROM companies WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ListActive lista solo las empresas activas, en orden de creación.
func (r *CompanyRepo) ListActive(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, active FROM companies WHERE active = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Rename cambia el nombre de una empresa.
func (r *CompanyRepo) Rename(ctx context.Context, id int64, name string) error {
	res, err := r.q.ExecContext(ctx, `UPDATE companies SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename company: %w", err)
	}
	return checkAffected(res)
}

// Deactivate limpia el flag active (soft delete); la fila nunca se borra.
func (r *CompanyRepo) Deactivate(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `UPDATE companies SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate company: %w", err)
	}
	return checkAffected(res)
}

// checkAffected traduce "0 filas afectadas" a domain.ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
