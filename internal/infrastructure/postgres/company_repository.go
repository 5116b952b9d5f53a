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

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una empresa nueva y asigna su ID.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	const query = `INSERT INTO companies (name, active) VALUES ($1, $2) RETURNING id`
	if err := r.q.QueryRow(ctx, query, company.Name, company.Active).Scan(&company.ID); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID, activa o no. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	const query = `SELECT id, name, active FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ListActive lista solo las empresas activas, en orden de creación.
func (r *CompanyRepo) ListActive(ctx context.Context) ([]*entity.Company, error) {
	const query = `SELECT id, name, active FROM companies WHERE active ORDER BY id`
	rows, err := r.q.Query(ctx, query)
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
	cmd, err := r.q.Exec(ctx, `UPDATE companies SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("rename company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate limpia el flag active (soft delete); la fila nunca se borra.
func (r *CompanyRepo) Deactivate(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE companies SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
