package sqlite

import (
	"context"
	"fmt"

	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre SQLite.
// Append-only: no hay Update ni Delete.
type MovementRepo struct {
	q queryer
}

// NewMovementRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewMovementRepository(q queryer) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna su ID.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO movements (company_id, type, is_formal, timestamp, product_id, quantity, gross_amount, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.CompanyID, m.Type, m.IsFormal, m.Timestamp,
		m.ProductID, m.Quantity, m.GrossAmount, m.Note,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	return nil
}

// ListByCompany lista todos los movimientos de la empresa, más recientes primero.
func (r *MovementRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Movement, error) {
	const query = `
		SELECT id, company_id, type, is_formal, timestamp, product_id, quantity, gross_amount, note
		FROM movements WHERE company_id = ? ORDER BY id DESC`
	return r.list(ctx, query, companyID)
}

// ListFormalByCompany lista solo los movimientos formales de la empresa.
func (r *MovementRepo) ListFormalByCompany(ctx context.Context, companyID int64) ([]*entity.Movement, error) {
	const query = `
		SELECT id, company_id, type, is_formal, timestamp, product_id, quantity, gross_amount, note
		FROM movements WHERE company_id = ? AND is_formal = 1 ORDER BY id DESC`
	return r.list(ctx, query, companyID)
}

// TotalsByType suma gross_amount por tipo; empresa sin movimientos da ceros.
func (r *MovementRepo) TotalsByType(ctx context.Context, companyID int64) (sales, purchases int64, err error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'sale'     THEN gross_amount END), 0),
			COALESCE(SUM(CASE WHEN type = 'purchase' THEN gross_amount END), 0)
		FROM movements WHERE company_id = ?`
	if err := r.q.QueryRowContext(ctx, query, companyID).Scan(&sales, &purchases); err != nil {
		return 0, 0, fmt.Errorf("totals by type: %w", err)
	}
	return sales, purchases, nil
}

func (r *MovementRepo) list(ctx context.Context, query string, companyID int64) ([]*entity.Movement, error) {
	rows, err := r.q.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Type, &m.IsFormal, &m.Timestamp,
			&m.ProductID, &m.Quantity, &m.GrossAmount, &m.Note); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
