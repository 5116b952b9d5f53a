package repository

import (
	"context"

	"github.com/jempresa/erp-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia para el libro de movimientos.
// El libro es append-only: no existen Update ni Delete.
type MovementRepository interface {
	// Create persiste un movimiento y asigna su ID.
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByCompany lista todos los movimientos de la empresa, más recientes primero.
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Movement, error)
	// ListFormalByCompany lista solo los movimientos formales (base del reporte de IVA).
	ListFormalByCompany(ctx context.Context, companyID int64) ([]*entity.Movement, error)
	// TotalsByType suma gross_amount agrupado por tipo (formales e informales).
	TotalsByType(ctx context.Context, companyID int64) (sales, purchases int64, err error)
}
