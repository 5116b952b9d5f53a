package repository

import (
	"context"

	"github.com/jempresa/erp-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas.
// GetByID devuelve (nil, nil) si la empresa no existe.
type CompanyRepository interface {
	// Create persiste una empresa nueva y asigna su ID.
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// ListActive lista solo las empresas activas, en orden de creación.
	ListActive(ctx context.Context) ([]*entity.Company, error)
	Rename(ctx context.Context, id int64, name string) error
	// Deactivate marca la empresa como inactiva (soft delete).
	Deactivate(ctx context.Context, id int64) error
}
