package usecase

import (
	"context"
	"strings"

	"github.com/jempresa/erp-api/internal/application/dto"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas (Entity Store).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa nueva, activa por defecto.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{Name: name, Active: true}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// GetByID obtiene una empresa por ID (activa o no). Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil || company == nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// List lista solo empresas activas; las desactivadas quedan ocultas pero sus
// productos y movimientos siguen consultables por ID.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, Total: len(items)}, nil
}

// Rename cambia el nombre de una empresa.
func (uc *CompanyUseCase) Rename(ctx context.Context, id int64, in dto.RenameCompanyRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Rename(ctx, id, name)
}

// Deactivate desactiva una empresa (soft delete); nunca se borra físicamente
// para preservar la integridad referencial de los movimientos históricos.
func (uc *CompanyUseCase) Deactivate(ctx context.Context, id int64) error {
	return uc.repo.Deactivate(ctx, id)
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name, Active: c.Active}
}
