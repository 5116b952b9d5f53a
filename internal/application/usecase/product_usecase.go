package usecase

import (
	"context"
	"strings"

	"github.com/jempresa/erp-api/internal/application/dto"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo        repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un producto bajo una empresa. El stock inicial es siempre 0;
// solo el motor de transacciones lo muta después.
func (uc *ProductUseCase) Create(ctx context.Context, companyID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.SalePrice < 0 || in.UnitCost < 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		CompanyID: companyID,
		Name:      name,
		Stock:     0,
		SalePrice: in.SalePrice,
		UnitCost:  in.UnitCost,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// GetByID obtiene un producto de la empresa. Devuelve (nil, nil) si no existe
// o si pertenece a otra empresa (las empresas nunca se cruzan).
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	return productToResponse(product), nil
}

// List lista los productos de la empresa.
func (uc *ProductUseCase) List(ctx context.Context, companyID int64) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *productToResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// UpdatePrices actualiza precio de venta y costo unitario. Los movimientos ya
// registrados conservan su monto bruto: el precio se congela al insertar.
func (uc *ProductUseCase) UpdatePrices(ctx context.Context, companyID, id int64, in dto.UpdateProductPricesRequest) error {
	if in.SalePrice < 0 || in.UnitCost < 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.UpdatePrices(ctx, id, in.SalePrice, in.UnitCost)
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		Name:           p.Name,
		Stock:          p.Stock,
		SalePrice:      p.SalePrice,
		UnitCost:       p.UnitCost,
		InventoryValue: p.InventoryValue(),
	}
}
