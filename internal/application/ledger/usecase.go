package ledger

import (
	"context"
	"time"

	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

// UseCase es el motor de transacciones: registra ventas y compras en el libro
// de movimientos y ajusta el stock del producto en una sola unidad atómica
// (Commit/Rollback vía TxRunner).
type UseCase struct {
	txRunner     TxRunner
	companyRepo  repository.CompanyRepository
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewUseCase construye el motor de transacciones.
func NewUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// Input entrada para registrar un movimiento. UnitPrice ya viene resuelto por
// el caller (precio de venta para ventas, costo unitario para compras); el
// motor no lo deriva, para que el monto bruto quede congelado aunque los
// precios del producto cambien después.
type Input struct {
	CompanyID int64
	Type      string // sale | purchase
	IsFormal  bool
	ProductID int64
	Quantity  int64
	UnitPrice int64
	Note      string
}

// RecordTransaction valida la entrada, calcula el monto bruto
// (cantidad × precio unitario) e inserta el movimiento ajustando el stock del
// producto en la misma transacción: +cantidad si es compra, −cantidad si es
// venta. El stock puede quedar negativo; vender sin stock no se bloquea.
//
// Errores: domain.ErrInvalidInput (validación), domain.ErrNotFound /
// domain.ErrCompanyInactive (referencias), cualquier otro error envuelto es
// falla de almacenamiento. Ante error no persiste nada.
func (uc *UseCase) RecordTransaction(ctx context.Context, in Input) (*entity.Movement, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.UnitPrice < 0 {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !company.Active {
		return nil, domain.ErrCompanyInactive
	}

	// El producto debe existir y pertenecer a la misma empresa del movimiento.
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != in.CompanyID {
		return nil, domain.ErrNotFound
	}

	mov := &entity.Movement{
		CompanyID:   in.CompanyID,
		Type:        in.Type,
		IsFormal:    in.IsFormal,
		Timestamp:   uc.now().Format(entity.TimestampLayout),
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		GrossAmount: in.Quantity * in.UnitPrice,
		Note:        in.Note,
	}

	// Movimiento y ajuste de stock en la misma transacción; si cualquiera de
	// los dos falla, Rollback deja el estado previo intacto.
	err = uc.txRunner.Run(ctx, func(
		movements repository.MovementRepository,
		products repository.ProductRepository,
	) error {
		if err := movements.Create(ctx, mov); err != nil {
			return err
		}
		return products.AdjustStock(ctx, mov.ProductID, mov.StockDelta())
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordFromCatalog registra un movimiento resolviendo el precio unitario
// desde el catálogo antes de abrir la transacción: precio de venta si es
// venta, costo unitario si es compra. Es el adaptador que usan la API y el
// CLI (espejo del flujo de la interfaz original).
func (uc *UseCase) RecordFromCatalog(ctx context.Context, companyID int64, movType string, isFormal bool, productID, quantity int64, note string) (*entity.Movement, error) {
	if !entity.ValidMovementType(movType) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	unitPrice := product.UnitCost
	if movType == entity.MovementTypeSale {
		unitPrice = product.SalePrice
	}
	return uc.RecordTransaction(ctx, Input{
		CompanyID: companyID,
		Type:      movType,
		IsFormal:  isFormal,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Note:      note,
	})
}

// ListMovements lista los movimientos de una empresa, más recientes primero.
func (uc *UseCase) ListMovements(ctx context.Context, companyID int64) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByCompany(ctx, companyID)
}
