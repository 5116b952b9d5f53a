package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jempresa/erp-api/internal/application/dto"
	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
)

// LedgerHandler maneja el registro y listado de movimientos (el corazón del
// sistema: cada registro ajusta el stock del producto en la misma transacción).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta o compra
// @Description  El precio unitario se resuelve del catálogo al momento del
//               registro: precio de venta si es venta, costo unitario si es
//               compra. Vender sin stock está permitido (stock negativo).
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la empresa"
// @Param        body  body  dto.RecordMovementRequest  true  "type, is_formal, product_id, quantity, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/movements [post]
func (h *LedgerHandler) Record(c *fiber.Ctx) error {
	companyID, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RecordFromCatalog(c.Context(), companyID, in.Type, in.IsFormal, in.ProductID, in.Quantity, in.Note)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa o producto no encontrado"})
		}
		if errors.Is(err, domain.ErrCompanyInactive) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMPANY_INACTIVE", Message: "la empresa está desactivada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(movementToResponse(mov))
}

// List godoc
// @Summary      Listar movimientos de la empresa
// @Tags         movements
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/companies/{id}/movements [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	companyID, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	list, err := h.uc.ListMovements(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *movementToResponse(m))
	}
	return c.JSON(dto.MovementListResponse{Items: items, Total: len(items)})
}

func movementToResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Type:        m.Type,
		IsFormal:    m.IsFormal,
		Timestamp:   m.Timestamp,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		GrossAmount: m.GrossAmount,
		Note:        m.Note,
	}
}
