package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jempresa/erp-api/internal/application/dto"
	"github.com/jempresa/erp-api/internal/application/reporting"
)

// ReportHandler expone el resumen financiero y el reporte simplificado de IVA.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero de la empresa
// @Description  Suma de montos brutos de todos los movimientos, formales e
//               informales. La utilidad se calcula al responder.
// @Tags         reports
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/companies/{id}/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	companyID, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	s, err := h.uc.Summary(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SummaryResponse{
		SalesTotal:     s.SalesTotal,
		PurchasesTotal: s.PurchasesTotal,
		Utility:        s.Utility(),
	})
}

// TaxReport godoc
// @Summary      Reporte simplificado de IVA (19%)
// @Description  Considera solo movimientos formales. El neto de cada movimiento
//               se trunca por separado antes de sumar débitos y créditos.
// @Tags         reports
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.TaxReportResponse
// @Router       /api/companies/{id}/tax-report [get]
func (h *ReportHandler) TaxReport(c *fiber.Ctx) error {
	companyID, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	r, err := h.uc.TaxReport(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TaxReportResponse{
		SalesGross:     r.SalesGross,
		PurchasesGross: r.PurchasesGross,
		TaxDebit:       r.TaxDebit,
		TaxCredit:      r.TaxCredit,
		TaxDue:         r.TaxDue(),
	})
}
