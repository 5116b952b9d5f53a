package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/application/reporting"
	"github.com/jempresa/erp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	ProductUC *usecase.ProductUseCase
	LedgerUC  *ledger.UseCase
	ReportUC  *reporting.UseCase
}

// Router registra las rutas de la API. Toda operación sobre productos,
// movimientos y reportes va anidada bajo la empresa: el contexto de empresa
// viaja siempre en la ruta, nunca en estado global.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Rename)
	companies.Delete("/:id", companyHandler.Deactivate)

	// Products (por empresa)
	products := companies.Group("/:id/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:productID", productHandler.GetByID)
	products.Put("/:productID/prices", productHandler.UpdatePrices)

	// Movements (por empresa)
	movements := companies.Group("/:id/movements")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	movements.Post("/", ledgerHandler.Record)
	movements.Get("/", ledgerHandler.List)

	// Reports (por empresa)
	reportHandler := NewReportHandler(deps.ReportUC)
	companies.Get("/:id/summary", reportHandler.Summary)
	companies.Get("/:id/tax-report", reportHandler.TaxReport)
}
