// Package reporting es el lado de lectura del sistema: deriva agregados
// financieros (totales brutos, IVA débito/crédito) recorriendo el libro de
// movimientos en cada llamada. Nunca cachea ni escribe; la fuente de verdad
// es siempre la tabla de movimientos.
package reporting

import (
	"context"

	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
	"github.com/jempresa/erp-api/internal/domain/tax"
)

// Summary totales brutos de una empresa, formales e informales combinados.
type Summary struct {
	SalesTotal     int64
	PurchasesTotal int64
}

// Utility utilidad estimada (ventas − compras). Derivada, nunca almacenada.
func (s Summary) Utility() int64 { return s.SalesTotal - s.PurchasesTotal }

// TaxReport reporte simplificado de IVA sobre movimientos formales.
// El IVA de cada movimiento se descompone por separado (neto = bruto/1.19
// truncado) y se suma; no hay reconciliación de redondeo entre movimientos.
type TaxReport struct {
	SalesGross     int64
	PurchasesGross int64
	TaxDebit       int64 // IVA de ventas formales (a pagar)
	TaxCredit      int64 // IVA de compras formales (a favor)
}

// TaxDue impuesto resultante: positivo = a pagar, negativo = remanente.
func (r TaxReport) TaxDue() int64 { return r.TaxDebit - r.TaxCredit }

// UseCase consultas de reporte de una empresa.
type UseCase struct {
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo}
}

// Summary suma gross_amount agrupado por tipo sobre todos los movimientos de
// la empresa. Una empresa sin movimientos (o inexistente) devuelve ceros.
func (uc *UseCase) Summary(ctx context.Context, companyID int64) (Summary, error) {
	sales, purchases, err := uc.movementRepo.TotalsByType(ctx, companyID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{SalesTotal: sales, PurchasesTotal: purchases}, nil
}

// TaxReport recorre solo los movimientos formales y acumula bruto e IVA por
// tipo. Dos llamadas sin escrituras intermedias devuelven lo mismo.
func (uc *UseCase) TaxReport(ctx context.Context, companyID int64) (TaxReport, error) {
	movements, err := uc.movementRepo.ListFormalByCompany(ctx, companyID)
	if err != nil {
		return TaxReport{}, err
	}
	var report TaxReport
	for _, m := range movements {
		_, vat := tax.Decompose(m.GrossAmount)
		if m.Type == entity.MovementTypeSale {
			report.SalesGross += m.GrossAmount
			report.TaxDebit += vat
		} else {
			report.PurchasesGross += m.GrossAmount
			report.TaxCredit += vat
		}
	}
	return report, nil
}
