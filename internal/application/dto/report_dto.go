package dto

// SummaryResponse resumen financiero de una empresa: suma de montos brutos de
// todos los movimientos (formales e informales). Utility se calcula al
// responder (ventas − compras); nunca se almacena.
type SummaryResponse struct {
	SalesTotal     int64 `json:"sales_total"`
	PurchasesTotal int64 `json:"purchases_total"`
	Utility        int64 `json:"utility"`
}

// TaxReportResponse reporte simplificado de IVA: solo movimientos formales.
// TaxDue positivo = impuesto a pagar; negativo = remanente a favor.
type TaxReportResponse struct {
	SalesGross     int64 `json:"sales_gross"`
	PurchasesGross int64 `json:"purchases_gross"`
	TaxDebit       int64 `json:"tax_debit"`
	TaxCredit      int64 `json:"tax_credit"`
	TaxDue         int64 `json:"tax_due"`
}
