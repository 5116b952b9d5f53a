package dto

// RecordMovementRequest entrada para registrar una venta o compra.
// El precio unitario no viaja en el request: se resuelve del catálogo al
// momento del registro (precio de venta si es venta, costo si es compra).
type RecordMovementRequest struct {
	Type      string `json:"type"` // sale | purchase
	IsFormal  bool   `json:"is_formal"`
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID          int64  `json:"id"`
	CompanyID   int64  `json:"company_id"`
	Type        string `json:"type"`
	IsFormal    bool   `json:"is_formal"`
	Timestamp   string `json:"timestamp"`
	ProductID   int64  `json:"product_id"`
	Quantity    int64  `json:"quantity"`
	GrossAmount int64  `json:"gross_amount"`
	Note        string `json:"note"`
}

// MovementListResponse lista de movimientos de una empresa.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
